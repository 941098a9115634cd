package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"synapse/internal/config"
	"synapse/internal/logger"
	"synapse/internal/services"
)

// openFunc builds the service container for one command invocation.
type openFunc func(ctx context.Context, logOut io.Writer) (*services.Services, error)

func openFromEnv(ctx context.Context, logOut io.Writer) (*services.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return openWithConfig(ctx, logOut, cfg)
}

func openWithConfig(ctx context.Context, logOut io.Writer, cfg config.Config) (*services.Services, error) {
	log := logger.New(logOut, cfg.LogLevel, cfg.LogFormat)
	return services.NewServices(ctx, log, cfg)
}

func newRootCmd(open openFunc) *cobra.Command {
	if open == nil {
		open = openFromEnv
	}

	var verbose bool
	cmd := &cobra.Command{
		Use:           "synapsectl",
		Short:         "Manage Synapse settings and API keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write service logs to stderr")

	// Logs go to stderr only with -v so stdout stays machine-readable.
	connect := func(cmd *cobra.Command) (*services.Services, error) {
		logOut := io.Discard
		if verbose {
			logOut = cmd.ErrOrStderr()
		}
		return open(cmd.Context(), logOut)
	}

	cmd.AddCommand(
		settingsCmd(connect),
		credentialCmd(connect),
	)
	return cmd
}

type connectFunc func(cmd *cobra.Command) (*services.Services, error)
