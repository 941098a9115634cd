package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"synapse/internal/services"
)

func credentialCmd(connect connectFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credential",
		Aliases: []string{"cred", "key"},
		Short:   "Manage provider API keys in the secret store",
		Long: fmt.Sprintf(`Manage provider API keys in the secret store.

Providers: %s

Examples:
  synapsectl credential set openai           # Prompt for the key without echo
  echo "$KEY" | synapsectl credential set anthropic
  synapsectl credential get openai           # Print a masked key
  synapsectl credential get openai --reveal  # Print the full key
  synapsectl credential list
  synapsectl credential delete openai`, strings.Join(services.Providers, ", ")),
	}

	cmd.AddCommand(
		credentialSetCmd(connect),
		credentialGetCmd(connect),
		credentialDeleteCmd(connect),
		credentialListCmd(connect),
	)
	return cmd
}

func credentialSetCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "set <provider>",
		Short: "Store the API key for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			if !services.IsKnownProvider(provider) {
				return &services.CommandError{Kind: services.CommandInvalidInput, Message: "invalid provider: " + provider}
			}
			key, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), provider)
			if err != nil {
				return err
			}
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			if err := svc.Settings.StoreApiKey(provider, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s API key\n", provider)
			return nil
		},
	}
}

func credentialGetCmd(connect connectFunc) *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "get <provider>",
		Short: "Print the API key for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			key, err := svc.Settings.GetApiKey(args[0])
			if err != nil {
				return err
			}
			if !reveal {
				key = mask(key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the full key instead of a masked form")
	return cmd
}

func credentialDeleteCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <provider>",
		Aliases: []string{"rm"},
		Short:   "Remove the API key for a provider",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			if err := svc.Settings.DeleteApiKey(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s API key\n", args[0])
			return nil
		},
	}
}

func credentialListCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show which providers have a stored key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			statuses, err := svc.Settings.ListApiKeys()
			if err != nil {
				return err
			}
			for _, st := range statuses {
				state := "not set"
				if st.Configured {
					state = "set"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", st.Provider, state)
			}
			return nil
		},
	}
}

// readSecret prompts without echo on a terminal and otherwise reads the
// first line of in.
func readSecret(in io.Reader, prompt io.Writer, provider string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(prompt, "%s API key: ", provider)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read API key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:3] + strings.Repeat("*", len(key)-7) + key[len(key)-4:]
}
