package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"synapse/internal/models"
	"synapse/internal/repositories"
	"synapse/internal/services"
)

func settingsCmd(connect connectFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show, validate and apply settings",
		Long: `Show, validate and apply the settings document.

Examples:
  synapsectl settings show                 # Print current settings as JSON
  synapsectl settings path                 # Print the settings file location
  synapsectl settings validate new.json    # Check a document without saving
  synapsectl settings apply new.json       # Validate and save a document`,
	}

	cmd.AddCommand(
		settingsShowCmd(connect),
		settingsPathCmd(connect),
		settingsValidateCmd(),
		settingsApplyCmd(connect),
	)
	return cmd
}

func settingsShowCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			settings, err := svc.Settings.GetSettings()
			if err != nil {
				return err
			}
			data, err := repositories.EncodeSettings(settings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func settingsPathCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Settings.SettingsPath())
			return nil
		},
	}
}

func settingsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a settings document without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := readSettingsFile(args[0])
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return &services.CommandError{Kind: services.CommandInvalidInput, Message: err.Error()}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func settingsApplyCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file>",
		Short: "Validate a settings document and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := readSettingsFile(args[0])
			if err != nil {
				return err
			}
			svc, err := connect(cmd)
			if err != nil {
				return err
			}
			if err := svc.Settings.UpdateSettings(settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "settings saved to", svc.Settings.SettingsPath())
			return nil
		},
	}
}

// readSettingsFile parses a document with the same rules used at load, so
// a missing key or unknown enum is reported before anything is saved.
func readSettingsFile(path string) (models.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Settings{}, &services.CommandError{Kind: services.CommandInvalidInput, Message: err.Error()}
	}
	settings, err := repositories.ParseSettings(data)
	if err != nil {
		return models.Settings{}, &services.CommandError{Kind: services.CommandInvalidInput, Message: err.Error()}
	}
	return settings, nil
}
