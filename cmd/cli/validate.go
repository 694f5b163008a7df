package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go-picview/internal/core/config"
	"go-picview/internal/core/utils"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the viewer configuration",
	Long: `Load the configuration from file, environment and flags and check it
before any window is created.

This command will:
1. Load the configuration
2. Check window geometry, background colour and instance settings`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var cfg *config.Config
	err := utils.Step(out, "Loading configuration", "Configuration loaded", func() error {
		var err error
		cfg, err = config.Load()
		return err
	})
	if err != nil {
		return utils.NewConfigError("failed to load configuration", err)
	}

	err = utils.Step(out, "Validating configuration", "Configuration valid", cfg.Validate)
	if err != nil {
		return utils.NewValidationError("configuration validation failed", err)
	}
	GetLogger().Info("Configuration validation passed")

	fmt.Fprintf(out, "\nValidation successful!\n")
	fmt.Fprintf(out, "  - Window: %dx%d (min %dx%d), background %s\n",
		cfg.Window.Width, cfg.Window.Height, cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.Background)
	fmt.Fprintf(out, "  - Resize step: %.0f%%\n", cfg.Window.ResizeStep*100)
	fmt.Fprintf(out, "  - DevTools: %t\n", cfg.DevTools.Enabled)
	fmt.Fprintf(out, "  - Single instance: %t\n", cfg.Instance.Single)
	return nil
}
