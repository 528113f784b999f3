package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/configs"
)

var EncryptCmd = &cobra.Command{
	Use:           "encrypt [text]",
	Short:         "Encrypt text with the local public key (shorthand for apply '/enc')",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting...", verbose)
		defer cleanup()

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		text, err := readInput(cmd, args, 0)
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " " + err.Error()
			return nil
		}

		executor := newExecutor(settings)
		result, err := executor.ApplyString(text, "/enc")
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Encryption failed\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		spinner.Stop()
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	addCommonFlags(EncryptCmd)
}
