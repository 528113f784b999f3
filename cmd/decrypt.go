package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/cipher"
	"github.com/korimako/remold/internal/configs"
)

var DecryptCmd = &cobra.Command{
	Use:           "decrypt [text]",
	Short:         "Decrypt an envelope with the local private key (shorthand for apply '/dec')",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting...", verbose)
		defer cleanup()

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		warnOnLoosePermissions(cipher.NewKeystore(settings.KeyDirectory, settings.KeyBits))

		text, err := readInput(cmd, args, 0)
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " " + err.Error()
			return nil
		}

		executor := newExecutor(settings)
		result, err := executor.ApplyString(text, "/dec")
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Decryption failed. Was the envelope produced by this key pair?\n" +
				color.RedString("Error: ") + err.Error()
			return nil
		}

		spinner.Stop()
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	addCommonFlags(DecryptCmd)
}
