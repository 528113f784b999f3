package cmd

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/cipher"
	"github.com/korimako/remold/internal/configs"
)

var keysInitForce bool

var keysInitCmd = &cobra.Command{
	Use:           "init",
	Short:         "Generate the RSA key pair used by the enc and dec rules",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys init command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		keys := cipher.NewKeystore(settings.KeyDirectory, settings.KeyBits)

		if !keysInitForce {
			if _, err := keys.LoadPrivateKey(); err == nil {
				finalMessage := color.RedString("✗") + " A key pair already exists at " +
					color.YellowString(settings.KeyDirectory) + "\n" +
					color.CyanString("→") + " Run " + color.YellowString("remold keys init --force") + " to replace it"
				cmd.Println(finalMessage)
				return nil
			}
		} else {
			Logger.Debugf("Force flag set, removing existing key files")
			os.Remove(keys.PrivateKeyPath())
			os.Remove(keys.PublicKeyPath())
		}

		figure.NewFigure("remold", "", true).Print()

		spinner, cleanup := startSpinner("Generating RSA key pair. This can take a moment...", verbose)
		defer cleanup()

		if _, _, err := keys.EnsureKeyPair(); err != nil {
			return Logger.ErrorfAndReturn("failed to generate key pair: %v", err)
		}
		Logger.Infof("Key pair generated")

		finalMessage := color.GreenString("✓") + " Key pair written to " + color.YellowString(settings.KeyDirectory) + "\n" +
			color.CyanString("→") + " Try " + color.YellowString(`remold apply '/enc' 'hello'`)
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	keysInitCmd.Flags().BoolVar(&keysInitForce, "force", false, "replace an existing key pair")
}
