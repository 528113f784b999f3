package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/cipher"
	"github.com/korimako/remold/internal/configs"
)

var keysStatusCmd = &cobra.Command{
	Use:           "status",
	Short:         "Report whether a key pair exists and whether the files are consistent",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		keys := cipher.NewKeystore(settings.KeyDirectory, settings.KeyBits)
		out := cmd.OutOrStdout()

		privateKey, err := keys.LoadPrivateKey()
		if err != nil {
			fmt.Fprintln(out, color.RedString("✗")+" No usable private key at "+color.YellowString(keys.PrivateKeyPath()))
			fmt.Fprintln(out, color.CyanString("→")+" Run "+color.YellowString("remold keys init")+" or use any crypto rule to generate one")
			return nil
		}
		fmt.Fprintf(out, "%s Private key: %s (%d bits)\n",
			color.GreenString("✓"), color.YellowString(keys.PrivateKeyPath()), privateKey.N.BitLen())
		warnOnLoosePermissions(keys)

		publicKey, err := keys.LoadPublicKey()
		if err != nil {
			fmt.Fprintln(out, color.RedString("✗")+" No usable public key at "+color.YellowString(keys.PublicKeyPath()))
			return nil
		}
		if !cipher.KeyPairMatches(privateKey, publicKey) {
			fmt.Fprintln(out, color.RedString("✗")+" Public key does not match the private key")
			fmt.Fprintln(out, color.CyanString("→")+" The pair will be regenerated on next crypto use")
			return nil
		}
		fmt.Fprintf(out, "%s Public key:  %s\n", color.GreenString("✓"), color.YellowString(keys.PublicKeyPath()))
		return nil
	},
}
