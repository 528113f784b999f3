package cmd

import (
	"github.com/spf13/cobra"
)

var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the RSA key pair used by the enc and dec rules",
	Long:  `Provides generation and inspection of the on-disk key pair. Keys are also generated automatically on first crypto use.`,
}

func init() {
	addCommonFlags(KeysCmd)
	KeysCmd.AddCommand(keysInitCmd)
	KeysCmd.AddCommand(keysStatusCmd)
}
