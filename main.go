package main

import (
	"fmt"
	"os"

	"github.com/korimako/remold/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "remold",
	Short: "Remold - transform text with chainable rule strings.",
	Long: `Remold applies ordered pipelines of named text operations, written as
compact rule strings:

  remold apply '/t/l' '  Hello World  '     -> "hello world"
  remold apply "/S '+'" 'http://foo.bar/baz' -> "http+foo+bar+baz"
  remold apply '/enc' 'secret text'          -> base64 envelope

Rules chain left to right with slashes; quoted arguments follow the rule
they belong to. The enc/dec rules use a hybrid RSA+AES scheme with a key
pair generated on first use.

Run 'remold rules' to list every available rule.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'remold --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ApplyCmd)
	rootCmd.AddCommand(cmd.RulesCmd)
	rootCmd.AddCommand(cmd.KeysCmd)
	rootCmd.AddCommand(cmd.EncryptCmd)
	rootCmd.AddCommand(cmd.DecryptCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
