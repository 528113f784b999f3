package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/configs"
)

var ApplyCmd = &cobra.Command{
	Use:   "apply <rulestring> [text]",
	Short: "Apply a rule string to text from an argument or stdin",
	Long: `Parses a rule string like "/t/l" or "/r 'old' 'new'" and applies each
rule in order to the input text. The text comes from the second argument,
or from stdin when piped.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting apply command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		Logger.Debugf("Key directory: %s", settings.KeyDirectory)

		text, err := readInput(cmd, args, 1)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}
		Logger.Debugf("Read %d bytes of input", len(text))

		executor := newExecutor(settings)
		result, err := executor.ApplyString(text, args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("failed to apply %s: %v", args[0], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	addCommonFlags(ApplyCmd)
}
