package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/rules"
	"github.com/korimako/remold/internal/ui"
)

var RulesCmd = &cobra.Command{
	Use:           "rules",
	Short:         "List every registered rule with its argument contract",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The listing-only provider keeps enc/dec in the table without
		// touching the keystore.
		registry := rules.NewRegistry(rules.WithCrypto(&noopProvider{}))

		out := cmd.OutOrStdout()
		for _, spec := range registry.Specs() {
			line := "  " + ui.Highlight.Sprint(spec.ID)
			switch {
			case spec.MinArgs > 0:
				line += " " + ui.Muted.Sprintf("%d arg(s)", spec.MinArgs)
			case spec.MaxArgs > 0:
				line += " " + ui.Muted.Sprintf("up to %d arg(s)", spec.MaxArgs)
			}
			if len(spec.DefaultArgs) > 0 {
				line += " " + ui.Muted.Sprintf("default %q", strings.Join(spec.DefaultArgs, " "))
			}
			line += "  " + spec.Summary
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

type noopProvider struct{}

func (noopProvider) Encrypt(text string) (string, error) { return text, nil }
func (noopProvider) Decrypt(text string) (string, error) { return text, nil }

func init() {
	addCommonFlags(RulesCmd)
}
