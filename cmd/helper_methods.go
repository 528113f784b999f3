package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/korimako/remold/internal/cipher"
	"github.com/korimako/remold/internal/configs"
	logger "github.com/korimako/remold/internal/logging"
	"github.com/korimako/remold/internal/rules"
	"github.com/korimako/remold/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// addCommonFlags registers the shared verbose/debug flags and the logger
// setup on each top-level command.
func addCommonFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
		c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
		c.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{Verbose: verbose, Debug: debug}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		}
	}
}

// newExecutor wires the full rule set: builtin text rules plus enc/dec
// backed by the configured keystore.
func newExecutor(settings *configs.Settings) *rules.Executor {
	codecOpts := []cipher.Option{}
	if !settings.RepairBase64Padding {
		codecOpts = append(codecOpts, cipher.WithStrictPadding())
	}
	provider := &rules.KeystoreProvider{
		Keys:  cipher.NewKeystore(settings.KeyDirectory, settings.KeyBits),
		Codec: cipher.New(codecOpts...),
	}
	registry := rules.NewRegistry(rules.WithCrypto(provider))
	return rules.NewExecutor(registry)
}

// readInput returns the input text: the positional argument at idx when
// present, otherwise piped stdin.
func readInput(cmd *cobra.Command, args []string, idx int) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input text: pass it as an argument or pipe it on stdin")
}

// warnOnLoosePermissions warns when the private key file is readable by
// anyone but the owner.
func warnOnLoosePermissions(keys *cipher.Keystore) {
	fileInfo, err := os.Stat(keys.PrivateKeyPath())
	if err != nil {
		return
	}
	if fileInfo.Mode().Perm()&0077 != 0 {
		Logger.WarnfAlways("Private key file has overly permissive permissions (%o), consider running 'chmod 600 %s'",
			fileInfo.Mode().Perm(), keys.PrivateKeyPath())
	}
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = finalMsg
		}
		s.Stop()

		if (verbose || debug) && finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
