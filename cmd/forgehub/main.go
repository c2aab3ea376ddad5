// forgehub writes text onto a GitHub contribution calendar by fabricating
// backdated commits whose per-day counts trace the rendered glyphs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"forgehub/internal/forge"
)

// Exit codes, one per pipeline phase.
const (
	exitOK         = 0
	exitNoIdentity = 1
	exitInit       = 2
	exitForge      = 3
	exitPush       = 4
	exitUsage      = 5
)

// errNoIdentity is returned when no target user can be determined from
// arguments, token, or git configuration.
var errNoIdentity = errors.New("no user could be determined from arguments or environment")

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "forgehub",
	Short: "Draw patterns and messages on a GitHub activity calendar",
	Long: `forgehub renders text into the visual grid of a GitHub contribution
calendar, scales it against your real activity so the pattern reads
cleanly, and forges the backdated commits that reproduce it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the defaults file")

	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(dumpCmd)
}

// exitCode maps an error to the process exit code for the phase it belongs
// to. Anything unclassified is a usage or precondition failure.
func exitCode(err error) int {
	var (
		initErr  *forge.InitError
		forgeErr *forge.ForgeError
		pushErr  *forge.PushError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoIdentity):
		return exitNoIdentity
	case errors.As(err, &initErr):
		return exitInit
	case errors.As(err, &forgeErr):
		return exitForge
	case errors.As(err, &pushErr):
		return exitPush
	default:
		return exitUsage
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
