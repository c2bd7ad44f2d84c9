package lupin

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagThreads       int
	flagFailOn        string
	flagShow          string
	flagMaxFindings   int
	flagNoColor       bool
	flagNoCache       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the lupin CLI.
var rootCmd = &cobra.Command{
	Use:           "lupin",
	Short:         "Audit JavaScript bundles for security issues",
	Long:          "Lupin scans compiled React Native, Expo and web bundles for leaked secrets, insecure storage and network patterns, and risky build artifacts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the lupin CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 at this severity or above (info|low|medium|high|critical; default medium)")
	rootCmd.PersistentFlags().StringVar(&flagShow, "show", "", "display findings at this severity or above (default medium)")
	rootCmd.PersistentFlags().IntVar(&flagMaxFindings, "max-findings", 0, "stop collecting after this many raw findings per bundle (0 = default)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the result cache")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update lupin to the latest release")
}
