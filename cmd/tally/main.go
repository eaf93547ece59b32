package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/vyskocilm/tally/internal/log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tally [-l] [-w] [-m] [-c] [file...]",
	Short: "Count lines, words, characters and bytes of files or standard input",
	Long: `tally streams over every input and reports the requested counters
per input, plus a Total row when more than one input was given.

Metric flags select the report columns: -l lines, -w words, -m characters,
-c bytes. Without any flag the report shows lines, words and bytes. Without
file arguments the standard input is counted.`,
	// Metric flags are classified by hand: a token which is not a known
	// metric flag is a file name, even when it starts with a dash.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	RunE:               doCount,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provides a version of tally",
	RunE:  doVersion,
}

func main() {
	// never print messages and usage
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)

	slog.SetDefault(log.New(false))

	if _, err := rootCmd.ExecuteC(); err != nil {
		slog.Error("tally failed", "err", err)
		os.Exit(1)
	}
}

func doVersion(cmd *cobra.Command, args []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return fmt.Errorf("tally: version info not available")
	}

	fmt.Printf("tally: %s\n", info.Main.Version)
	fmt.Printf("go:    %s\n", info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			fmt.Printf("commit: %s\n", s.Value)
		case "vcs.time":
			fmt.Printf("date:   %s\n", s.Value)
		case "vcs.modified":
			fmt.Printf("dirty:  %s\n", s.Value)
		}
	}

	return nil
}
