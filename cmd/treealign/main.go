// Command treealign computes optimal alignment costs between event traces
// and process trees, one pair at a time or across whole directories.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treealign",
	Short: "Conformance checking: align traces against process trees",
	Long: `treealign computes the optimal alignment cost between observed traces
and a process tree: the minimum number of event insertions and deletions
needed to make each trace acceptable to the tree. Cost 0 means conformant.

Trees use the textual notation ->( ... ), +( ... ), X( ... ), *( body, redo ),
'activity', tau. Logs are XES files or comma-separated activity lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// logger writes structured progress to stderr; results go to stdout.
func logger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("treealign failed", slog.Any("err", err))
		os.Exit(1)
	}
}
