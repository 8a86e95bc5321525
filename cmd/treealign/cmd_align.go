package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treealign/align"
	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
	"github.com/katalvlaran/treealign/xes"
)

var (
	alignTree  string
	alignTrace string
	alignLog   string
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align one trace or one XES log against a process tree",
	Example: `  treealign align --tree "->( +( 'a', 'b' ), X( 'c', 'd' ) )" --trace b,a,d
  treealign align --tree invoice.ptree --log invoice.xes`,
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().StringVar(&alignTree, "tree", "", "process-tree file or inline notation (required)")
	alignCmd.Flags().StringVar(&alignTrace, "trace", "", "comma-separated activity names")
	alignCmd.Flags().StringVar(&alignLog, "log", "", "XES log file; every trace is aligned")
	_ = alignCmd.MarkFlagRequired("tree")
	alignCmd.MarkFlagsMutuallyExclusive("trace", "log")
	alignCmd.MarkFlagsOneRequired("trace", "log")

	rootCmd.AddCommand(alignCmd)
}

// loadTree reads the --tree argument: a path if one exists on disk,
// otherwise inline notation.
func loadTree(arg string, alpha *trace.Alphabet) (*ptree.Tree, error) {
	text := arg
	if raw, err := os.ReadFile(arg); err == nil {
		text = string(raw)
	}

	return ptree.Parse(text, alpha)
}

func runAlign(cmd *cobra.Command, _ []string) error {
	alpha := trace.NewAlphabet()
	tree, err := loadTree(alignTree, alpha)
	if err != nil {
		return err
	}

	// single inline trace
	if alignTrace != "" {
		var names []string
		for _, name := range strings.Split(alignTrace, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		cost, alignErr := align.Align(tree, alpha.InternAll(names))
		if alignErr != nil {
			return alignErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), cost)

		return nil
	}

	// whole log: one cost per line, in log order
	log, err := xes.ReadFile(alignLog, alpha)
	if err != nil {
		return err
	}
	for i, tr := range log.Traces {
		cost, alignErr := align.Align(tree, tr)
		if alignErr != nil {
			return alignErr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", i, cost)
	}

	return nil
}
