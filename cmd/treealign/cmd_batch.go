package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treealign/batch"
)

var (
	batchConfig  string
	batchTrees   string
	batchLogs    string
	batchOutput  string
	batchWorkers int
	batchVerbose bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Align every tree in a directory against its matching XES log",
	Long: `batch pairs <name>.ptree files from the tree directory with <name>.xes
files from the log directory, aligns every trace of every pair, and writes a
JSON cost report. Flags override the YAML config.`,
	Example: `  treealign batch --config batch.yaml
  treealign batch --trees data/ptree --logs data/xes --output costs.json`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "YAML config file")
	batchCmd.Flags().StringVar(&batchTrees, "trees", "", "process-tree directory")
	batchCmd.Flags().StringVar(&batchLogs, "logs", "", "XES log directory")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "JSON report path")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent pair workers")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "log per-pair progress")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	var (
		cfg batch.Config
		err error
	)
	if batchConfig != "" {
		cfg, err = batch.LoadConfig(batchConfig)
		if err != nil {
			return err
		}
	}
	if batchTrees != "" {
		cfg.TreeDir = batchTrees
	}
	if batchLogs != "" {
		cfg.LogDir = batchLogs
	}
	if batchOutput != "" {
		cfg.Output = batchOutput
	}
	if batchWorkers > 0 {
		cfg.Workers = batchWorkers
	}

	report, err := batch.Run(cfg, logger(batchVerbose))
	if err != nil {
		return err
	}

	for _, p := range report.Pairs {
		if p.Err != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tERROR\t%s\n", p.Name, p.Err)

			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d traces\t%v\n", p.Name, p.Traces, p.Costs)
	}

	return nil
}
