// Package batch defines configuration, results, and sentinel errors for
// directory-scale alignment runs.
package batch

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File extensions the pairing walk recognizes.
const (
	treeExt = ".ptree"
	logExt  = ".xes"
)

// Sentinel errors for batch configuration and execution.
var (
	// ErrBadConfig indicates a config with a missing tree or log directory,
	// or a config file that is not valid YAML.
	ErrBadConfig = errors.New("batch: invalid configuration")

	// ErrNoPairs indicates the tree directory contains no tree file with a
	// matching log file.
	ErrNoPairs = errors.New("batch: no (tree, log) pairs found")
)

// Config describes one batch run.
//
// Fields:
//
//	TreeDir - directory scanned for *.ptree process-tree files.
//	LogDir  - directory holding the matching *.xes logs.
//	Output  - path of the JSON report to write; empty skips writing.
//	Workers - concurrent pair workers; values < 1 mean one worker.
type Config struct {
	TreeDir string `yaml:"tree_dir"`
	LogDir  string `yaml:"log_dir"`
	Output  string `yaml:"output"`
	Workers int    `yaml:"workers"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return cfg, nil
}

// Validate checks the directories are set; Output is optional.
func (c Config) Validate() error {
	if c.TreeDir == "" || c.LogDir == "" {
		return ErrBadConfig
	}

	return nil
}

// PairResult is the outcome of aligning one log against one tree.
type PairResult struct {
	// Name is the shared base name of the tree and log files.
	Name string `json:"name"`

	// TreeFile and LogFile are the resolved input paths.
	TreeFile string `json:"tree_file"`
	LogFile  string `json:"log_file"`

	// Costs holds one alignment cost per trace, in log order.
	Costs []int `json:"costs"`

	// Traces and Events summarize the log.
	Traces int `json:"traces"`
	Events int `json:"events"`

	// Duration is the wall-clock time spent on this pair.
	Duration time.Duration `json:"duration_ns"`

	// Err carries a pair-level failure (parse error, unreadable log);
	// other pairs still run.
	Err string `json:"error,omitempty"`
}

// Report is the full outcome of one batch run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// Started is the run's start time.
	Started time.Time `json:"started"`

	// Duration is the total wall-clock time of the run.
	Duration time.Duration `json:"duration_ns"`

	// Pairs holds one entry per (tree, log) pair, sorted by name.
	Pairs []PairResult `json:"pairs"`
}
