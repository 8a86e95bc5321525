package batch

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/treealign/align"
	"github.com/katalvlaran/treealign/ptree"
	"github.com/katalvlaran/treealign/trace"
	"github.com/katalvlaran/treealign/xes"
)

// pair is one unit of work: a tree file and its matching log file.
type pair struct {
	name     string
	treeFile string
	logFile  string
}

// Run executes one batch: discover pairs, align every trace of every pair on
// a bounded worker pool, write the JSON report if configured, and return it.
//
// Pair-level failures (unparsable tree, unreadable log) are recorded in the
// pair's result and logged; they do not abort the run. Run fails only on bad
// configuration, an unreadable tree directory, no pairs at all, or an
// unwritable report.
func Run(cfg Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	pairs, err := discoverPairs(cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Pairs:   make([]PairResult, len(pairs)),
	}
	logger = logger.With(slog.String("run_id", report.RunID))
	logger.Info("batch run starting",
		slog.Int("pairs", len(pairs)),
		slog.String("tree_dir", cfg.TreeDir),
		slog.String("log_dir", cfg.LogDir))

	// Bounded worker pool over pairs; each worker owns its current pair's
	// alphabet, tree, and engine calls, so no alignment state is shared.
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	var (
		wg   sync.WaitGroup
		next = make(chan int)
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				report.Pairs[i] = alignPair(pairs[i], logger)
			}
		}()
	}
	for i := range pairs {
		next <- i
	}
	close(next)
	wg.Wait()

	report.Duration = time.Since(report.Started)
	logger.Info("batch run finished", slog.Duration("took", report.Duration))

	if cfg.Output != "" {
		if err = writeReport(cfg.Output, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// discoverPairs walks the tree directory and pairs every *.ptree file with
// the same-named *.xes log. Trees without a log are skipped; nothing is logged
// for them. No pairs at all is an error.
func discoverPairs(cfg Config) ([]pair, error) {
	entries, err := os.ReadDir(cfg.TreeDir)
	if err != nil {
		return nil, err
	}

	var pairs []pair
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), treeExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), treeExt)
		logFile := filepath.Join(cfg.LogDir, name+logExt)
		if _, statErr := os.Stat(logFile); statErr != nil {
			continue
		}
		pairs = append(pairs, pair{
			name:     name,
			treeFile: filepath.Join(cfg.TreeDir, e.Name()),
			logFile:  logFile,
		})
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	return pairs, nil
}

// alignPair parses one tree, reads its log, and aligns every trace.
// The pair gets a fresh alphabet so id spaces never leak across pairs.
func alignPair(p pair, logger *slog.Logger) PairResult {
	res := PairResult{Name: p.name, TreeFile: p.treeFile, LogFile: p.logFile}
	start := time.Now()

	raw, err := os.ReadFile(p.treeFile)
	if err != nil {
		res.Err = err.Error()

		return res
	}

	alpha := trace.NewAlphabet()
	tree, err := ptree.Parse(string(raw), alpha)
	if err != nil {
		res.Err = err.Error()
		logger.Warn("skipping pair: bad tree", slog.String("pair", p.name), slog.Any("err", err))

		return res
	}

	log, err := xes.ReadFile(p.logFile, alpha)
	if err != nil {
		res.Err = err.Error()
		logger.Warn("skipping pair: bad log", slog.String("pair", p.name), slog.Any("err", err))

		return res
	}

	res.Traces = len(log.Traces)
	res.Events = log.Events
	res.Costs = make([]int, len(log.Traces))
	for i, tr := range log.Traces {
		cost, alignErr := align.Align(tree, tr)
		if alignErr != nil {
			res.Err = alignErr.Error()

			return res
		}
		res.Costs[i] = cost
	}

	res.Duration = time.Since(start)
	logger.Info("pair aligned",
		slog.String("pair", p.name),
		slog.Int("traces", res.Traces),
		slog.Duration("took", res.Duration))

	return res
}

// writeReport marshals the report as indented JSON.
func writeReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
