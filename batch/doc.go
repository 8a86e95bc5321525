// Package batch aligns whole directories of process trees against their
// event logs and writes a JSON cost report.
//
// Input layout: a tree directory of textual process-tree files (*.ptree) and
// a log directory of XES files (*.xes). Files are paired by base name —
// invoice.ptree aligns against invoice.xes. Each pair gets its own activity
// alphabet (id spaces never leak between pairs), every trace of the log is
// aligned against the tree, and the per-trace costs land in the report.
//
// Pairs run concurrently on a bounded worker pool: the engine makes no
// cross-call assumptions, so disjoint (tree, trace, cache) tuples may align
// in parallel. Within one pair, traces run sequentially on one worker.
//
// Configuration comes from a YAML file (or is built in code); progress is
// logged through log/slog; every run carries a fresh UUID.
package batch
