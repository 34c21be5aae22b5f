// Package snapshot provides JSON-based persistence for aggregation runs.
//
// A snapshot is the full output of one pipeline run: the month-grouped
// conference listing plus summary statistics and a timestamp. The previous
// snapshot is loaded before each run so notifications can diff against it.
package snapshot
