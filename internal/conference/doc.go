// Package conference defines the conference record model shared by every
// pipeline stage.
//
// A Conference is created loosely shaped by a source fetcher, validated at the
// fetcher boundary, merged by the deduplicator, enriched once, and then never
// mutated again. Each record carries a deterministic content-derived ID so
// that runs can be diffed against the previous snapshot.
package conference
