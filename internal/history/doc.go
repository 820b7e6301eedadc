// Package history persists match-run summaries in SQLite.
//
// Each match run is recorded with a generated ID, the scanned directory,
// the threshold in effect, per-bucket counts, and one row per exact or
// close pair. The database lives under the configured log directory and
// is a convenience archive: failures to record are logged by callers and
// never abort a match run.
package history
