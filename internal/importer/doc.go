// Package importer orchestrates playlist imports from a source catalog
// into the local library.
//
// # Pipeline
//
// [Importer.ImportPlaylist] runs fetch → match → persist as a single
// state machine: it selects the source adapter, fetches the playlist,
// resolves every track through the matcher, and appends the matched
// tracks to the playlist store. Per-track misses are collected in the
// result's error list; only fetch failures, persistence failures and
// cancellation abort the run. Exactly one run may be active at a time.
//
// # Progress
//
// Subscribers registered via [Importer.OnProgress] receive [Progress]
// events synchronously at every phase transition and periodically
// during matching. The [Bus] snapshots its subscriber list on publish
// and isolates subscriber panics, so observers can come and go while an
// import is running.
//
// # Cancellation
//
// Cancellation is cooperative: [Importer.CancelImport] cancels the
// run's context, which is checked before the fetch and before each
// per-track lookup. A cancelled run emits a cancelled event (never a
// failed one) and returns [shared.ErrImportCancelled].
package importer
