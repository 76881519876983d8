// Package models defines the data model for playlist imports.
//
// # Source tracks
//
// Tracks fetched from a source catalog come in two catalog-specific
// shapes, [SpotifyTrack] and [YouTubeTrack]. Both satisfy the
// [SourceTrack] accessor contract so the matcher and orchestrator never
// branch on the concrete type.
//
// # Target tracks
//
// [Track] is the target-catalog (YouTube Music) shape returned by
// search and playlist endpoints and persisted by the playlist store.
//
// # Results
//
// [ImportResult] is the terminal artifact of one import run. Its
// counters always satisfy Matched + Failed == Total, and Errors carries
// one track-identifying message per failed match.
package models
