// Package repositories provides the persistence layer for imported
// playlists.
//
// [PlaylistRepository] stores each import as a playlist row plus one
// row per matched track, with soft deletes and monotonic sequence
// numbers for stable ordering.
package repositories
