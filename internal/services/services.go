package services

import (
	"context"

	"github.com/oakenplay/portamento/internal/models"
)

// SearchOptions controls a target-catalog search.
type SearchOptions struct {
	// Type filters results ("songs", "albums", ...). The matcher always
	// searches songs.
	Type string

	// Limit caps the number of returned candidates.
	Limit int
}

// SearchResult is one entry of a search response. Type discriminates
// the payload; only "song" entries carry a usable Track.
type SearchResult struct {
	Type  string       `json:"type"`
	Track models.Track `json:"data"`
}

// TargetPlaylist is a playlist in the target catalog.
type TargetPlaylist struct {
	ID     string         `json:"id"`
	Name   string         `json:"title"`
	Tracks []models.Track `json:"tracks"`
}

// MusicService is the consumed contract of the target music catalog.
type MusicService interface {
	// Search runs a text search against the catalog.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)

	// GetPlaylist retrieves a playlist with its full track list.
	GetPlaylist(ctx context.Context, playlistID string) (*TargetPlaylist, error)
}
