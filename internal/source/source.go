package source

import (
	"context"

	"github.com/oakenplay/portamento/internal/models"
)

// Adapter normalizes, fetches and validates playlists from one source catalog.
type Adapter interface {
	// Source identifies the catalog this adapter serves.
	Source() models.Source

	// ExtractID resolves user input into a canonical playlist ID.
	// Returns "" when the input matches none of the catalog's known
	// shapes. Recognition order: bare ID, URI scheme, web URL.
	ExtractID(input string) string

	// FetchPlaylist retrieves a playlist with its track list. Returns
	// nil (never an error) when the input cannot be resolved or the
	// catalog call fails.
	FetchPlaylist(ctx context.Context, urlOrID string) *models.SourcePlaylist

	// ValidatePlaylist reports whether the input resolves to a usable playlist.
	ValidatePlaylist(ctx context.Context, urlOrID string) bool
}
