// YouTube [Adapter] implementation.
//
// Playlists are fetched through the target catalog client, which
// already speaks to the ytmusicapi proxy.
package source

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/services"
	"github.com/oakenplay/portamento/internal/shared"
)

var (
	// Bare playlist IDs are at least 10 characters of [-_A-Za-z0-9].
	youtubeBareIDRe = regexp.MustCompile(`^[-_A-Za-z0-9]{10,}$`)
	// Covers both watch?v=...&list=ID and playlist?list=ID shapes.
	youtubeListRe = regexp.MustCompile(`[?&]list=([-_A-Za-z0-9]+)`)
)

// YouTubeAdapter implements [Adapter] for YouTube playlists.
type YouTubeAdapter struct {
	music  services.MusicService
	logger *log.Logger
}

// NewYouTubeAdapter creates a new YouTube adapter backed by the given
// target catalog client.
func NewYouTubeAdapter(music services.MusicService, logger *log.Logger) *YouTubeAdapter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &YouTubeAdapter{
		music:  music,
		logger: logger.With("adapter", "youtube"),
	}
}

// Source identifies the catalog this adapter serves.
func (y *YouTubeAdapter) Source() models.Source { return models.SourceYouTube }

// ExtractID resolves a bare ID or a URL carrying a list parameter into
// a playlist ID.
func (y *YouTubeAdapter) ExtractID(input string) string {
	if youtubeBareIDRe.MatchString(input) {
		return input
	}
	if m := youtubeListRe.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}

// FetchPlaylist retrieves a playlist with its track list. Returns nil
// when the input cannot be resolved or the catalog call fails.
func (y *YouTubeAdapter) FetchPlaylist(ctx context.Context, urlOrID string) *models.SourcePlaylist {
	playlistID := y.ExtractID(urlOrID)
	if playlistID == "" {
		y.logger.Warn("invalid YouTube playlist URL or ID", "input", urlOrID)
		return nil
	}

	y.logger.Info("fetching YouTube playlist", "playlist_id", playlistID)

	playlist, err := y.music.GetPlaylist(ctx, playlistID)
	if err != nil {
		y.logger.Error("failed to fetch playlist", "playlist_id", playlistID, "err", err)
		return nil
	}

	tracks := make([]models.SourceTrack, 0, len(playlist.Tracks))
	for _, t := range playlist.Tracks {
		tracks = append(tracks, models.YouTubeTrack{
			ID:       t.ID,
			Title:    t.Title,
			Artists:  t.ArtistNames(),
			Album:    t.Album,
			Duration: t.Duration,
		})
	}

	y.logger.Info("fetched playlist", "playlist_id", playlistID, "track_count", len(tracks))

	return &models.SourcePlaylist{
		ID:         playlist.ID,
		Name:       playlist.Name,
		Tracks:     tracks,
		Accessible: true,
		URL:        fmt.Sprintf("https://www.youtube.com/playlist?list=%s", playlist.ID),
	}
}

// ValidatePlaylist reports whether the input resolves to a playlist
// with at least one track.
func (y *YouTubeAdapter) ValidatePlaylist(ctx context.Context, urlOrID string) bool {
	playlist := y.FetchPlaylist(ctx, urlOrID)
	return playlist != nil && len(playlist.Tracks) > 0
}
