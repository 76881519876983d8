// Spotify [Adapter] implementation.
//
// Works without credentials for public playlists: metadata comes from
// the oEmbed endpoint and the track list from the public Web API. When
// the API demands authentication the adapter degrades to a partial,
// metadata-only playlist instead of failing outright.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyOEmbedURL = "https://open.spotify.com/oembed"
	spotifyAPIURL    = "https://api.spotify.com/v1"
	spotifyWebURL    = "https://open.spotify.com"
)

var (
	// Base62 playlist IDs are 22 characters.
	spotifyBareIDRe = regexp.MustCompile(`^[A-Za-z0-9]{22}$`)
	spotifyURIRe    = regexp.MustCompile(`spotify:playlist:([A-Za-z0-9]+)`)
	spotifyURLRe    = regexp.MustCompile(`open\.spotify\.com/playlist/([A-Za-z0-9]+)`)
)

// SpotifyAdapter implements [Adapter] for Spotify playlists.
type SpotifyAdapter struct {
	oembedURL  string
	apiURL     string
	httpClient *http.Client
	logger     *log.Logger
}

// SpotifyOpts contains configuration options for creating a SpotifyAdapter.
type SpotifyOpts struct {
	// AccessToken optionally authenticates Web API calls so private
	// playlists resolve fully instead of degrading to partial results.
	AccessToken string
	OEmbedURL   string
	APIURL      string
	HTTPClient  *http.Client
	Logger      *log.Logger
}

// NewSpotifyAdapter creates a new Spotify adapter.
func NewSpotifyAdapter(opts SpotifyOpts) *SpotifyAdapter {
	if opts.OEmbedURL == "" {
		opts.OEmbedURL = spotifyOEmbedURL
	}
	if opts.APIURL == "" {
		opts.APIURL = spotifyAPIURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.AccessToken != "" {
		token := &oauth2.Token{AccessToken: opts.AccessToken}
		opts.HTTPClient = oauth2.NewClient(
			context.WithValue(context.Background(), oauth2.HTTPClient, opts.HTTPClient),
			oauth2.StaticTokenSource(token),
		)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &SpotifyAdapter{
		oembedURL:  opts.OEmbedURL,
		apiURL:     opts.APIURL,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger.With("adapter", "spotify"),
	}
}

// Source identifies the catalog this adapter serves.
func (s *SpotifyAdapter) Source() models.Source { return models.SourceSpotify }

// ExtractID resolves a bare ID, spotify:playlist: URI, or
// open.spotify.com URL into a playlist ID.
func (s *SpotifyAdapter) ExtractID(input string) string {
	if spotifyBareIDRe.MatchString(input) {
		return input
	}
	if m := spotifyURIRe.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if m := spotifyURLRe.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}

// playlistURL builds the canonical web URL for a playlist ID.
func (s *SpotifyAdapter) playlistURL(playlistID string) string {
	return fmt.Sprintf("%s/playlist/%s", spotifyWebURL, playlistID)
}

// fetchMetadata retrieves the playlist title via the oEmbed endpoint,
// which serves public playlists without authentication.
func (s *SpotifyAdapter) fetchMetadata(ctx context.Context, playlistID string) (title string, ok bool) {
	playlistURL := s.playlistURL(playlistID)
	oembedURL := fmt.Sprintf("%s?url=%s", s.oembedURL, url.QueryEscape(playlistURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return "", false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("oEmbed fetch failed", "playlist_id", playlistID, "err", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("oEmbed request failed", "playlist_id", playlistID, "status", resp.StatusCode)
		return "", false
	}

	var data struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", false
	}

	if data.Title == "" {
		data.Title = "Unknown Playlist"
	}
	return data.Title, true
}

type spotifyTrackItem struct {
	Track *struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		DurationMS int    `json:"duration_ms"`
		Artists    []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"artists"`
		Album *struct {
			Name string `json:"name"`
		} `json:"album"`
	} `json:"track"`
}

// FetchPlaylist retrieves a playlist with its track list.
//
// A 401/403 from the Web API yields a partial playlist (Accessible
// false, no tracks) carrying the oEmbed title, so the caller can report
// an authentication failure rather than a generic fetch error. Any
// other failure yields nil.
func (s *SpotifyAdapter) FetchPlaylist(ctx context.Context, urlOrID string) *models.SourcePlaylist {
	playlistID := s.ExtractID(urlOrID)
	if playlistID == "" {
		s.logger.Warn("invalid Spotify playlist URL or ID", "input", urlOrID)
		return nil
	}

	title, ok := s.fetchMetadata(ctx, playlistID)
	if !ok {
		return nil
	}

	s.logger.Info("fetching Spotify playlist", "playlist_id", playlistID)

	apiURL := fmt.Sprintf("%s/playlists/%s/tracks?limit=100", s.apiURL, playlistID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("failed to fetch playlist tracks", "playlist_id", playlistID, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		s.logger.Warn("playlist requires authentication", "playlist_id", playlistID, "status", resp.StatusCode)
		return &models.SourcePlaylist{
			ID:         playlistID,
			Name:       title,
			Tracks:     []models.SourceTrack{},
			Accessible: false,
			URL:        s.playlistURL(playlistID),
		}
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("playlist tracks request failed", "playlist_id", playlistID, "status", resp.StatusCode)
		return nil
	}

	var data struct {
		Items []spotifyTrackItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		s.logger.Error("failed to decode playlist tracks", "playlist_id", playlistID, "err", err)
		return nil
	}

	tracks := make([]models.SourceTrack, 0, len(data.Items))
	for _, item := range data.Items {
		if item.Track == nil {
			continue
		}

		name := item.Track.Name
		if name == "" {
			name = "Unknown Track"
		}

		artists := make([]string, 0, len(item.Track.Artists))
		for _, a := range item.Track.Artists {
			if a.Name == "" {
				artists = append(artists, "Unknown Artist")
				continue
			}
			artists = append(artists, a.Name)
		}

		album := ""
		if item.Track.Album != nil {
			album = item.Track.Album.Name
		}

		tracks = append(tracks, models.SpotifyTrack{
			ID:       item.Track.ID,
			Title:    name,
			Artists:  artists,
			Album:    album,
			Duration: (item.Track.DurationMS + 500) / 1000,
		})
	}

	return &models.SourcePlaylist{
		ID:         playlistID,
		Name:       title,
		Tracks:     tracks,
		Accessible: true,
		URL:        s.playlistURL(playlistID),
	}
}

// ValidatePlaylist reports whether the input resolves to a playlist.
func (s *SpotifyAdapter) ValidatePlaylist(ctx context.Context, urlOrID string) bool {
	return s.FetchPlaylist(ctx, urlOrID) != nil
}
