// YouTube Music [MusicService] implementation.
//
// Communicates with the FastAPI proxy server wrapping the ytmusicapi
// Python library for YouTube Music operations.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/shared"
	"golang.org/x/time/rate"
)

const defaultProxyURL = "http://localhost:8080"

// YouTubeMusicClient implements [MusicService] against the ytmusicapi proxy.
type YouTubeMusicClient struct {
	baseURL    string
	authFile   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// YouTubeMusicOpts contains configuration options for creating a client.
type YouTubeMusicOpts struct {
	BaseURL    string
	AuthFile   string
	HTTPClient *http.Client
	RateLimit  float64 // requests per second, 0 = default
	RateBurst  int
	Logger     *log.Logger
}

// NewYouTubeMusicClient creates a new YouTube Music client instance.
func NewYouTubeMusicClient(opts YouTubeMusicOpts) *YouTubeMusicClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultProxyURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 10
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &YouTubeMusicClient{
		baseURL:    opts.BaseURL,
		authFile:   opts.AuthFile,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
		logger:     opts.Logger.With("client", "ytmusic"),
	}
}

func (y *YouTubeMusicClient) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := y.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	apiURL := y.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if y.authFile != "" {
		req.Header.Set("X-Auth-File", y.authFile)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: status 404", shared.ErrPlaylistNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Search runs a text search against the proxy.
//
// Calls GET /api/search?q={query}&filter={type}&limit={limit}.
func (y *YouTubeMusicClient) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	if opts.Type == "" {
		opts.Type = "songs"
	}
	if opts.Limit <= 0 {
		opts.Limit = 10
	}

	endpoint := fmt.Sprintf("/api/search?q=%s&filter=%s&limit=%d",
		url.QueryEscape(query), url.QueryEscape(opts.Type), opts.Limit)

	y.logger.Debug("searching", "query", query, "filter", opts.Type)

	var response struct {
		Results []SearchResult `json:"results"`
	}
	if err := y.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

// GetPlaylist retrieves a playlist with its full track list.
//
// Calls GET /api/playlists/{id} on the proxy.
func (y *YouTubeMusicClient) GetPlaylist(ctx context.Context, playlistID string) (*TargetPlaylist, error) {
	endpoint := fmt.Sprintf("/api/playlists/%s", url.PathEscape(playlistID))

	var playlist TargetPlaylist
	if err := y.doRequest(ctx, endpoint, &playlist); err != nil {
		return nil, err
	}

	return &playlist, nil
}
