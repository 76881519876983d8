package match

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/services"
	"github.com/oakenplay/portamento/internal/shared"
)

// Result is the outcome of matching one source track.
//
// Matched is nil exactly when Confidence is [ConfidenceNone]. Err
// carries the lookup failure message when the target catalog call
// failed; match misses with a clean lookup leave it empty.
type Result struct {
	Original   models.SourceTrack
	Matched    *models.Track
	Confidence Confidence
	Err        string
}

// Score computes the weighted match score for a candidate against a
// source track.
func Score(original models.SourceTrack, candidate models.Track) float64 {
	score := Similarity(original.Name(), candidate.Title) * titleWeight

	if ArtistsOverlap(original.ArtistNames(), candidate.ArtistNames()) {
		score += artistWeight
	}

	score += DurationScore(original.DurationSeconds(), candidate.Duration) * durationWeight

	return score
}

// BuildQuery joins up to the first two artist names with the track
// title into a search query.
func BuildQuery(track models.SourceTrack) string {
	artists := track.ArtistNames()
	if len(artists) > 2 {
		artists = artists[:2]
	}
	return strings.TrimSpace(strings.Join(artists, ", ") + " " + track.Name())
}

// Matcher resolves source tracks to target-catalog tracks.
//
// Both caches live for the process lifetime unless explicitly cleared.
// They are guarded for concurrent use, though imports match tracks
// sequentially.
type Matcher struct {
	music  services.MusicService
	logger *log.Logger
	limit  int

	mu          sync.Mutex
	searchCache map[string][]models.Track
	matchCache  map[string]Result
}

// MatcherOpts contains configuration options for creating a Matcher.
type MatcherOpts struct {
	Music       services.MusicService
	Logger      *log.Logger
	SearchLimit int // candidates per search, 0 = 10
}

// NewMatcher creates a new Matcher backed by the given target catalog client.
func NewMatcher(opts MatcherOpts) *Matcher {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 10
	}

	return &Matcher{
		music:       opts.Music,
		logger:      opts.Logger.With("component", "matcher"),
		limit:       opts.SearchLimit,
		searchCache: make(map[string][]models.Track),
		matchCache:  make(map[string]Result),
	}
}

// trackKey builds the composite match-cache key: first artist, display
// name and duration.
func trackKey(track models.SourceTrack) string {
	first := ""
	if artists := track.ArtistNames(); len(artists) > 0 {
		first = artists[0]
	}
	return fmt.Sprintf("%s-%s-%d", first, track.Name(), track.DurationSeconds())
}

// searchCandidates retrieves song candidates for a track, consulting
// the query-keyed cache first.
func (m *Matcher) searchCandidates(ctx context.Context, track models.SourceTrack) ([]models.Track, error) {
	query := BuildQuery(track)

	m.mu.Lock()
	cached, ok := m.searchCache[query]
	m.mu.Unlock()
	if ok {
		m.logger.Debug("using cached search results", "query", query)
		return cached, nil
	}

	results, err := m.music.Search(ctx, query, services.SearchOptions{Type: "songs", Limit: m.limit})
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Track, 0, len(results))
	for _, r := range results {
		if r.Type == "song" {
			candidates = append(candidates, r.Track)
		}
	}

	m.mu.Lock()
	m.searchCache[query] = candidates
	m.mu.Unlock()

	return candidates, nil
}

// FindMatch resolves a source track to its best target-catalog match.
//
// Failures never propagate: a failed catalog call or an empty candidate
// list yields a none-confidence Result instead.
func (m *Matcher) FindMatch(ctx context.Context, track models.SourceTrack) Result {
	key := trackKey(track)

	m.mu.Lock()
	cached, ok := m.matchCache[key]
	m.mu.Unlock()
	if ok {
		m.logger.Debug("using cached match", "track", track.Name())
		return cached
	}

	candidates, err := m.searchCandidates(ctx, track)
	if err != nil {
		m.logger.Error("track search failed", "track", track.Name(), "err", err)
		// Not cached: a transient failure should not pin "no match"
		// for the rest of the process.
		return Result{Original: track, Confidence: ConfidenceNone, Err: err.Error()}
	}

	if len(candidates) == 0 {
		result := Result{Original: track, Confidence: ConfidenceNone}
		m.mu.Lock()
		m.matchCache[key] = result
		m.mu.Unlock()
		return result
	}

	best := candidates[0]
	bestScore := Score(track, best)
	for _, candidate := range candidates[1:] {
		// Strictly greater keeps the earliest candidate on ties.
		if s := Score(track, candidate); s > bestScore {
			best = candidate
			bestScore = s
		}
	}

	confidence := Classify(bestScore)
	result := Result{Original: track, Confidence: confidence}
	if confidence != ConfidenceNone {
		matched := best
		result.Matched = &matched
	}

	m.logger.Debug("track matched",
		"original", track.Name(), "matched", best.Title,
		"score", fmt.Sprintf("%.2f", bestScore), "confidence", confidence)

	m.mu.Lock()
	m.matchCache[key] = result
	m.mu.Unlock()

	return result
}

// ClearCache drops both caches.
func (m *Matcher) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCache = make(map[string][]models.Track)
	m.matchCache = make(map[string]Result)
	m.logger.Debug("caches cleared")
}

// CacheStats reports the number of entries in the search and match caches.
func (m *Matcher) CacheStats() (searches, matches int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.searchCache), len(m.matchCache)
}
