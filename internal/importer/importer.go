package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/match"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/oakenplay/portamento/internal/source"
)

const defaultProgressEvery = 5

// PlaylistStore persists an imported playlist.
type PlaylistStore interface {
	// AppendPlaylist saves a playlist with the given tracks and returns
	// the ID of the stored playlist.
	AppendPlaylist(ctx context.Context, name string, src models.Source, sourceID string, tracks []models.Track) (string, error)
}

// Importer runs playlist imports. At most one import is active at a
// time; a second call to ImportPlaylist while one is running fails with
// [shared.ErrImportInProgress].
type Importer struct {
	adapters      map[models.Source]source.Adapter
	matcher       *match.Matcher
	store         PlaylistStore
	bus           *Bus
	logger        *log.Logger
	progressEvery int

	mu      sync.Mutex
	current *run
}

type run struct {
	source    models.Source
	input     string
	startedAt time.Time
	cancel    context.CancelFunc
}

// RunInfo describes the import currently in flight.
type RunInfo struct {
	Source    models.Source
	Input     string
	StartedAt time.Time
}

// ImporterOpts contains configuration options for creating an Importer.
type ImporterOpts struct {
	Adapters []source.Adapter
	Matcher  *match.Matcher
	Store    PlaylistStore
	Bus      *Bus
	Logger   *log.Logger
	// ProgressEvery throttles per-track matching events: one event per
	// N tracks plus one at the final track. Defaults to 5.
	ProgressEvery int
}

// NewImporter creates an importer wired to the given adapters, matcher
// and store.
func NewImporter(opts ImporterOpts) *Importer {
	if opts.Bus == nil {
		opts.Bus = NewBus()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = defaultProgressEvery
	}

	adapters := make(map[models.Source]source.Adapter, len(opts.Adapters))
	for _, a := range opts.Adapters {
		adapters[a.Source()] = a
	}

	return &Importer{
		adapters:      adapters,
		matcher:       opts.Matcher,
		store:         opts.Store,
		bus:           opts.Bus,
		logger:        opts.Logger.With("component", "importer"),
		progressEvery: opts.ProgressEvery,
	}
}

// OnProgress subscribes to progress events and returns the unsubscribe
// function.
func (im *Importer) OnProgress(fn func(Progress)) func() {
	return im.bus.Subscribe(fn)
}

// CurrentImport returns a description of the running import, or nil
// when idle.
func (im *Importer) CurrentImport() *RunInfo {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.current == nil {
		return nil
	}
	return &RunInfo{
		Source:    im.current.source,
		Input:     im.current.input,
		StartedAt: im.current.startedAt,
	}
}

// CancelImport requests cancellation of the running import, if any. The
// run stops at its next checkpoint and emits a cancelled event.
func (im *Importer) CancelImport() {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.current != nil {
		im.logger.Info("cancelling import", "source", im.current.source, "input", im.current.input)
		im.current.cancel()
	}
}

// ValidatePlaylist reports whether the input resolves to a usable
// playlist on the given source.
func (im *Importer) ValidatePlaylist(ctx context.Context, src models.Source, urlOrID string) (bool, error) {
	adapter, ok := im.adapters[src]
	if !ok {
		return false, fmt.Errorf("%w: no adapter for source %q", shared.ErrInvalidArgument, src)
	}
	return adapter.ValidatePlaylist(ctx, urlOrID), nil
}

// begin registers the run marker, failing when an import is already
// active.
func (im *Importer) begin(ctx context.Context, src models.Source, input string) (context.Context, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.current != nil {
		return nil, fmt.Errorf("%w: already importing %s playlist %q",
			shared.ErrImportInProgress, im.current.source, im.current.input)
	}

	runCtx, cancel := context.WithCancel(ctx)
	im.current = &run{
		source:    src,
		input:     input,
		startedAt: time.Now(),
		cancel:    cancel,
	}
	return runCtx, nil
}

// end clears the run marker and releases the run context.
func (im *Importer) end() {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.current != nil {
		im.current.cancel()
		im.current = nil
	}
}

// ImportPlaylist fetches a playlist from the source catalog, matches
// every track against the target catalog and persists the matched
// tracks as a new playlist. Tracks that fail to match are recorded in
// the result's Errors list and do not abort the import.
//
// customName overrides the playlist name when non-empty.
func (im *Importer) ImportPlaylist(ctx context.Context, src models.Source, urlOrID, customName string) (*models.ImportResult, error) {
	adapter, ok := im.adapters[src]
	if !ok {
		return nil, fmt.Errorf("%w: no adapter for source %q", shared.ErrInvalidArgument, src)
	}

	runCtx, err := im.begin(ctx, src, urlOrID)
	if err != nil {
		return nil, err
	}
	defer im.end()

	result, err := im.runImport(runCtx, adapter, urlOrID, customName)
	if err != nil {
		if errors.Is(err, shared.ErrImportCancelled) {
			im.logger.Info("import cancelled", "source", src, "input", urlOrID)
			return nil, err
		}
		im.logger.Error("import failed", "source", src, "input", urlOrID, "err", err)
		im.bus.Publish(Progress{Status: StatusFailed, Message: err.Error()})
		return nil, err
	}

	im.logger.Info("import completed",
		"source", src,
		"playlist", result.PlaylistName,
		"matched", result.Matched,
		"failed", result.Failed,
		"duration", result.Duration)
	return result, nil
}

// runImport drives the fetch → match → persist pipeline. The only
// errors it returns are fatal: fetch failures, persistence failures and
// cancellation. Per-track misses are folded into the result.
func (im *Importer) runImport(ctx context.Context, adapter source.Adapter, urlOrID, customName string) (*models.ImportResult, error) {
	src := adapter.Source()
	started := time.Now()

	im.bus.Publish(Progress{
		Status:  StatusFetching,
		Message: fmt.Sprintf("Fetching %s playlist...", src),
	})

	playlist := adapter.FetchPlaylist(ctx, urlOrID)
	if err := ctx.Err(); err != nil {
		return nil, im.cancelled(0, 0)
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: failed to fetch %s playlist %q", shared.ErrPlaylistNotFound, src, urlOrID)
	}
	if !playlist.Accessible {
		return nil, fmt.Errorf("%w: playlist %q requires authentication; it may be private",
			shared.ErrRequiresAuth, playlist.Name)
	}
	if len(playlist.Tracks) == 0 {
		return nil, fmt.Errorf("%w: playlist %q has no tracks", shared.ErrEmptyPlaylist, playlist.Name)
	}

	name := customName
	if name == "" {
		name = playlist.Name
	}
	total := len(playlist.Tracks)

	im.logger.Info("matching tracks", "playlist", name, "track_count", total)
	im.bus.Publish(Progress{
		Status:  StatusMatching,
		Total:   total,
		Message: fmt.Sprintf("Matching %d tracks...", total),
	})

	matched := make([]models.Track, 0, total)
	var failures []string

	for i, track := range playlist.Tracks {
		if err := ctx.Err(); err != nil {
			return nil, im.cancelled(i, total)
		}

		if i%im.progressEvery == 0 || i == total-1 {
			im.bus.Publish(Progress{
				Status:       StatusMatching,
				Current:      i,
				Total:        total,
				CurrentTrack: track.Name(),
				Message:      fmt.Sprintf("Matching %q (%d/%d)", track.Name(), i+1, total),
			})
		}

		res := im.matcher.FindMatch(ctx, track)
		if res.Matched != nil {
			matched = append(matched, *res.Matched)
			continue
		}

		if res.Err != "" {
			failures = append(failures, fmt.Sprintf("%s: %s", track.Name(), res.Err))
		} else {
			failures = append(failures, fmt.Sprintf("no match found for %q", track.Name()))
		}
	}

	im.bus.Publish(Progress{
		Status:  StatusCreating,
		Current: total,
		Total:   total,
		Message: fmt.Sprintf("Creating playlist %q...", name),
	})

	playlistID, err := im.store.AppendPlaylist(ctx, name, src, playlist.ID, matched)
	if err != nil {
		if ctx.Err() != nil {
			return nil, im.cancelled(total, total)
		}
		return nil, fmt.Errorf("failed to save playlist %q: %w", name, err)
	}

	im.bus.Publish(Progress{
		Status:  StatusCompleted,
		Current: total,
		Total:   total,
		Message: fmt.Sprintf("Imported %d of %d tracks", len(matched), total),
	})

	return &models.ImportResult{
		PlaylistID:   playlistID,
		PlaylistName: name,
		Source:       src,
		Total:        total,
		Matched:      len(matched),
		Failed:       len(failures),
		Errors:       failures,
		Duration:     time.Since(started),
	}, nil
}

// cancelled emits the cancelled event and builds the sentinel error.
func (im *Importer) cancelled(current, total int) error {
	im.bus.Publish(Progress{
		Status:  StatusCancelled,
		Current: current,
		Total:   total,
		Message: "Import cancelled",
	})
	return shared.ErrImportCancelled
}
