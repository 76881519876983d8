package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/oakenplay/portamento/internal/importer"
	"github.com/oakenplay/portamento/internal/match"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/repositories"
	"github.com/oakenplay/portamento/internal/services"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/oakenplay/portamento/internal/source"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	music   services.MusicService
	spotify source.Adapter
	youtube source.Adapter
	matcher *match.Matcher
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Music   services.MusicService
	Spotify source.Adapter
	YouTube source.Adapter
	Matcher *match.Matcher
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Matcher == nil {
		opts.Matcher = match.NewMatcher(match.MatcherOpts{
			Music:       opts.Music,
			Logger:      opts.Logger,
			SearchLimit: opts.Config.Credentials.YouTube.SearchLimit,
		})
	}

	return &Runner{
		config:  opts.Config,
		music:   opts.Music,
		spotify: opts.Spotify,
		youtube: opts.YouTube,
		matcher: opts.Matcher,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while the
// TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, importCommand, validateCommand, playlistsCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// adapterFor resolves a source name to its adapter.
func (r *Runner) adapterFor(src models.Source) (source.Adapter, error) {
	switch src {
	case models.SourceSpotify:
		if r.spotify == nil {
			return nil, fmt.Errorf("%w: Spotify adapter not initialized", shared.ErrServiceUnavailable)
		}
		return r.spotify, nil
	case models.SourceYouTube:
		if r.youtube == nil {
			return nil, fmt.Errorf("%w: YouTube adapter not initialized", shared.ErrServiceUnavailable)
		}
		return r.youtube, nil
	default:
		return nil, fmt.Errorf("%w: invalid source '%s' (must be 'spotify' or 'youtube')", shared.ErrInvalidArgument, src)
	}
}

// openRepository opens the configured database and returns the playlist
// repository. The caller owns closing the handle.
func (r *Runner) openRepository() (*repositories.PlaylistRepository, *sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return repositories.NewPlaylistRepository(db), db, nil
}

// newImporter builds an importer over the runner's adapters, matcher
// and the given store.
func (r *Runner) newImporter(store importer.PlaylistStore) *importer.Importer {
	adapters := []source.Adapter{}
	if r.spotify != nil {
		adapters = append(adapters, r.spotify)
	}
	if r.youtube != nil {
		adapters = append(adapters, r.youtube)
	}

	return importer.NewImporter(importer.ImporterOpts{
		Adapters:      adapters,
		Matcher:       r.matcher,
		Store:         store,
		Logger:        r.logger,
		ProgressEvery: r.config.Matching.ProgressEvery,
	})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
