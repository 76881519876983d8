package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/oakenplay/portamento/internal/formatter"
	"github.com/oakenplay/portamento/internal/importer"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/urfave/cli/v3"
)

// ImportRun fetches a playlist from the source catalog, matches its
// tracks and saves the result into the local library.
func (r *Runner) ImportRun(ctx context.Context, cmd *cli.Command) error {
	src, err := models.ParseSource(cmd.String("source"))
	if err != nil {
		return err
	}
	urlOrID := cmd.String("url")
	customName := cmd.String("name")
	asJSON := cmd.Bool("json")

	store, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	im := r.newImporter(store)

	// Ctrl+C requests cooperative cancellation instead of killing the
	// process mid-write.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		im.CancelImport()
	}()

	if !asJSON {
		unsubscribe := im.OnProgress(func(p importer.Progress) {
			switch p.Status {
			case importer.StatusFetching:
				r.writePlain("📥 %s\n", p.Message)
			case importer.StatusMatching:
				if p.CurrentTrack == "" {
					r.writePlain("\n🔍 %s\n", p.Message)
				} else {
					r.writePlain("   %s\n", p.Message)
				}
			case importer.StatusCreating:
				r.writePlain("\n📝 %s\n", p.Message)
			case importer.StatusCancelled:
				r.writePlain("\n✗ %s\n", p.Message)
			}
		})
		defer unsubscribe()
	}

	r.logger.Info("starting import", "source", src, "input", urlOrID)

	result, err := im.ImportPlaylist(ctx, src, urlOrID, customName)
	if err != nil {
		return err
	}

	if asJSON {
		return r.writeJSON(result, true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Import Complete!")
	return r.writePlain("%s", formatter.ResultToText(result))
}

// Validate checks that a playlist URL or ID resolves to an importable playlist.
func (r *Runner) Validate(ctx context.Context, cmd *cli.Command) error {
	src, err := models.ParseSource(cmd.String("source"))
	if err != nil {
		return err
	}
	urlOrID := cmd.String("url")

	adapter, err := r.adapterFor(src)
	if err != nil {
		return err
	}

	if id := adapter.ExtractID(urlOrID); id == "" {
		r.writePlain("✗ Not a recognizable %s playlist URL or ID\n", src)
		return fmt.Errorf("%w: %q", shared.ErrInvalidPlaylist, urlOrID)
	}

	if !adapter.ValidatePlaylist(ctx, urlOrID) {
		r.writePlain("✗ Playlist is not accessible or has no tracks\n")
		return fmt.Errorf("%w: %q", shared.ErrInvalidPlaylist, urlOrID)
	}

	r.writePlain("✓ Playlist is importable\n")
	return nil
}

// importCommand runs a full playlist import
func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a playlist from Spotify or YouTube",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    "Source catalog (spotify or youtube)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    "Playlist URL or ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Override the playlist name",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit the import result as JSON",
			},
		},
		Action: r.ImportRun,
	}
}

// validateCommand checks a playlist without importing it
func validateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check that a playlist URL or ID is importable",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    "Source catalog (spotify or youtube)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    "Playlist URL or ID",
				Required: true,
			},
		},
		Action: r.Validate,
	}
}
