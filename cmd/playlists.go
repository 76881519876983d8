package main

import (
	"context"
	"fmt"

	"github.com/oakenplay/portamento/internal/formatter"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistsList prints all imported playlists.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	store, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	playlists, err := store.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		return r.writePlain("No playlists imported yet. Run 'portamento import' first.\n")
	}

	for _, p := range playlists {
		r.writePlain("%s  %s (%s, %d tracks)\n", p.ID, p.Name, p.Source, p.TrackCount)
	}
	return nil
}

// PlaylistsShow prints one playlist with its tracks in the requested format.
func (r *Runner) PlaylistsShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	format := cmd.String("format")

	store, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	playlist, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return r.writeJSON(playlist, true)
	case "csv":
		data, err := formatter.PlaylistToCSV(playlist)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		return r.writePlain("%s", formatter.PlaylistToMarkdown(playlist))
	case "text", "":
		return r.writePlain("%s", formatter.PlaylistToText(playlist))
	default:
		return fmt.Errorf("%w: unknown format %q (must be text, json, csv or markdown)", shared.ErrInvalidArgument, format)
	}
}

// PlaylistsDelete soft-deletes an imported playlist.
func (r *Runner) PlaylistsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	store, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("playlist deleted", "id", id)
	return r.writePlain("✓ Playlist %s deleted\n", id)
}

// playlistsCommand manages the local library of imported playlists
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "Inspect imported playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List imported playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Emit JSON"},
				},
				Action: r.PlaylistsList,
			},
			{
				Name:  "show",
				Usage: "Show one playlist with its tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, json, csv, markdown",
						Value:   "text",
					},
				},
				Action: r.PlaylistsShow,
			},
			{
				Name:  "delete",
				Usage: "Delete an imported playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
				},
				Action: r.PlaylistsDelete,
			},
		},
	}
}
