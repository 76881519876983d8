package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/oakenplay/portamento/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for a playlist import.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	src, err := models.ParseSource(cmd.String("source"))
	if err != nil {
		return err
	}
	urlOrID := cmd.String("url")
	customName := cmd.String("name")

	store, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/portamento-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	im := r.newImporter(store)

	model := ui.NewModel(ctx, im, src, urlOrID, customName)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// tuiCommand launches the interactive importer
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Import a playlist with a live progress view",
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
		},
		Action: r.TUI,
	}
}
