package main

import (
	"context"
	"errors"
	"os"

	"github.com/oakenplay/portamento/internal/services"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/oakenplay/portamento/internal/source"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	music := services.NewYouTubeMusicClient(services.YouTubeMusicOpts{
		BaseURL:   config.Credentials.YouTube.ProxyURL,
		AuthFile:  config.Credentials.YouTube.AuthFile,
		RateLimit: config.Credentials.YouTube.RateLimit,
		RateBurst: config.Credentials.YouTube.RateBurst,
		Logger:    logger,
	})

	spotify := source.NewSpotifyAdapter(source.SpotifyOpts{
		AccessToken: config.Credentials.Spotify.AccessToken,
		Logger:      logger,
	})
	youtube := source.NewYouTubeAdapter(music, logger)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Music:   music,
		Spotify: spotify,
		YouTube: youtube,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "portamento",
		Usage:    "Import playlists from Spotify & YouTube into your library",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrImportCancelled) {
			logger.Warn("import cancelled")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}
