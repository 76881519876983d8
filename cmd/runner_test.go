package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/oakenplay/portamento/internal/match"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
	"github.com/oakenplay/portamento/internal/source"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			spotify := source.NewSpotifyAdapter(source.SpotifyOpts{})
			matcher := match.NewMatcher(match.MatcherOpts{})

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Logger:  logger,
				Output:  output,
				Spotify: spotify,
				Matcher: matcher,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.spotify != spotify {
				t.Error("expected spotify adapter to be set")
			}
			if runner.matcher != matcher {
				t.Error("expected matcher to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.matcher == nil {
				t.Error("expected default matcher to be built")
			}
		})
	})

	t.Run("adapterFor", func(t *testing.T) {
		spotify := source.NewSpotifyAdapter(source.SpotifyOpts{})
		runner := NewRunner(RunnerOpts{Spotify: spotify})

		t.Run("resolves spotify", func(t *testing.T) {
			adapter, err := runner.adapterFor(models.SourceSpotify)
			if err != nil {
				t.Fatalf("adapterFor() error = %v", err)
			}
			if adapter != spotify {
				t.Error("wrong adapter returned")
			}
		})

		t.Run("missing adapter", func(t *testing.T) {
			_, err := runner.adapterFor(models.SourceYouTube)
			if !errors.Is(err, shared.ErrServiceUnavailable) {
				t.Errorf("error = %v, want ErrServiceUnavailable", err)
			}
		})

		t.Run("unknown source", func(t *testing.T) {
			_, err := runner.adapterFor(models.Source("tidal"))
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("matched %d/%d\n", 7, 10); err != nil {
			t.Fatalf("writePlain() error = %v", err)
		}
		if got := output.String(); got != "matched 7/10\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]int{"matched": 7}, false); err != nil {
			t.Fatalf("writeJSON() error = %v", err)
		}
		if got := output.String(); got != "{\"matched\":7}\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("register wires all commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		want := []string{"setup", "import", "validate", "playlists", "cache", "tui"}
		if len(commands) != len(want) {
			t.Fatalf("registered %d commands, want %d", len(commands), len(want))
		}
		for i, name := range want {
			if commands[i].Name != name {
				t.Errorf("commands[%d].Name = %q, want %q", i, commands[i].Name, name)
			}
		}
	})
}

func TestNewImporter(t *testing.T) {
	spotify := source.NewSpotifyAdapter(source.SpotifyOpts{})
	runner := NewRunner(RunnerOpts{Spotify: spotify})

	im := runner.newImporter(nil)
	if im == nil {
		t.Fatal("newImporter() = nil")
	}
	if im.CurrentImport() != nil {
		t.Error("fresh importer should be idle")
	}
}

func TestParseSourceMessages(t *testing.T) {
	_, err := models.ParseSource("tidal")
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	if !strings.Contains(err.Error(), "spotify") {
		t.Errorf("error should name valid sources: %v", err)
	}
}
