package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/repositories"
)

func testResult() *models.ImportResult {
	return &models.ImportResult{
		PlaylistID:   "pl-uuid",
		PlaylistName: "Road Trip",
		Source:       models.SourceSpotify,
		Total:        10,
		Matched:      7,
		Failed:       3,
		Errors: []string{
			`no match found for "Obscure B-Side"`,
			"Rare Demo: proxy unreachable",
			`no match found for "Bootleg Live Cut"`,
		},
		Duration: 12345 * time.Millisecond,
	}
}

func testStoredPlaylist() *repositories.StoredPlaylist {
	return &repositories.StoredPlaylist{
		ID:         "pl-uuid",
		Name:       "Road Trip",
		Source:     models.SourceSpotify,
		SourceID:   "sp123",
		TrackCount: 2,
		Tracks: []repositories.StoredTrack{
			{Position: 0, TrackID: "v1", Title: "Bohemian Rhapsody", Artist: "Queen", Album: "A Night at the Opera", Duration: 354},
			{Position: 1, TrackID: "v2", Title: "Under Pressure", Artist: "Queen, David Bowie", Duration: 248},
		},
	}
}

func TestResultToText(t *testing.T) {
	out := string(ResultToText(testResult()))

	for _, want := range []string{
		"Road Trip",
		"spotify",
		"Matched: 7/10 tracks",
		"(3 failed)",
		"Unmatched tracks:",
		"Obscure B-Side",
		"proxy unreachable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResultToTextNoFailures(t *testing.T) {
	result := testResult()
	result.Matched = 10
	result.Failed = 0
	result.Errors = nil

	out := string(ResultToText(result))
	if strings.Contains(out, "failed") {
		t.Errorf("clean result should not mention failures:\n%s", out)
	}
	if strings.Contains(out, "Unmatched") {
		t.Errorf("clean result should not list unmatched tracks:\n%s", out)
	}
}

func TestPlaylistToCSV(t *testing.T) {
	data, err := PlaylistToCSV(testStoredPlaylist())
	if err != nil {
		t.Fatalf("PlaylistToCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3", len(lines))
	}
	if lines[0] != "Position,Title,Artist,Album,Duration" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,Bohemian Rhapsody,Queen,") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[1], "5:54") {
		t.Errorf("first row missing formatted duration: %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Queen, David Bowie"`) {
		t.Errorf("multi-artist field not quoted: %q", lines[2])
	}
}

func TestPlaylistToMarkdown(t *testing.T) {
	out := string(PlaylistToMarkdown(testStoredPlaylist()))

	for _, want := range []string{
		"# Road Trip",
		"**Source**: spotify",
		"**Tracks**: 2",
		"## Tracks",
		"1. Queen - Bohemian Rhapsody (A Night at the Opera) [5:54]",
		"2. Queen, David Bowie - Under Pressure [4:08]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestPlaylistToText(t *testing.T) {
	out := string(PlaylistToText(testStoredPlaylist()))

	for _, want := range []string{
		"Playlist: Road Trip",
		"Source: spotify (sp123)",
		"Tracks: 2",
		"1. Queen - Bohemian Rhapsody",
		"2. Queen, David Bowie - Under Pressure",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text missing %q:\n%s", want, out)
		}
	}
}
