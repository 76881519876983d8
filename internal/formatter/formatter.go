// package formatter renders import results and stored playlists to
// various output formats (plain text, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/repositories"
	"github.com/oakenplay/portamento/internal/shared"
)

// ResultToText renders an import summary as plain text.
func ResultToText(result *models.ImportResult) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Imported: %s\n", result.PlaylistName))
	buf.WriteString(fmt.Sprintf("Source: %s\n", result.Source))
	buf.WriteString(fmt.Sprintf("Playlist ID: %s\n", result.PlaylistID))
	buf.WriteString(fmt.Sprintf("Matched: %d/%d tracks", result.Matched, result.Total))
	if result.Failed > 0 {
		buf.WriteString(fmt.Sprintf(" (%d failed)", result.Failed))
	}
	buf.WriteString(fmt.Sprintf("\nTook: %s\n", result.Duration.Round(time.Millisecond)))

	if len(result.Errors) > 0 {
		buf.WriteString("\nUnmatched tracks:\n")
		for _, msg := range result.Errors {
			buf.WriteString(fmt.Sprintf("  - %s\n", msg))
		}
	}

	return buf.Bytes()
}

// PlaylistToCSV converts a stored playlist to CSV with columns: Position, Title, Artist, Album, Duration.
func PlaylistToCSV(playlist *repositories.StoredPlaylist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Title", "Artist", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range playlist.Tracks {
		record := []string{
			strconv.Itoa(track.Position + 1),
			track.Title,
			track.Artist,
			track.Album,
			shared.FormatDuration(track.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// PlaylistToMarkdown converts a stored playlist to Markdown.
func PlaylistToMarkdown(playlist *repositories.StoredPlaylist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("**Source**: %s\n", playlist.Source))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", playlist.TrackCount))

	buf.WriteString("## Tracks\n\n")
	for _, track := range playlist.Tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n",
			track.Position+1, track.Artist, track.Title, albumPart, shared.FormatDuration(track.Duration)))
	}

	return buf.Bytes()
}

// PlaylistToText converts a stored playlist to plain text.
func PlaylistToText(playlist *repositories.StoredPlaylist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("Source: %s (%s)\n", playlist.Source, playlist.SourceID))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", playlist.TrackCount))

	for _, track := range playlist.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", track.Position+1, track.Artist, track.Title))
	}

	return buf.Bytes()
}
