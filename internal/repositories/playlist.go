package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
)

// StoredPlaylist is a playlist row as persisted by an import run.
type StoredPlaylist struct {
	ID         string        `json:"id"`
	Sequence   int           `json:"-"`
	Name       string        `json:"name"`
	Source     models.Source `json:"source"`
	SourceID   string        `json:"source_id"`
	TrackCount int           `json:"track_count"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Tracks     []StoredTrack `json:"tracks,omitempty"`
}

// StoredTrack is one matched track within a stored playlist.
type StoredTrack struct {
	Position int    `json:"position"`
	TrackID  string `json:"track_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// PlaylistRepository handles playlist persistence with soft delete support.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection.
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// AppendPlaylist saves an imported playlist and its tracks in one
// transaction and returns the generated playlist ID.
func (r *PlaylistRepository) AppendPlaylist(ctx context.Context, name string, src models.Source, sourceID string, tracks []models.Track) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequence, err := NextSequence(tx, "playlists")
	if err != nil {
		return "", fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	now := time.Now()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO playlists (id, sequence, name, source, source_id, track_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, sequence, name, string(src), sourceID, len(tracks), now, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert playlist: %w", err)
	}

	for i, track := range tracks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO playlist_tracks (playlist_id, position, track_id, title, artist, album, duration)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, i, track.ID, track.Title, strings.Join(track.ArtistNames(), ", "), track.Album, track.Duration)
		if err != nil {
			return "", fmt.Errorf("failed to insert track %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit playlist: %w", err)
	}

	return id, nil
}

// Get retrieves a playlist with its tracks, excluding soft-deleted playlists.
func (r *PlaylistRepository) Get(ctx context.Context, id string) (*StoredPlaylist, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, sequence, name, source, source_id, track_count, created_at, updated_at
		FROM playlists
		WHERE id = ? AND deleted_at IS NULL
	`, id)

	playlist, err := scanPlaylist(row)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT position, track_id, title, artist, album, duration
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t StoredTrack
		if err := rows.Scan(&t.Position, &t.TrackID, &t.Title, &t.Artist, &t.Album, &t.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		playlist.Tracks = append(playlist.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlist, nil
}

// List retrieves all playlists in sequence order, excluding soft-deleted
// playlists. Track lists are not populated.
func (r *PlaylistRepository) List(ctx context.Context) ([]*StoredPlaylist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sequence, name, source, source_id, track_count, created_at, updated_at
		FROM playlists
		WHERE deleted_at IS NULL
		ORDER BY sequence ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*StoredPlaylist
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// Delete soft-deletes a playlist by ID.
func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE playlists
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	return nil
}

// scanner is satisfied by both [sql.Row] and [sql.Rows].
type scanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row scanner) (*StoredPlaylist, error) {
	var (
		p      StoredPlaylist
		source string
	)

	err := row.Scan(&p.ID, &p.Sequence, &p.Name, &source, &p.SourceID, &p.TrackCount, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	p.Source = models.Source(source)
	return &p, nil
}
