package models

import (
	"fmt"
	"time"
)

// Source identifies a catalog playlists can be imported from.
type Source string

const (
	SourceSpotify Source = "spotify"
	SourceYouTube Source = "youtube"
)

// ParseSource converts user input into a [Source].
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceSpotify, SourceYouTube:
		return Source(s), nil
	default:
		return "", fmt.Errorf("unknown source %q (must be 'spotify' or 'youtube')", s)
	}
}

// SourceTrack is the accessor contract shared by both source-catalog track shapes.
// Implementations are immutable once constructed.
type SourceTrack interface {
	TrackID() string
	Name() string
	ArtistNames() []string
	AlbumName() string
	DurationSeconds() int
}

// SpotifyTrack is a track as returned by the Spotify playlist endpoints.
type SpotifyTrack struct {
	ID       string
	Title    string
	Artists  []string
	Album    string
	Duration int // seconds
}

func (t SpotifyTrack) TrackID() string       { return t.ID }
func (t SpotifyTrack) Name() string          { return t.Title }
func (t SpotifyTrack) ArtistNames() []string { return t.Artists }
func (t SpotifyTrack) AlbumName() string     { return t.Album }
func (t SpotifyTrack) DurationSeconds() int  { return t.Duration }

// YouTubeTrack is a track as returned by the YouTube playlist endpoints.
type YouTubeTrack struct {
	ID       string
	Title    string
	Artists  []string
	Album    string
	Duration int // seconds
}

func (t YouTubeTrack) TrackID() string       { return t.ID }
func (t YouTubeTrack) Name() string          { return t.Title }
func (t YouTubeTrack) ArtistNames() []string { return t.Artists }
func (t YouTubeTrack) AlbumName() string     { return t.Album }
func (t YouTubeTrack) DurationSeconds() int  { return t.Duration }

// SourcePlaylist is a playlist fetched from a source catalog.
//
// Accessible=false marks a partial, metadata-only result: the catalog
// denied access to the track list, so Tracks is empty.
type SourcePlaylist struct {
	ID         string
	Name       string
	Tracks     []SourceTrack
	Accessible bool
	URL        string
}

// Artist is an artist reference in the target catalog.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is a track in the target catalog (YouTube Music).
type Track struct {
	ID       string   `json:"videoId"`
	Title    string   `json:"title"`
	Artists  []Artist `json:"artists"`
	Album    string   `json:"album,omitempty"`
	Duration int      `json:"duration_seconds,omitempty"`
}

// ArtistNames returns the names of all artists on the track.
func (t Track) ArtistNames() []string {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}
	return names
}

// ImportResult summarizes one completed import run.
type ImportResult struct {
	PlaylistID   string
	PlaylistName string
	Source       Source
	Total        int
	Matched      int
	Failed       int
	Errors       []string
	Duration     time.Duration
}
