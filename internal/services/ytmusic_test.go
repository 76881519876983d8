package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oakenplay/portamento/internal/shared"
)

func TestSearch(t *testing.T) {
	var gotPath, gotQuery, gotAuthFile string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAuthFile = r.Header.Get("X-Auth-File")
		fmt.Fprint(w, `{"results": [
			{"type": "song", "data": {"videoId": "v1", "title": "Bohemian Rhapsody",
				"artists": [{"id": "a1", "name": "Queen"}], "duration_seconds": 354}},
			{"type": "video", "data": {"videoId": "v2", "title": "Live Version"}}
		]}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{
		BaseURL:  server.URL,
		AuthFile: "browser.json",
	})

	results, err := client.Search(context.Background(), "Queen Bohemian Rhapsody", SearchOptions{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotPath != "/api/search" {
		t.Errorf("path = %q, want /api/search", gotPath)
	}
	if gotQuery != "Queen Bohemian Rhapsody" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotAuthFile != "browser.json" {
		t.Errorf("X-Auth-File = %q", gotAuthFile)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Type != "song" {
		t.Errorf("results[0].Type = %q", results[0].Type)
	}
	if results[0].Track.ID != "v1" || results[0].Track.Duration != 354 {
		t.Errorf("results[0].Track = %+v", results[0].Track)
	}
	if artists := results[0].Track.ArtistNames(); len(artists) != 1 || artists[0] != "Queen" {
		t.Errorf("artists = %v", artists)
	}
}

func TestSearchDefaults(t *testing.T) {
	var gotFilter, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		gotLimit = r.URL.Query().Get("limit")
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{BaseURL: server.URL})
	if _, err := client.Search(context.Background(), "anything", SearchOptions{}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotFilter != "songs" {
		t.Errorf("default filter = %q, want songs", gotFilter)
	}
	if gotLimit != "10" {
		t.Errorf("default limit = %q, want 10", gotLimit)
	}
}

func TestGetPlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/playlists/PLabc123" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"id": "PLabc123", "title": "Workout Mix", "tracks": [
			{"videoId": "v1", "title": "Eye of the Tiger", "artists": [{"name": "Survivor"}], "duration_seconds": 245}
		]}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{BaseURL: server.URL})

	playlist, err := client.GetPlaylist(context.Background(), "PLabc123")
	if err != nil {
		t.Fatalf("GetPlaylist() error = %v", err)
	}
	if playlist.ID != "PLabc123" || playlist.Name != "Workout Mix" {
		t.Errorf("playlist = %+v", playlist)
	}
	if len(playlist.Tracks) != 1 || playlist.Tracks[0].Title != "Eye of the Tiger" {
		t.Errorf("tracks = %+v", playlist.Tracks)
	}
}

func TestGetPlaylistNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail": "playlist not found"}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{BaseURL: server.URL})

	_, err := client.GetPlaylist(context.Background(), "PLmissing")
	if !errors.Is(err, shared.ErrPlaylistNotFound) {
		t.Errorf("error = %v, want ErrPlaylistNotFound", err)
	}
}

func TestRequestErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"detail": "ytmusicapi backend unavailable"}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{BaseURL: server.URL})

	_, err := client.Search(context.Background(), "anything", SearchOptions{})
	if !errors.Is(err, shared.ErrAPIRequest) {
		t.Fatalf("error = %v, want ErrAPIRequest", err)
	}
	if got := err.Error(); !strings.Contains(got, "ytmusicapi backend unavailable") {
		t.Errorf("error should carry the proxy detail, got %q", got)
	}
}

func TestRequestContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer server.Close()

	client := NewYouTubeMusicClient(YouTubeMusicOpts{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, "anything", SearchOptions{}); err == nil {
		t.Error("cancelled context should fail the request")
	}
}
