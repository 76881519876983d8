package source

import (
	"context"
	"errors"
	"testing"

	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/services"
)

type mockMusicService struct {
	playlists map[string]*services.TargetPlaylist
}

func (m *mockMusicService) Search(ctx context.Context, query string, opts services.SearchOptions) ([]services.SearchResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMusicService) GetPlaylist(ctx context.Context, playlistID string) (*services.TargetPlaylist, error) {
	if playlist, ok := m.playlists[playlistID]; ok {
		return playlist, nil
	}
	return nil, errors.New("playlist not found")
}

func TestYouTubeExtractID(t *testing.T) {
	adapter := NewYouTubeAdapter(&mockMusicService{}, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare ID", "PLabc123xyz-_456", "PLabc123xyz-_456"},
		{"playlist URL", "https://www.youtube.com/playlist?list=PLabc123xyz", "PLabc123xyz"},
		{"watch URL with list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123xyz", "PLabc123xyz"},
		{"music.youtube.com URL", "https://music.youtube.com/playlist?list=RDCLAK5uy_abc", "RDCLAK5uy_abc"},
		{"too-short bare ID", "short", ""},
		{"URL without list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExtractID(tt.input); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestYouTubeFetchPlaylist(t *testing.T) {
	music := &mockMusicService{
		playlists: map[string]*services.TargetPlaylist{
			"PLabc123xyz": {
				ID:   "PLabc123xyz",
				Name: "Workout Mix",
				Tracks: []models.Track{
					{
						ID:       "v1",
						Title:    "Eye of the Tiger",
						Artists:  []models.Artist{{ID: "a1", Name: "Survivor"}},
						Album:    "Eye of the Tiger",
						Duration: 245,
					},
				},
			},
		},
	}
	adapter := NewYouTubeAdapter(music, nil)

	playlist := adapter.FetchPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc123xyz")
	if playlist == nil {
		t.Fatal("FetchPlaylist() = nil")
	}
	if playlist.Name != "Workout Mix" {
		t.Errorf("Name = %q", playlist.Name)
	}
	if !playlist.Accessible {
		t.Error("fetched playlist should be accessible")
	}
	if len(playlist.Tracks) != 1 {
		t.Fatalf("len(Tracks) = %d, want 1", len(playlist.Tracks))
	}

	track := playlist.Tracks[0]
	if track.TrackID() != "v1" || track.Name() != "Eye of the Tiger" {
		t.Errorf("track = %s/%s", track.TrackID(), track.Name())
	}
	if artists := track.ArtistNames(); len(artists) != 1 || artists[0] != "Survivor" {
		t.Errorf("artists = %v", artists)
	}
	if track.DurationSeconds() != 245 {
		t.Errorf("duration = %d", track.DurationSeconds())
	}

	if playlist.URL != "https://www.youtube.com/playlist?list=PLabc123xyz" {
		t.Errorf("URL = %q", playlist.URL)
	}
}

func TestYouTubeFetchPlaylistNotFound(t *testing.T) {
	adapter := NewYouTubeAdapter(&mockMusicService{}, nil)

	if playlist := adapter.FetchPlaylist(context.Background(), "PLmissing123"); playlist != nil {
		t.Errorf("missing playlist should yield nil, got %+v", playlist)
	}
}

func TestYouTubeFetchPlaylistInvalidInput(t *testing.T) {
	adapter := NewYouTubeAdapter(&mockMusicService{}, nil)

	if playlist := adapter.FetchPlaylist(context.Background(), "???"); playlist != nil {
		t.Errorf("invalid input should yield nil, got %+v", playlist)
	}
}

func TestYouTubeValidatePlaylist(t *testing.T) {
	music := &mockMusicService{
		playlists: map[string]*services.TargetPlaylist{
			"PLwithtracks": {
				ID:     "PLwithtracks",
				Name:   "Has Tracks",
				Tracks: []models.Track{{ID: "v1", Title: "Song"}},
			},
			"PLemptylist1": {
				ID:   "PLemptylist1",
				Name: "Empty",
			},
		},
	}
	adapter := NewYouTubeAdapter(music, nil)

	if !adapter.ValidatePlaylist(context.Background(), "PLwithtracks") {
		t.Error("playlist with tracks should validate")
	}
	if adapter.ValidatePlaylist(context.Background(), "PLemptylist1") {
		t.Error("empty playlist should not validate")
	}
	if adapter.ValidatePlaylist(context.Background(), "PLmissing999") {
		t.Error("missing playlist should not validate")
	}
}
