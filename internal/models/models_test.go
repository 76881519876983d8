package models

import "testing"

func TestParseSource(t *testing.T) {
	tests := []struct {
		input   string
		want    Source
		wantErr bool
	}{
		{"spotify", SourceSpotify, false},
		{"youtube", SourceYouTube, false},
		{"tidal", "", true},
		{"Spotify", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSource(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSource(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSource(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrackArtistNames(t *testing.T) {
	track := Track{
		Title:   "Under Pressure",
		Artists: []Artist{{Name: "Queen"}, {Name: "David Bowie"}},
	}

	names := track.ArtistNames()
	if len(names) != 2 || names[0] != "Queen" || names[1] != "David Bowie" {
		t.Errorf("ArtistNames() = %v", names)
	}

	if names := (Track{}).ArtistNames(); len(names) != 0 {
		t.Errorf("empty track ArtistNames() = %v", names)
	}
}

func TestSourceTrackAccessors(t *testing.T) {
	var track SourceTrack = SpotifyTrack{
		ID:       "t1",
		Title:    "Bohemian Rhapsody",
		Artists:  []string{"Queen"},
		Album:    "A Night at the Opera",
		Duration: 354,
	}

	if track.TrackID() != "t1" || track.Name() != "Bohemian Rhapsody" {
		t.Errorf("accessors = %s/%s", track.TrackID(), track.Name())
	}
	if track.AlbumName() != "A Night at the Opera" || track.DurationSeconds() != 354 {
		t.Errorf("accessors = %s/%d", track.AlbumName(), track.DurationSeconds())
	}
}
