package subsonic

import (
	"encoding/json"
	"testing"
)

func decodeLyrics(t *testing.T, raw string) *lyricsResponse {
	t.Helper()
	var res lyricsResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("decode lyrics response: %v", err)
	}
	return &res
}

func TestFormatLyricsStructured(t *testing.T) {
	res := decodeLyrics(t, `{
		"lyricsList": {"structuredLyrics": [{"lang": "xxx", "synced": true, "line": [
			{"start": 61234, "value": "hello"},
			{"start": 62000, "value": "world"}
		]}]}
	}`)

	got := formatLyrics(res)
	if got == nil {
		t.Fatal("formatLyrics returned nil")
	}
	want := "[01:01.234]hello\n[01:02.000]world"
	if *got != want {
		t.Errorf("formatLyrics = %q, want %q", *got, want)
	}
}

func TestFormatLyricsStructuredWinsOverLegacy(t *testing.T) {
	res := decodeLyrics(t, `{
		"lyricsList": {"structuredLyrics": [{"line": [{"start": 0, "value": "synced"}]}]},
		"lyrics": {"value": "legacy blob"}
	}`)

	got := formatLyrics(res)
	if got == nil || *got != "[00:00.000]synced" {
		t.Errorf("formatLyrics = %v, want structured form", got)
	}
}

func TestFormatLyricsLegacyObject(t *testing.T) {
	res := decodeLyrics(t, `{"lyrics": {"value": "plain lyrics"}}`)
	got := formatLyrics(res)
	if got == nil || *got != "plain lyrics" {
		t.Errorf("formatLyrics = %v, want %q", got, "plain lyrics")
	}
}

func TestFormatLyricsLegacyBareString(t *testing.T) {
	res := decodeLyrics(t, `{"lyrics": "plain lyrics"}`)
	got := formatLyrics(res)
	if got == nil || *got != "plain lyrics" {
		t.Errorf("formatLyrics = %v, want %q", got, "plain lyrics")
	}
}

func TestFormatLyricsAbsent(t *testing.T) {
	cases := map[string]string{
		"empty response":   `{}`,
		"empty structured": `{"lyricsList": {"structuredLyrics": [{"line": []}]}}`,
		"empty legacy":     `{"lyrics": {"value": ""}}`,
	}
	for name, raw := range cases {
		if got := formatLyrics(decodeLyrics(t, raw)); got != nil {
			t.Errorf("%s: formatLyrics = %q, want nil", name, *got)
		}
	}
	if got := formatLyrics(nil); got != nil {
		t.Errorf("nil response: formatLyrics = %q, want nil", *got)
	}
}

func TestMapSong(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://srv"})
	track := mapSong(child{
		ID:       "s1",
		Title:    "Title",
		Artist:   "Artist",
		Album:    "Album",
		Duration: 184,
		Starred:  "2024-01-01T00:00:00Z",
	}, c, nil)

	if track.ID != "s1" || track.Title != "Title" {
		t.Errorf("unexpected track: %+v", track)
	}
	if track.Duration != 184 {
		t.Errorf("duration = %v, want 184", track.Duration)
	}
	if !track.Liked {
		t.Error("starred song must map to Liked")
	}
	if track.Lyrics != nil {
		t.Error("lyrics must stay nil when absent")
	}
	if track.Path == "" {
		t.Error("path must be the constructed stream URL")
	}
}
