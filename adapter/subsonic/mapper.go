package subsonic

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"SoundX/model"
)

func mapSong(s child, c *Client, lyrics *string) model.Track {
	return model.Track{
		ID:       model.ID(s.ID),
		Title:    s.Title,
		Artist:   s.Artist,
		Album:    s.Album,
		Path:     c.StreamURL(s.ID),
		Cover:    c.CoverURL(s.CoverArt),
		Duration: float64(s.Duration),
		Lyrics:   lyrics,
		Liked:    s.Starred != "",
	}
}

func mapAlbum(a albumEntry, c *Client) model.Album {
	return model.Album{
		ID:        model.ID(a.ID),
		Name:      a.Name,
		Artist:    a.Artist,
		Cover:     c.CoverURL(a.CoverArt),
		CreatedAt: a.Created,
	}
}

func mapArtist(a artistEntry, c *Client) model.Artist {
	return model.Artist{
		ID:    model.ID(a.ID),
		Name:  a.Name,
		Cover: c.CoverURL(a.CoverArt),
	}
}

// formatLyrics translates a lyrics response into the canonical single-string
// form: one line per lyric, each prefixed with an [mm:ss.mmm] tag. Structured
// (OpenSubsonic) lyrics win over the legacy plain blob. Returns nil when the
// track has no lyrics at all, never an empty string.
func formatLyrics(res *lyricsResponse) *string {
	if res == nil {
		return nil
	}

	if res.LyricsList != nil && len(res.LyricsList.StructuredLyrics) > 0 {
		lines := res.LyricsList.StructuredLyrics[0].Line
		if len(lines) > 0 {
			var b strings.Builder
			for i, l := range lines {
				if i > 0 {
					b.WriteByte('\n')
				}
				minutes := l.Start / 60000
				seconds := (l.Start % 60000) / 1000
				millis := l.Start % 1000
				fmt.Fprintf(&b, "[%02d:%02d.%03d]%s", minutes, seconds, millis, l.Value)
			}
			out := b.String()
			return &out
		}
	}

	if res.Lyrics != nil && res.Lyrics.Value != "" {
		out := res.Lyrics.Value
		return &out
	}
	return nil
}

// fetchLyrics is best-effort: any failure yields nil lyrics for that track
// and is never surfaced to the caller.
func (c *Client) fetchLyrics(ctx context.Context, songID string) *string {
	var res lyricsResponse
	if err := c.Get(ctx, "getLyricsBySongId", map[string]string{"id": songID}, &res); err != nil {
		return nil
	}
	return formatLyrics(&res)
}

// mapSongsWithLyrics maps a batch of songs, fetching lyrics one request per
// track, concurrently. A lyrics failure for one track must not fail the
// batch; that track simply gets nil lyrics.
func mapSongsWithLyrics(ctx context.Context, c *Client, songs []child) []model.Track {
	tracks := make([]model.Track, len(songs))
	var wg sync.WaitGroup
	for i, s := range songs {
		wg.Add(1)
		go func(i int, s child) {
			defer wg.Done()
			var lyrics *string
			if s.Artist != "" && s.Title != "" {
				lyrics = c.fetchLyrics(ctx, s.ID)
			}
			tracks[i] = mapSong(s, c, lyrics)
		}(i, s)
	}
	wg.Wait()
	return tracks
}
