package subsonic

import "encoding/json"

// Wire shapes for the subset of the protocol this adapter consumes. Field
// sets are intentionally partial; unknown fields are ignored on decode.

// child is a song entry as returned inside albums, playlists, search results
// and the starred list.
type child struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Album    string `json:"album"`
	Artist   string `json:"artist"`
	AlbumID  string `json:"albumId"`
	ArtistID string `json:"artistId"`
	CoverArt string `json:"coverArt"`
	Duration int    `json:"duration"`
	Track    int    `json:"track"`
	Path     string `json:"path"`
	Suffix   string `json:"suffix"`
	Starred  string `json:"starred"`
}

type albumEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Artist    string  `json:"artist"`
	ArtistID  string  `json:"artistId"`
	CoverArt  string  `json:"coverArt"`
	SongCount int     `json:"songCount"`
	Created   string  `json:"created"`
	Starred   string  `json:"starred"`
	Song      []child `json:"song"`
}

type artistEntry struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	CoverArt   string       `json:"coverArt"`
	AlbumCount int          `json:"albumCount"`
	Album      []albumEntry `json:"album"`
}

type albumListResponse struct {
	AlbumList2 *struct {
		Album []albumEntry `json:"album"`
	} `json:"albumList2"`
	// Pre-ID3 servers answer under albumList.
	AlbumList *struct {
		Album []albumEntry `json:"album"`
	} `json:"albumList"`
}

func (r *albumListResponse) albums() []albumEntry {
	if r.AlbumList2 != nil {
		return r.AlbumList2.Album
	}
	if r.AlbumList != nil {
		return r.AlbumList.Album
	}
	return nil
}

type albumResponse struct {
	Album albumEntry `json:"album"`
}

type artistsResponse struct {
	Artists struct {
		Index []struct {
			Name   string        `json:"name"`
			Artist []artistEntry `json:"artist"`
		} `json:"index"`
	} `json:"artists"`
}

type artistResponse struct {
	Artist artistEntry `json:"artist"`
}

type searchResponse struct {
	SearchResult3 struct {
		Artist []artistEntry `json:"artist"`
		Album  []albumEntry  `json:"album"`
		Song   []child       `json:"song"`
	} `json:"searchResult3"`
}

type randomSongsResponse struct {
	RandomSongs struct {
		Song []child `json:"song"`
	} `json:"randomSongs"`
}

type starredResponse struct {
	Starred struct {
		Song  []child      `json:"song"`
		Album []albumEntry `json:"album"`
	} `json:"starred"`
}

type playlistEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SongCount int     `json:"songCount"`
	Entry     []child `json:"entry"`
}

type playlistResponse struct {
	Playlist playlistEntry `json:"playlist"`
}

type playlistsResponse struct {
	Playlists struct {
		Playlist []playlistEntry `json:"playlist"`
	} `json:"playlists"`
}

type usersResponse struct {
	Users struct {
		User []userEntry `json:"user"`
	} `json:"users"`
}

type userResponse struct {
	User userEntry `json:"user"`
}

type userEntry struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	AdminRole bool   `json:"adminRole"`
}

type pingResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// legacyLyrics tolerates both the object form {"value": "..."} and a bare
// string, which older servers emit.
type legacyLyrics struct {
	Value string
}

func (l *legacyLyrics) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		l.Value = s
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	l.Value = obj.Value
	return nil
}

type lyricLine struct {
	Start int64  `json:"start"`
	Value string `json:"value"`
}

type lyricsResponse struct {
	LyricsList *struct {
		StructuredLyrics []struct {
			Lang   string      `json:"lang"`
			Synced bool        `json:"synced"`
			Line   []lyricLine `json:"line"`
		} `json:"structuredLyrics"`
	} `json:"lyricsList"`
	Lyrics *legacyLyrics `json:"lyrics"`
}
