package model

import (
	"encoding/json"
	"fmt"
)

// ID is a backend-scoped entity identifier. The native backend issues numeric
// ids while Subsonic servers issue opaque strings, so the wire decoder accepts
// both and normalizes to a string.
type ID string

// UnmarshalJSON accepts both `"42"` and `42`.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Track is the canonical, backend-agnostic track shape.
type Track struct {
	ID       ID      `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Path     string  `json:"path"`  // playable path, backend-relative or absolute
	Cover    string  `json:"cover"` // cover art reference
	Duration float64 `json:"duration"`
	Lyrics   *string `json:"lyrics"` // nil when no lyrics exist, never ""
	Liked    bool    `json:"liked"`
}

// Album is the canonical album shape. Artist is denormalized.
type Album struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Cover     string `json:"cover"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Artist struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Cover string `json:"cover,omitempty"`
}

// Playlist tracks are ordered; a track may legally appear more than once, so
// reorder/remove operate by position rather than track id.
type Playlist struct {
	ID     ID      `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Tracks []Track `json:"tracks"`
}

type Device struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token,omitempty"`
	Device   Device `json:"device,omitempty"`
}

// FavoriteAlbum pairs an album with the time it entered the list.
type FavoriteAlbum struct {
	Album     Album  `json:"album"`
	CreatedAt string `json:"createdAt"`
}

// DeletionImpact describes what removing a track would take with it.
type DeletionImpact struct {
	IsLastTrackInAlbum bool    `json:"isLastTrackInAlbum"`
	AlbumName          *string `json:"albumName"`
}
