// Package resolver decides where the player should read a track's audio
// from. Resolution is two-phase: a fast local check that never blocks the
// play action, then an optional background download whose result the shell
// can swap in mid-playback.
package resolver

import (
	"context"

	"SoundX/cache"
	"SoundX/logger"
	"SoundX/model"
)

// Binding reports the active backend the moment a track is resolved.
// The resolver captures its output once per Resolve call, so a backend
// switch mid-download does not mix sources.
type Binding func() (baseURL, source, token string)

// Resolver turns track metadata into playable URIs.
type Resolver struct {
	Cache   *cache.Manager
	Binding Binding
}

func New(c *cache.Manager, b Binding) *Resolver {
	return &Resolver{Cache: c, Binding: b}
}

// Resolution is the outcome of the fast phase. URI is immediately playable:
// a media:// URI on cache hit, the remote stream URL otherwise. Download is
// non-nil only when the track is not yet cached; running it fetches the
// bytes and returns the local URI, or "" when caching failed and the remote
// URL should stay in use.
type Resolution struct {
	URI      string
	Cached   bool
	Download func(ctx context.Context) string
}

// Check runs only the fast local phase: the media:// URI when the track is
// cached, "" otherwise.
func (r *Resolver) Check(track model.Track) string {
	_, source, _ := r.Binding()
	return r.Cache.Check(cache.Key(source, string(track.ID)), track.Path)
}

// Resolve performs the fast phase for a track against the given remote
// stream URL.
func (r *Resolver) Resolve(track model.Track, streamURL string) Resolution {
	_, source, token := r.Binding()
	key := cache.Key(source, string(track.ID))

	if uri := r.Cache.Check(key, track.Path); uri != "" {
		logger.Debug("cache hit", logger.String("key", key))
		return Resolution{URI: uri, Cached: true}
	}

	return Resolution{
		URI: streamURL,
		Download: func(ctx context.Context) string {
			return r.Cache.Download(ctx, key, streamURL, token)
		},
	}
}
