package subsonic

import "SoundX/adapter"

// Adapter implements the source adapter contract on top of the protocol
// client. Subsonic is read-only for library entities: every create, update,
// delete or batch operation on tracks, albums and artists rejects with
// adapter.ErrUnsupported before any network request.
type Adapter struct {
	client   *Client
	track    *trackAPI
	album    *albumAPI
	artist   *artistAPI
	playlist *playlistAPI
	user     *userAPI
	auth     *authAPI
}

// New creates an adapter bound to one server configuration. The configuration
// is captured at construction; rebinding means building a new adapter.
func New(cfg Config) *Adapter {
	c := NewClient(cfg)
	return &Adapter{
		client:   c,
		track:    &trackAPI{client: c},
		album:    &albumAPI{client: c},
		artist:   &artistAPI{client: c},
		playlist: &playlistAPI{client: c},
		user:     &userAPI{client: c},
		auth:     &authAPI{client: c},
	}
}

func (a *Adapter) Track() adapter.TrackAPI       { return a.track }
func (a *Adapter) Album() adapter.AlbumAPI       { return a.album }
func (a *Adapter) Artist() adapter.ArtistAPI     { return a.artist }
func (a *Adapter) Playlist() adapter.PlaylistAPI { return a.playlist }
func (a *Adapter) User() adapter.UserAPI         { return a.user }
func (a *Adapter) Auth() adapter.AuthAPI         { return a.auth }
func (a *Adapter) Source() string                { return "subsonic" }

// BaseURL exposes the bound server address for resolver use.
func (a *Adapter) BaseURL() string { return a.client.cfg.BaseURL }
