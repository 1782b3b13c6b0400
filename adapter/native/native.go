package native

import "SoundX/adapter"

// Adapter is the native-backend implementation: every contract method is one
// REST call, parameters forwarded as query string or body.
type Adapter struct {
	client   *Client
	track    *trackAPI
	album    *albumAPI
	artist   *artistAPI
	playlist *playlistAPI
	user     *userAPI
	auth     *authAPI
}

// New creates an adapter against the given backend. token may be empty before
// login.
func New(baseURL, token string) *Adapter {
	c := NewClient(baseURL, token)
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
func (a *Adapter) Source() string                { return "native" }

// BaseURL exposes the bound backend address for resolver use.
func (a *Adapter) BaseURL() string { return a.client.baseURL }

// Token exposes the bearer token so the cache layer can authenticate
// downloads of backend-relative stream paths.
func (a *Adapter) Token() string { return a.client.token }
