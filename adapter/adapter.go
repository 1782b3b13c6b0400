// Package adapter defines the stable operation set every music backend
// implements, grouped by capability. The rest of the application talks to
// whichever implementation is currently bound (see Manager) and never
// branches on backend type.
package adapter

import (
	"context"

	"SoundX/model"
)

// PageQuery addresses table views by page number.
type PageQuery struct {
	PageSize int
	Current  int
}

// LoadMoreQuery addresses cumulative "load more" lists. LoadCount is the
// number of items already delivered to the caller.
type LoadMoreQuery struct {
	PageSize  int
	LoadCount int
	Kind      string // optional content kind filter, e.g. "MUSIC" or "AUDIOBOOK"
}

// LatestQuery tunes the "latest"/"recommended" shelf endpoints.
type LatestQuery struct {
	Kind     string
	Random   bool
	PageSize int
}

// AlbumTracksQuery selects a slice of one album's song list.
type AlbumTracksQuery struct {
	PageSize int
	Skip     int
	Sort     string // "asc" (default) or "desc"
	Keyword  string // optional title filter
}

// Credentials carries everything a backend login may need.
type Credentials struct {
	Username   string
	Password   string
	Email      string
	DeviceName string
	DeviceID   string // stable per-install identifier
}

// TrackAPI is the track capability set.
type TrackAPI interface {
	GetTrackList(ctx context.Context) (model.SuccessResponse[[]model.Track], error)
	GetTrackTableList(ctx context.Context, q PageQuery) (model.SuccessResponse[model.TableData[model.Track]], error)
	LoadMoreTracks(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error)
	CreateTrack(ctx context.Context, t model.Track) (model.SuccessResponse[model.Track], error)
	UpdateTrack(ctx context.Context, id model.ID, t model.Track) (model.SuccessResponse[model.Track], error)
	DeleteTrack(ctx context.Context, id model.ID, deleteAlbum bool) (model.SuccessResponse[bool], error)
	GetDeletionImpact(ctx context.Context, id model.ID) (model.SuccessResponse[model.DeletionImpact], error)
	BatchCreateTracks(ctx context.Context, tracks []model.Track) (model.SuccessResponse[bool], error)
	BatchDeleteTracks(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error)
	GetLatestTracks(ctx context.Context, q LatestQuery) (model.SuccessResponse[[]model.Track], error)
	GetTracksByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Track], error)
}

// AlbumAPI is the album capability set.
type AlbumAPI interface {
	GetAlbumList(ctx context.Context) (model.SuccessResponse[[]model.Album], error)
	GetAlbumTableList(ctx context.Context, q PageQuery) (model.SuccessResponse[model.TableData[model.Album]], error)
	LoadMoreAlbums(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Album]], error)
	CreateAlbum(ctx context.Context, a model.Album) (model.SuccessResponse[model.Album], error)
	UpdateAlbum(ctx context.Context, id model.ID, a model.Album) (model.SuccessResponse[model.Album], error)
	DeleteAlbum(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error)
	BatchCreateAlbums(ctx context.Context, albums []model.Album) (model.SuccessResponse[bool], error)
	BatchDeleteAlbums(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error)
	GetRecommendedAlbums(ctx context.Context, q LatestQuery) (model.SuccessResponse[[]model.Album], error)
	GetRecentAlbums(ctx context.Context, q LatestQuery) (model.SuccessResponse[[]model.Album], error)
	GetAlbumByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Album], error)
	GetAlbumTracks(ctx context.Context, id model.ID, q AlbumTracksQuery) (model.SuccessResponse[model.AlbumTracksPage], error)
	GetAlbumsByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Album], error)
}

// ArtistAPI is the artist capability set.
type ArtistAPI interface {
	GetArtistList(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error)
	GetArtistTableList(ctx context.Context, q PageQuery) (model.SuccessResponse[model.TableData[model.Artist]], error)
	LoadMoreArtists(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error)
	CreateArtist(ctx context.Context, a model.Artist) (model.SuccessResponse[model.Artist], error)
	UpdateArtist(ctx context.Context, id model.ID, a model.Artist) (model.SuccessResponse[model.Artist], error)
	DeleteArtist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error)
	BatchCreateArtists(ctx context.Context, artists []model.Artist) (model.SuccessResponse[bool], error)
	BatchDeleteArtists(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error)
	GetArtistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Artist], error)
	GetLatestArtists(ctx context.Context, q LatestQuery) (model.SuccessResponse[[]model.Artist], error)
}

// PlaylistAPI is the playlist capability set. Playlists are mutable on both
// backends; removal is positional because a track may appear twice.
type PlaylistAPI interface {
	CreatePlaylist(ctx context.Context, name, kind string) (model.SuccessResponse[model.Playlist], error)
	GetPlaylists(ctx context.Context, kind string) (model.SuccessResponse[[]model.Playlist], error)
	GetPlaylistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Playlist], error)
	UpdatePlaylist(ctx context.Context, id model.ID, name string) (model.SuccessResponse[model.Playlist], error)
	DeletePlaylist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error)
	AddTrackToPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error)
	AddTracksToPlaylist(ctx context.Context, playlistID model.ID, trackIDs []model.ID) (model.SuccessResponse[bool], error)
	RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error)
}

// UserAPI covers history, likes and favorites.
type UserAPI interface {
	AddToHistory(ctx context.Context, trackID model.ID, progress float64) (model.SuccessResponse[bool], error)
	GetLatestHistory(ctx context.Context) (model.SuccessResponse[*model.Track], error)
	AddAlbumToHistory(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error)
	GetAlbumHistory(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error)
	LikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error)
	UnlikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error)
	LikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error)
	UnlikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error)
	GetFavoriteAlbums(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error)
	GetFavoriteTracks(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error)
	GetTrackHistory(ctx context.Context, q LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error)
	GetUserList(ctx context.Context) (model.SuccessResponse[[]model.User], error)
}

// AuthAPI covers login, registration and connectivity probes.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (model.SuccessResponse[model.User], error)
	Register(ctx context.Context, creds Credentials) (model.SuccessResponse[model.User], error)
	// Check is a connectivity probe; callers bound the wait with ctx.
	Check(ctx context.Context) (model.SuccessResponse[bool], error)
	Hello(ctx context.Context) (model.SuccessResponse[string], error)
}

// MusicAdapter aggregates the capability sets of one backend.
type MusicAdapter interface {
	Track() TrackAPI
	Album() AlbumAPI
	Artist() ArtistAPI
	Playlist() PlaylistAPI
	User() UserAPI
	Auth() AuthAPI
	// Source identifies the backend kind ("native" or "subsonic"). The cache
	// layer namespaces keys with it so ids from different backends cannot
	// collide on disk.
	Source() string
}
