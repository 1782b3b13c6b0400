package services

import (
	"context"

	"SoundX/model"
)

func CreatePlaylist(ctx context.Context, name, kind string) (model.SuccessResponse[model.Playlist], error) {
	return Current().Playlist().CreatePlaylist(ctx, name, kind)
}

func GetPlaylists(ctx context.Context, kind string) (model.SuccessResponse[[]model.Playlist], error) {
	return Current().Playlist().GetPlaylists(ctx, kind)
}

func GetPlaylistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Playlist], error) {
	return Current().Playlist().GetPlaylistByID(ctx, id)
}

func UpdatePlaylist(ctx context.Context, id model.ID, name string) (model.SuccessResponse[model.Playlist], error) {
	return Current().Playlist().UpdatePlaylist(ctx, id, name)
}

func DeletePlaylist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return Current().Playlist().DeletePlaylist(ctx, id)
}

func AddTrackToPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	return Current().Playlist().AddTrackToPlaylist(ctx, playlistID, trackID)
}

func AddTracksToPlaylist(ctx context.Context, playlistID model.ID, trackIDs []model.ID) (model.SuccessResponse[bool], error) {
	return Current().Playlist().AddTracksToPlaylist(ctx, playlistID, trackIDs)
}

func RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	return Current().Playlist().RemoveTrackFromPlaylist(ctx, playlistID, trackID)
}
