package services

import (
	"context"

	"SoundX/adapter"
	"SoundX/model"
)

func AddToHistory(ctx context.Context, trackID model.ID, progress float64) (model.SuccessResponse[bool], error) {
	return Current().User().AddToHistory(ctx, trackID, progress)
}

func GetLatestHistory(ctx context.Context) (model.SuccessResponse[*model.Track], error) {
	return Current().User().GetLatestHistory(ctx)
}

func AddAlbumToHistory(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return Current().User().AddAlbumToHistory(ctx, albumID)
}

func GetAlbumHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	return Current().User().GetAlbumHistory(ctx, q)
}

func LikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	return Current().User().LikeTrack(ctx, trackID)
}

func UnlikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	return Current().User().UnlikeTrack(ctx, trackID)
}

func LikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return Current().User().LikeAlbum(ctx, albumID)
}

func UnlikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return Current().User().UnlikeAlbum(ctx, albumID)
}

func GetFavoriteAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	return Current().User().GetFavoriteAlbums(ctx, q)
}

func GetFavoriteTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return Current().User().GetFavoriteTracks(ctx, q)
}

func GetTrackHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return Current().User().GetTrackHistory(ctx, q)
}

func GetUserList(ctx context.Context) (model.SuccessResponse[[]model.User], error) {
	return Current().User().GetUserList(ctx)
}
