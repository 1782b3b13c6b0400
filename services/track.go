package services

import (
	"context"

	"SoundX/adapter"
	"SoundX/model"
)

func GetTrackList(ctx context.Context) (model.SuccessResponse[[]model.Track], error) {
	return Current().Track().GetTrackList(ctx)
}

func GetTrackTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Track]], error) {
	return Current().Track().GetTrackTableList(ctx, q)
}

func LoadMoreTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return Current().Track().LoadMoreTracks(ctx, q)
}

func CreateTrack(ctx context.Context, t model.Track) (model.SuccessResponse[model.Track], error) {
	return Current().Track().CreateTrack(ctx, t)
}

func UpdateTrack(ctx context.Context, id model.ID, t model.Track) (model.SuccessResponse[model.Track], error) {
	return Current().Track().UpdateTrack(ctx, id, t)
}

func DeleteTrack(ctx context.Context, id model.ID, deleteAlbum bool) (model.SuccessResponse[bool], error) {
	return Current().Track().DeleteTrack(ctx, id, deleteAlbum)
}

func GetDeletionImpact(ctx context.Context, id model.ID) (model.SuccessResponse[model.DeletionImpact], error) {
	return Current().Track().GetDeletionImpact(ctx, id)
}

func BatchCreateTracks(ctx context.Context, tracks []model.Track) (model.SuccessResponse[bool], error) {
	return Current().Track().BatchCreateTracks(ctx, tracks)
}

func BatchDeleteTracks(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return Current().Track().BatchDeleteTracks(ctx, ids)
}

func GetLatestTracks(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Track], error) {
	return Current().Track().GetLatestTracks(ctx, q)
}

func GetTracksByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Track], error) {
	return Current().Track().GetTracksByArtist(ctx, artist)
}
