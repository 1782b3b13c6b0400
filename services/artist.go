package services

import (
	"context"

	"SoundX/adapter"
	"SoundX/model"
)

func GetArtistList(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	return Current().Artist().GetArtistList(ctx, q)
}

func GetArtistTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Artist]], error) {
	return Current().Artist().GetArtistTableList(ctx, q)
}

func LoadMoreArtists(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	return Current().Artist().LoadMoreArtists(ctx, q)
}

func CreateArtist(ctx context.Context, a model.Artist) (model.SuccessResponse[model.Artist], error) {
	return Current().Artist().CreateArtist(ctx, a)
}

func UpdateArtist(ctx context.Context, id model.ID, a model.Artist) (model.SuccessResponse[model.Artist], error) {
	return Current().Artist().UpdateArtist(ctx, id, a)
}

func DeleteArtist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return Current().Artist().DeleteArtist(ctx, id)
}

func BatchCreateArtists(ctx context.Context, artists []model.Artist) (model.SuccessResponse[bool], error) {
	return Current().Artist().BatchCreateArtists(ctx, artists)
}

func BatchDeleteArtists(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return Current().Artist().BatchDeleteArtists(ctx, ids)
}

func GetArtistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Artist], error) {
	return Current().Artist().GetArtistByID(ctx, id)
}

func GetLatestArtists(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Artist], error) {
	return Current().Artist().GetLatestArtists(ctx, q)
}
