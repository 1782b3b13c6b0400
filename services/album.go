package services

import (
	"context"

	"SoundX/adapter"
	"SoundX/model"
)

func GetAlbumList(ctx context.Context) (model.SuccessResponse[[]model.Album], error) {
	return Current().Album().GetAlbumList(ctx)
}

func GetAlbumTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Album]], error) {
	return Current().Album().GetAlbumTableList(ctx, q)
}

func LoadMoreAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Album]], error) {
	return Current().Album().LoadMoreAlbums(ctx, q)
}

func CreateAlbum(ctx context.Context, a model.Album) (model.SuccessResponse[model.Album], error) {
	return Current().Album().CreateAlbum(ctx, a)
}

func UpdateAlbum(ctx context.Context, id model.ID, a model.Album) (model.SuccessResponse[model.Album], error) {
	return Current().Album().UpdateAlbum(ctx, id, a)
}

func DeleteAlbum(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return Current().Album().DeleteAlbum(ctx, id)
}

func BatchCreateAlbums(ctx context.Context, albums []model.Album) (model.SuccessResponse[bool], error) {
	return Current().Album().BatchCreateAlbums(ctx, albums)
}

func BatchDeleteAlbums(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return Current().Album().BatchDeleteAlbums(ctx, ids)
}

func GetRecommendedAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return Current().Album().GetRecommendedAlbums(ctx, q)
}

func GetRecentAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return Current().Album().GetRecentAlbums(ctx, q)
}

func GetAlbumByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Album], error) {
	return Current().Album().GetAlbumByID(ctx, id)
}

func GetAlbumTracks(ctx context.Context, id model.ID, q adapter.AlbumTracksQuery) (model.SuccessResponse[model.AlbumTracksPage], error) {
	return Current().Album().GetAlbumTracks(ctx, id, q)
}

func GetAlbumsByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Album], error) {
	return Current().Album().GetAlbumsByArtist(ctx, artist)
}
