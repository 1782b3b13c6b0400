package native

import (
	"context"
	"net/url"
	"strconv"

	"SoundX/adapter"
	"SoundX/model"
)

type albumAPI struct {
	client *Client
}

func (a *albumAPI) GetAlbumList(ctx context.Context) (model.SuccessResponse[[]model.Album], error) {
	return get[[]model.Album](ctx, a.client, "/album/list", nil)
}

func (a *albumAPI) GetAlbumTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Album]], error) {
	return get[model.TableData[model.Album]](ctx, a.client, "/album/table-list", pageParams(q))
}

func (a *albumAPI) LoadMoreAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Album]], error) {
	return get[model.LoadMoreData[model.Album]](ctx, a.client, "/album/load-more", loadMoreParams(q))
}

func (a *albumAPI) CreateAlbum(ctx context.Context, album model.Album) (model.SuccessResponse[model.Album], error) {
	return post[model.Album](ctx, a.client, "/album", album)
}

func (a *albumAPI) UpdateAlbum(ctx context.Context, id model.ID, album model.Album) (model.SuccessResponse[model.Album], error) {
	return put[model.Album](ctx, a.client, "/album/"+url.PathEscape(id.String()), album)
}

func (a *albumAPI) DeleteAlbum(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, a.client, "/album/"+url.PathEscape(id.String()), nil, nil)
}

func (a *albumAPI) BatchCreateAlbums(ctx context.Context, albums []model.Album) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, a.client, "/album/batch-create", albums)
}

func (a *albumAPI) BatchDeleteAlbums(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, a.client, "/album/batch-delete", nil, ids)
}

func (a *albumAPI) GetRecommendedAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return get[[]model.Album](ctx, a.client, "/album/recommended", latestParams(q))
}

func (a *albumAPI) GetRecentAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return get[[]model.Album](ctx, a.client, "/album/recent", latestParams(q))
}

func (a *albumAPI) GetAlbumByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Album], error) {
	return get[model.Album](ctx, a.client, "/album/"+url.PathEscape(id.String()), nil)
}

func (a *albumAPI) GetAlbumTracks(ctx context.Context, id model.ID, q adapter.AlbumTracksQuery) (model.SuccessResponse[model.AlbumTracksPage], error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("skip", strconv.Itoa(q.Skip))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	return get[model.AlbumTracksPage](ctx, a.client, "/album/"+url.PathEscape(id.String())+"/tracks", params)
}

func (a *albumAPI) GetAlbumsByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Album], error) {
	params := url.Values{}
	params.Set("artist", artist)
	return get[[]model.Album](ctx, a.client, "/album/artist", params)
}
