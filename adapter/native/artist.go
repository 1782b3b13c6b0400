package native

import (
	"context"
	"net/url"

	"SoundX/adapter"
	"SoundX/model"
)

type artistAPI struct {
	client *Client
}

func (a *artistAPI) GetArtistList(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	return get[model.LoadMoreData[model.Artist]](ctx, a.client, "/artist/list", loadMoreParams(q))
}

func (a *artistAPI) GetArtistTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Artist]], error) {
	return get[model.TableData[model.Artist]](ctx, a.client, "/artist/table-list", pageParams(q))
}

func (a *artistAPI) LoadMoreArtists(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	return get[model.LoadMoreData[model.Artist]](ctx, a.client, "/artist/load-more", loadMoreParams(q))
}

func (a *artistAPI) CreateArtist(ctx context.Context, artist model.Artist) (model.SuccessResponse[model.Artist], error) {
	return post[model.Artist](ctx, a.client, "/artist", artist)
}

func (a *artistAPI) UpdateArtist(ctx context.Context, id model.ID, artist model.Artist) (model.SuccessResponse[model.Artist], error) {
	return put[model.Artist](ctx, a.client, "/artist/"+url.PathEscape(id.String()), artist)
}

func (a *artistAPI) DeleteArtist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, a.client, "/artist/"+url.PathEscape(id.String()), nil, nil)
}

func (a *artistAPI) BatchCreateArtists(ctx context.Context, artists []model.Artist) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, a.client, "/artist/batch-create", artists)
}

func (a *artistAPI) BatchDeleteArtists(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, a.client, "/artist/batch-delete", nil, ids)
}

func (a *artistAPI) GetArtistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Artist], error) {
	return get[model.Artist](ctx, a.client, "/artist/"+url.PathEscape(id.String()), nil)
}

func (a *artistAPI) GetLatestArtists(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Artist], error) {
	return get[[]model.Artist](ctx, a.client, "/artist/latest", latestParams(q))
}
