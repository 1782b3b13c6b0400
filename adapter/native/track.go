package native

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"SoundX/adapter"
	"SoundX/model"
)

type trackAPI struct {
	client *Client
}

func (t *trackAPI) GetTrackList(ctx context.Context) (model.SuccessResponse[[]model.Track], error) {
	return get[[]model.Track](ctx, t.client, "/track/list", nil)
}

func (t *trackAPI) GetTrackTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Track]], error) {
	return get[model.TableData[model.Track]](ctx, t.client, "/table-list", pageParams(q))
}

func (t *trackAPI) LoadMoreTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return get[model.LoadMoreData[model.Track]](ctx, t.client, "/load-more", loadMoreParams(q))
}

func (t *trackAPI) CreateTrack(ctx context.Context, track model.Track) (model.SuccessResponse[model.Track], error) {
	return post[model.Track](ctx, t.client, "/track", track)
}

func (t *trackAPI) UpdateTrack(ctx context.Context, id model.ID, track model.Track) (model.SuccessResponse[model.Track], error) {
	return put[model.Track](ctx, t.client, "/track/"+url.PathEscape(id.String()), track)
}

func (t *trackAPI) DeleteTrack(ctx context.Context, id model.ID, deleteAlbum bool) (model.SuccessResponse[bool], error) {
	params := url.Values{}
	params.Set("deleteAlbum", strconv.FormatBool(deleteAlbum))
	return del[bool](ctx, t.client, "/track/"+url.PathEscape(id.String()), params, nil)
}

func (t *trackAPI) GetDeletionImpact(ctx context.Context, id model.ID) (model.SuccessResponse[model.DeletionImpact], error) {
	return get[model.DeletionImpact](ctx, t.client, fmt.Sprintf("/track/%s/deletion-impact", url.PathEscape(id.String())), nil)
}

func (t *trackAPI) BatchCreateTracks(ctx context.Context, tracks []model.Track) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, t.client, "/track/batch-create", tracks)
}

func (t *trackAPI) BatchDeleteTracks(ctx context.Context, ids []model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, t.client, "/track/batch-delete", nil, ids)
}

func (t *trackAPI) GetLatestTracks(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Track], error) {
	return get[[]model.Track](ctx, t.client, "/track/latest", latestParams(q))
}

func (t *trackAPI) GetTracksByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Track], error) {
	params := url.Values{}
	params.Set("artist", artist)
	return get[[]model.Track](ctx, t.client, "/track/artist", params)
}

func pageParams(q adapter.PageQuery) url.Values {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("current", strconv.Itoa(q.Current))
	return params
}

func loadMoreParams(q adapter.LoadMoreQuery) url.Values {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("loadCount", strconv.Itoa(q.LoadCount))
	if q.Kind != "" {
		params.Set("type", q.Kind)
	}
	return params
}

func latestParams(q adapter.LatestQuery) url.Values {
	params := url.Values{}
	if q.Kind != "" {
		params.Set("type", q.Kind)
	}
	params.Set("random", strconv.FormatBool(q.Random))
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return params
}
