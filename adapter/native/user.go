package native

import (
	"context"
	"net/url"

	"SoundX/adapter"
	"SoundX/model"
)

type userAPI struct {
	client *Client
}

func (u *userAPI) AddToHistory(ctx context.Context, trackID model.ID, progress float64) (model.SuccessResponse[bool], error) {
	body := map[string]any{"trackId": trackID, "progress": progress}
	return post[bool](ctx, u.client, "/user-track-histories", body)
}

func (u *userAPI) GetLatestHistory(ctx context.Context) (model.SuccessResponse[*model.Track], error) {
	return get[*model.Track](ctx, u.client, "/user-track-histories/latest", nil)
}

func (u *userAPI) AddAlbumToHistory(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, u.client, "/user-album-histories", map[string]model.ID{"albumId": albumID})
}

func (u *userAPI) GetAlbumHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	return get[model.LoadMoreData[model.FavoriteAlbum]](ctx, u.client, "/user-album-histories/load-more", loadMoreParams(q))
}

func (u *userAPI) LikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, u.client, "/user-track-likes/create", map[string]model.ID{"trackId": trackID})
}

func (u *userAPI) UnlikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	params := url.Values{}
	params.Set("trackId", trackID.String())
	return del[bool](ctx, u.client, "/user-track-likes/unlike", params, nil)
}

func (u *userAPI) LikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return post[bool](ctx, u.client, "/user-album-likes", map[string]model.ID{"albumId": albumID})
}

func (u *userAPI) UnlikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	params := url.Values{}
	params.Set("albumId", albumID.String())
	return del[bool](ctx, u.client, "/user-album-likes/unlike", params, nil)
}

func (u *userAPI) GetFavoriteAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	return get[model.LoadMoreData[model.FavoriteAlbum]](ctx, u.client, "/user-album-likes/load-more", loadMoreParams(q))
}

func (u *userAPI) GetFavoriteTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return get[model.LoadMoreData[model.Track]](ctx, u.client, "/user-track-likes/load-more", loadMoreParams(q))
}

func (u *userAPI) GetTrackHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return get[model.LoadMoreData[model.Track]](ctx, u.client, "/user-track-histories/load-more", loadMoreParams(q))
}

func (u *userAPI) GetUserList(ctx context.Context) (model.SuccessResponse[[]model.User], error) {
	return get[[]model.User](ctx, u.client, "/user/list", nil)
}
