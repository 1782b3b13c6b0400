package subsonic

import (
	"context"
	"time"

	"SoundX/adapter"
	"SoundX/model"
)

type userAPI struct {
	client *Client
}

// AddToHistory maps onto scrobble submission; the server keeps its own play
// counts, progress is not representable.
func (u *userAPI) AddToHistory(ctx context.Context, trackID model.ID, _ float64) (model.SuccessResponse[bool], error) {
	params := map[string]string{"id": trackID.String(), "submission": "true"}
	if err := u.client.Get(ctx, "scrobble", params, nil); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}

// GetLatestHistory has no protocol equivalent; the answer is "nothing".
func (u *userAPI) GetLatestHistory(ctx context.Context) (model.SuccessResponse[*model.Track], error) {
	return model.OK[*model.Track](nil), nil
}

func (u *userAPI) AddAlbumToHistory(ctx context.Context, _ model.ID) (model.SuccessResponse[bool], error) {
	return model.OK(true), nil
}

// GetAlbumHistory has no protocol equivalent; an empty terminal page is the
// correct representation, not an error.
func (u *userAPI) GetAlbumHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	return model.OK(emptyPage[model.FavoriteAlbum](q)), nil
}

func (u *userAPI) LikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	return u.star(ctx, "star", map[string]string{"id": trackID.String()})
}

func (u *userAPI) UnlikeTrack(ctx context.Context, trackID model.ID) (model.SuccessResponse[bool], error) {
	return u.star(ctx, "unstar", map[string]string{"id": trackID.String()})
}

func (u *userAPI) LikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return u.star(ctx, "star", map[string]string{"albumId": albumID.String()})
}

func (u *userAPI) UnlikeAlbum(ctx context.Context, albumID model.ID) (model.SuccessResponse[bool], error) {
	return u.star(ctx, "unstar", map[string]string{"albumId": albumID.String()})
}

func (u *userAPI) star(ctx context.Context, endpoint string, params map[string]string) (model.SuccessResponse[bool], error) {
	if err := u.client.Get(ctx, endpoint, params, nil); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}

// GetFavoriteAlbums reuses the generic starred query. The full list comes
// back at once, so the page is terminal with an exact total.
func (u *userAPI) GetFavoriteAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]], error) {
	var res starredResponse
	if err := u.client.Get(ctx, "getStarred", nil, &res); err != nil {
		return model.SuccessResponse[model.LoadMoreData[model.FavoriteAlbum]]{}, err
	}
	list := make([]model.FavoriteAlbum, 0, len(res.Starred.Album))
	for _, a := range res.Starred.Album {
		createdAt := a.Starred
		if createdAt == "" {
			createdAt = a.Created
		}
		if createdAt == "" {
			createdAt = time.Now().UTC().Format(time.RFC3339)
		}
		list = append(list, model.FavoriteAlbum{Album: mapAlbum(a, u.client), CreatedAt: createdAt})
	}
	return model.OK(model.LoadMoreData[model.FavoriteAlbum]{
		PageSize:  q.PageSize,
		LoadCount: q.LoadCount + len(list),
		List:      list,
		Total:     len(list),
		HasMore:   false,
	}), nil
}

func (u *userAPI) GetFavoriteTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	var res starredResponse
	if err := u.client.Get(ctx, "getStarred", nil, &res); err != nil {
		return model.SuccessResponse[model.LoadMoreData[model.Track]]{}, err
	}
	list := make([]model.Track, 0, len(res.Starred.Song))
	for _, s := range res.Starred.Song {
		list = append(list, mapSong(s, u.client, nil))
	}
	return model.OK(model.LoadMoreData[model.Track]{
		PageSize:  q.PageSize,
		LoadCount: q.LoadCount + len(list),
		List:      list,
		Total:     len(list),
		HasMore:   false,
	}), nil
}

// GetTrackHistory has no protocol equivalent; an empty terminal page.
func (u *userAPI) GetTrackHistory(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	return model.OK(emptyPage[model.Track](q)), nil
}

func (u *userAPI) GetUserList(ctx context.Context) (model.SuccessResponse[[]model.User], error) {
	var res usersResponse
	if err := u.client.Get(ctx, "getUsers", nil, &res); err != nil {
		return model.SuccessResponse[[]model.User]{}, err
	}
	list := make([]model.User, 0, len(res.Users.User))
	for _, usr := range res.Users.User {
		list = append(list, model.User{
			ID:       model.ID(usr.Username),
			Username: usr.Username,
			Email:    usr.Email,
			IsAdmin:  usr.AdminRole,
		})
	}
	return model.OK(list), nil
}

func emptyPage[T any](q adapter.LoadMoreQuery) model.LoadMoreData[T] {
	return model.LoadMoreData[T]{
		PageSize:  q.PageSize,
		LoadCount: q.LoadCount,
		List:      []T{},
		Total:     0,
		HasMore:   false,
	}
}
