package native

import (
	"context"
	"net/url"

	"SoundX/model"
)

type playlistAPI struct {
	client *Client
}

func (p *playlistAPI) CreatePlaylist(ctx context.Context, name, kind string) (model.SuccessResponse[model.Playlist], error) {
	return post[model.Playlist](ctx, p.client, "/playlist", map[string]string{"name": name, "type": kind})
}

func (p *playlistAPI) GetPlaylists(ctx context.Context, kind string) (model.SuccessResponse[[]model.Playlist], error) {
	params := url.Values{}
	if kind != "" {
		params.Set("type", kind)
	}
	return get[[]model.Playlist](ctx, p.client, "/playlist/list", params)
}

func (p *playlistAPI) GetPlaylistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Playlist], error) {
	return get[model.Playlist](ctx, p.client, "/playlist/"+url.PathEscape(id.String()), nil)
}

func (p *playlistAPI) UpdatePlaylist(ctx context.Context, id model.ID, name string) (model.SuccessResponse[model.Playlist], error) {
	return put[model.Playlist](ctx, p.client, "/playlist/"+url.PathEscape(id.String()), map[string]string{"name": name})
}

func (p *playlistAPI) DeletePlaylist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	return del[bool](ctx, p.client, "/playlist/"+url.PathEscape(id.String()), nil, nil)
}

func (p *playlistAPI) AddTrackToPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	body := map[string]model.ID{"trackId": trackID}
	return post[bool](ctx, p.client, "/playlist/"+url.PathEscape(playlistID.String())+"/tracks", body)
}

func (p *playlistAPI) AddTracksToPlaylist(ctx context.Context, playlistID model.ID, trackIDs []model.ID) (model.SuccessResponse[bool], error) {
	body := map[string][]model.ID{"trackIds": trackIDs}
	return post[bool](ctx, p.client, "/playlist/"+url.PathEscape(playlistID.String())+"/tracks/batch", body)
}

func (p *playlistAPI) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	params := url.Values{}
	params.Set("trackId", trackID.String())
	return del[bool](ctx, p.client, "/playlist/"+url.PathEscape(playlistID.String())+"/tracks", params, nil)
}
