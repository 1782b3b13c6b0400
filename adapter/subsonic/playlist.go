package subsonic

import (
	"context"
	"strconv"

	"SoundX/model"
)

// Playlists are the one entity Subsonic lets clients mutate, so this
// capability forwards writes instead of rejecting them.
type playlistAPI struct {
	client *Client
}

func (p *playlistAPI) CreatePlaylist(ctx context.Context, name, _ string) (model.SuccessResponse[model.Playlist], error) {
	var res playlistResponse
	if err := p.client.Get(ctx, "createPlaylist", map[string]string{"name": name}, &res); err != nil {
		return model.SuccessResponse[model.Playlist]{}, err
	}
	return model.OK(p.mapPlaylist(ctx, res.Playlist)), nil
}

func (p *playlistAPI) GetPlaylists(ctx context.Context, _ string) (model.SuccessResponse[[]model.Playlist], error) {
	var res playlistsResponse
	if err := p.client.Get(ctx, "getPlaylists", nil, &res); err != nil {
		return model.SuccessResponse[[]model.Playlist]{}, err
	}
	list := make([]model.Playlist, 0, len(res.Playlists.Playlist))
	for _, pl := range res.Playlists.Playlist {
		list = append(list, p.mapPlaylist(ctx, pl))
	}
	return model.OK(list), nil
}

func (p *playlistAPI) GetPlaylistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Playlist], error) {
	var res playlistResponse
	if err := p.client.Get(ctx, "getPlaylist", map[string]string{"id": id.String()}, &res); err != nil {
		return model.SuccessResponse[model.Playlist]{}, err
	}
	return model.OK(p.mapPlaylist(ctx, res.Playlist)), nil
}

func (p *playlistAPI) UpdatePlaylist(ctx context.Context, id model.ID, name string) (model.SuccessResponse[model.Playlist], error) {
	if err := p.client.Get(ctx, "updatePlaylist", map[string]string{"playlistId": id.String(), "name": name}, nil); err != nil {
		return model.SuccessResponse[model.Playlist]{}, err
	}
	return p.GetPlaylistByID(ctx, id)
}

func (p *playlistAPI) DeletePlaylist(ctx context.Context, id model.ID) (model.SuccessResponse[bool], error) {
	if err := p.client.Get(ctx, "deletePlaylist", map[string]string{"id": id.String()}, nil); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}

func (p *playlistAPI) AddTrackToPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	params := map[string]string{"playlistId": playlistID.String(), "songIdToAdd": trackID.String()}
	if err := p.client.Get(ctx, "updatePlaylist", params, nil); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}

func (p *playlistAPI) AddTracksToPlaylist(ctx context.Context, playlistID model.ID, trackIDs []model.ID) (model.SuccessResponse[bool], error) {
	for _, id := range trackIDs {
		if _, err := p.AddTrackToPlaylist(ctx, playlistID, id); err != nil {
			return model.SuccessResponse[bool]{}, err
		}
	}
	return model.OK(true), nil
}

// RemoveTrackFromPlaylist removes by position: the playlist is fetched, the
// first entry matching the track id located, and that index removed. The same
// track may legally appear more than once.
func (p *playlistAPI) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID model.ID) (model.SuccessResponse[bool], error) {
	var res playlistResponse
	if err := p.client.Get(ctx, "getPlaylist", map[string]string{"id": playlistID.String()}, &res); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	for i, entry := range res.Playlist.Entry {
		if entry.ID == trackID.String() {
			params := map[string]string{
				"playlistId":        playlistID.String(),
				"songIndexToRemove": strconv.Itoa(i),
			}
			if err := p.client.Get(ctx, "updatePlaylist", params, nil); err != nil {
				return model.SuccessResponse[bool]{}, err
			}
			return model.OK(true), nil
		}
	}
	return model.OK(false), nil
}

func (p *playlistAPI) mapPlaylist(ctx context.Context, pl playlistEntry) model.Playlist {
	return model.Playlist{
		ID:     model.ID(pl.ID),
		Name:   pl.Name,
		Type:   "MUSIC",
		Tracks: mapSongsWithLyrics(ctx, p.client, pl.Entry),
	}
}
