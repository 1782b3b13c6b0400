package subsonic

import (
	"context"
	"strconv"

	"SoundX/adapter"
	"SoundX/model"
)

type trackAPI struct {
	client *Client
}

func (t *trackAPI) GetTrackList(ctx context.Context) (model.SuccessResponse[[]model.Track], error) {
	var res randomSongsResponse
	if err := t.client.Get(ctx, "getRandomSongs", map[string]string{"size": "50"}, &res); err != nil {
		return model.SuccessResponse[[]model.Track]{}, err
	}
	return model.OK(t.mapSongs(res.RandomSongs.Song)), nil
}

// GetTrackTableList pages through the full song catalog via search3 with an
// empty query, which Navidrome treats as "match everything". The server gives
// no total for it, so Total is an estimate.
func (t *trackAPI) GetTrackTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Track]], error) {
	offset := (q.Current - 1) * q.PageSize
	if offset < 0 {
		offset = 0
	}
	songs, err := t.searchSongs(ctx, "", q.PageSize, offset)
	if err != nil {
		return model.SuccessResponse[model.TableData[model.Track]]{}, err
	}
	return model.OK(model.TableData[model.Track]{
		PageSize:        q.PageSize,
		Current:         q.Current,
		List:            t.mapSongs(songs),
		Total:           placeholderTotal,
		TotalIsEstimate: true,
	}), nil
}

func (t *trackAPI) LoadMoreTracks(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Track]], error) {
	songs, err := t.searchSongs(ctx, "", q.PageSize, q.LoadCount)
	if err != nil {
		return model.SuccessResponse[model.LoadMoreData[model.Track]]{}, err
	}
	list := t.mapSongs(songs)
	return model.OK(model.LoadMoreData[model.Track]{
		PageSize:        q.PageSize,
		LoadCount:       q.LoadCount + len(list),
		List:            list,
		Total:           placeholderTotal,
		TotalIsEstimate: true,
		HasMore:         len(list) == q.PageSize && q.PageSize > 0,
	}), nil
}

func (t *trackAPI) CreateTrack(ctx context.Context, _ model.Track) (model.SuccessResponse[model.Track], error) {
	return model.SuccessResponse[model.Track]{}, adapter.Unsupported("create track")
}

func (t *trackAPI) UpdateTrack(ctx context.Context, _ model.ID, _ model.Track) (model.SuccessResponse[model.Track], error) {
	return model.SuccessResponse[model.Track]{}, adapter.Unsupported("update track")
}

func (t *trackAPI) DeleteTrack(ctx context.Context, _ model.ID, _ bool) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("delete track")
}

func (t *trackAPI) GetDeletionImpact(ctx context.Context, _ model.ID) (model.SuccessResponse[model.DeletionImpact], error) {
	return model.SuccessResponse[model.DeletionImpact]{}, adapter.Unsupported("deletion impact")
}

func (t *trackAPI) BatchCreateTracks(ctx context.Context, _ []model.Track) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch create tracks")
}

func (t *trackAPI) BatchDeleteTracks(ctx context.Context, _ []model.ID) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch delete tracks")
}

func (t *trackAPI) GetLatestTracks(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Track], error) {
	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	var res randomSongsResponse
	if err := t.client.Get(ctx, "getRandomSongs", map[string]string{"size": strconv.Itoa(size)}, &res); err != nil {
		return model.SuccessResponse[[]model.Track]{}, err
	}
	return model.OK(t.mapSongs(res.RandomSongs.Song)), nil
}

// GetTracksByArtist searches songs by the artist's name. Resolution failures
// degrade to an empty list.
func (t *trackAPI) GetTracksByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Track], error) {
	var res searchResponse
	params := map[string]string{"query": artist, "songCount": "100", "artistCount": "0", "albumCount": "0"}
	if err := t.client.Get(ctx, "search3", params, &res); err != nil {
		return model.OK([]model.Track{}), nil
	}
	matched := res.SearchResult3.Song[:0:0]
	for _, s := range res.SearchResult3.Song {
		if s.Artist == artist {
			matched = append(matched, s)
		}
	}
	return model.OK(t.mapSongs(matched)), nil
}

func (t *trackAPI) searchSongs(ctx context.Context, query string, count, offset int) ([]child, error) {
	params := map[string]string{
		"query":       query,
		"songCount":   strconv.Itoa(count),
		"songOffset":  strconv.Itoa(offset),
		"artistCount": "0",
		"albumCount":  "0",
	}
	var res searchResponse
	if err := t.client.Get(ctx, "search3", params, &res); err != nil {
		return nil, err
	}
	return res.SearchResult3.Song, nil
}

func (t *trackAPI) mapSongs(songs []child) []model.Track {
	list := make([]model.Track, 0, len(songs))
	for _, s := range songs {
		list = append(list, mapSong(s, t.client, nil))
	}
	return list
}
