package subsonic

import (
	"context"
	"strconv"

	"SoundX/adapter"
	"SoundX/model"
)

type artistAPI struct {
	client *Client
}

// GetArtistList flattens the server's indexed artist list and paginates
// locally; getArtists has no offset support, but the full index gives an
// exact total.
func (a *artistAPI) GetArtistList(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	all, err := a.allArtists(ctx)
	if err != nil {
		return model.SuccessResponse[model.LoadMoreData[model.Artist]]{}, err
	}

	start := q.LoadCount
	if start > len(all) {
		start = len(all)
	}
	end := start + q.PageSize
	if q.PageSize <= 0 || end > len(all) {
		end = len(all)
	}

	list := make([]model.Artist, 0, end-start)
	for _, e := range all[start:end] {
		list = append(list, mapArtist(e, a.client))
	}

	return model.OK(model.LoadMoreData[model.Artist]{
		PageSize:  q.PageSize,
		LoadCount: q.LoadCount + len(list),
		List:      list,
		Total:     len(all),
		HasMore:   q.LoadCount+len(list) < len(all),
	}), nil
}

func (a *artistAPI) GetArtistTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Artist]], error) {
	offset := (q.Current - 1) * q.PageSize
	if offset < 0 {
		offset = 0
	}
	res, err := a.GetArtistList(ctx, adapter.LoadMoreQuery{PageSize: q.PageSize, LoadCount: offset})
	if err != nil {
		return model.SuccessResponse[model.TableData[model.Artist]]{}, err
	}
	return model.OK(model.TableData[model.Artist]{
		PageSize: q.PageSize,
		Current:  q.Current,
		List:     res.Data.List,
		Total:    res.Data.Total,
	}), nil
}

func (a *artistAPI) LoadMoreArtists(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Artist]], error) {
	return a.GetArtistList(ctx, q)
}

func (a *artistAPI) CreateArtist(ctx context.Context, _ model.Artist) (model.SuccessResponse[model.Artist], error) {
	return model.SuccessResponse[model.Artist]{}, adapter.Unsupported("create artist")
}

func (a *artistAPI) UpdateArtist(ctx context.Context, _ model.ID, _ model.Artist) (model.SuccessResponse[model.Artist], error) {
	return model.SuccessResponse[model.Artist]{}, adapter.Unsupported("update artist")
}

func (a *artistAPI) DeleteArtist(ctx context.Context, _ model.ID) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("delete artist")
}

func (a *artistAPI) BatchCreateArtists(ctx context.Context, _ []model.Artist) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch create artists")
}

func (a *artistAPI) BatchDeleteArtists(ctx context.Context, _ []model.ID) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch delete artists")
}

func (a *artistAPI) GetArtistByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Artist], error) {
	var res artistResponse
	if err := a.client.Get(ctx, "getArtist", map[string]string{"id": id.String()}, &res); err != nil {
		return model.SuccessResponse[model.Artist]{}, err
	}
	return model.OK(mapArtist(res.Artist, a.client)), nil
}

// GetLatestArtists samples random albums and lifts their artist fields; the
// protocol has no direct "newest artists" endpoint. Duplicates are dropped,
// first occurrence wins.
func (a *artistAPI) GetLatestArtists(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Artist], error) {
	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	var res albumListResponse
	if err := a.client.Get(ctx, "getAlbumList2", map[string]string{"type": "random", "size": strconv.Itoa(size)}, &res); err != nil {
		return model.SuccessResponse[[]model.Artist]{}, err
	}

	seen := make(map[string]bool)
	list := make([]model.Artist, 0, size)
	for _, al := range res.albums() {
		id := al.ArtistID
		if id == "" {
			id = al.Artist
		}
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		list = append(list, model.Artist{
			ID:    model.ID(id),
			Name:  al.Artist,
			Cover: a.client.CoverURL(al.CoverArt),
		})
	}
	return model.OK(list), nil
}

func (a *artistAPI) allArtists(ctx context.Context) ([]artistEntry, error) {
	var res artistsResponse
	if err := a.client.Get(ctx, "getArtists", nil, &res); err != nil {
		return nil, err
	}
	var all []artistEntry
	for _, idx := range res.Artists.Index {
		all = append(all, idx.Artist...)
	}
	return all, nil
}
