package subsonic

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"SoundX/adapter"
	"SoundX/model"
)

// fullListSize bounds the "fetch everything" emulation for load-more
// endpoints that have no honest offset/total support.
const fullListSize = 1000000

// placeholderTotal is reported for size/offset paths where the server gives
// no authoritative count. The envelope flags it as an estimate.
const placeholderTotal = 1000

type albumAPI struct {
	client *Client
}

func (a *albumAPI) GetAlbumList(ctx context.Context) (model.SuccessResponse[[]model.Album], error) {
	var res albumListResponse
	if err := a.client.Get(ctx, "getAlbumList2", map[string]string{"type": "newest", "size": "50"}, &res); err != nil {
		return model.SuccessResponse[[]model.Album]{}, err
	}
	return model.OK(a.mapAlbums(res.albums())), nil
}

func (a *albumAPI) GetAlbumTableList(ctx context.Context, q adapter.PageQuery) (model.SuccessResponse[model.TableData[model.Album]], error) {
	offset := (q.Current - 1) * q.PageSize
	if offset < 0 {
		offset = 0
	}
	var res albumListResponse
	params := map[string]string{
		"type":   "alphabeticalByName",
		"size":   strconv.Itoa(q.PageSize),
		"offset": strconv.Itoa(offset),
	}
	if err := a.client.Get(ctx, "getAlbumList2", params, &res); err != nil {
		return model.SuccessResponse[model.TableData[model.Album]]{}, err
	}
	// The protocol gives no count for this view; Total is only a hint.
	return model.OK(model.TableData[model.Album]{
		PageSize:        q.PageSize,
		Current:         q.Current,
		List:            a.mapAlbums(res.albums()),
		Total:           placeholderTotal,
		TotalIsEstimate: true,
	}), nil
}

func (a *albumAPI) LoadMoreAlbums(ctx context.Context, q adapter.LoadMoreQuery) (model.SuccessResponse[model.LoadMoreData[model.Album]], error) {
	// No offset paging with a trustworthy total here: fetch the full
	// candidate set once and report a terminal page.
	var res albumListResponse
	params := map[string]string{
		"type":   "alphabeticalByName",
		"size":   strconv.Itoa(fullListSize),
		"offset": "0",
	}
	if err := a.client.Get(ctx, "getAlbumList2", params, &res); err != nil {
		return model.SuccessResponse[model.LoadMoreData[model.Album]]{}, err
	}
	list := a.mapAlbums(res.albums())
	return model.OK(model.LoadMoreData[model.Album]{
		PageSize:  q.PageSize,
		LoadCount: q.LoadCount + len(list),
		List:      list,
		Total:     len(list),
		HasMore:   false,
	}), nil
}

func (a *albumAPI) CreateAlbum(ctx context.Context, _ model.Album) (model.SuccessResponse[model.Album], error) {
	return model.SuccessResponse[model.Album]{}, adapter.Unsupported("create album")
}

func (a *albumAPI) UpdateAlbum(ctx context.Context, _ model.ID, _ model.Album) (model.SuccessResponse[model.Album], error) {
	return model.SuccessResponse[model.Album]{}, adapter.Unsupported("update album")
}

func (a *albumAPI) DeleteAlbum(ctx context.Context, _ model.ID) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("delete album")
}

func (a *albumAPI) BatchCreateAlbums(ctx context.Context, _ []model.Album) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch create albums")
}

func (a *albumAPI) BatchDeleteAlbums(ctx context.Context, _ []model.ID) (model.SuccessResponse[bool], error) {
	return model.SuccessResponse[bool]{}, adapter.Unsupported("batch delete albums")
}

func (a *albumAPI) GetRecommendedAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return a.shelf(ctx, "frequent", q.PageSize)
}

func (a *albumAPI) GetRecentAlbums(ctx context.Context, q adapter.LatestQuery) (model.SuccessResponse[[]model.Album], error) {
	return a.shelf(ctx, "recent", q.PageSize)
}

func (a *albumAPI) shelf(ctx context.Context, kind string, size int) (model.SuccessResponse[[]model.Album], error) {
	if size <= 0 {
		size = 10
	}
	var res albumListResponse
	if err := a.client.Get(ctx, "getAlbumList2", map[string]string{"type": kind, "size": strconv.Itoa(size)}, &res); err != nil {
		return model.SuccessResponse[[]model.Album]{}, err
	}
	return model.OK(a.mapAlbums(res.albums())), nil
}

func (a *albumAPI) GetAlbumByID(ctx context.Context, id model.ID) (model.SuccessResponse[model.Album], error) {
	var res albumResponse
	if err := a.client.Get(ctx, "getAlbum", map[string]string{"id": id.String()}, &res); err != nil {
		return model.SuccessResponse[model.Album]{}, err
	}
	return model.OK(mapAlbum(res.Album, a.client)), nil
}

// GetAlbumTracks fetches the whole album (the protocol returns songs inline)
// and paginates locally. Total counts the full album regardless of keyword
// filtering or the returned slice.
func (a *albumAPI) GetAlbumTracks(ctx context.Context, id model.ID, q adapter.AlbumTracksQuery) (model.SuccessResponse[model.AlbumTracksPage], error) {
	var res albumResponse
	if err := a.client.Get(ctx, "getAlbum", map[string]string{"id": id.String()}, &res); err != nil {
		return model.SuccessResponse[model.AlbumTracksPage]{}, err
	}

	songs := res.Album.Song
	total := len(songs)

	if q.Keyword != "" {
		kw := strings.ToLower(q.Keyword)
		filtered := songs[:0:0]
		for _, s := range songs {
			if strings.Contains(strings.ToLower(s.Title), kw) {
				filtered = append(filtered, s)
			}
		}
		songs = filtered
	}

	ordered := make([]child, len(songs))
	copy(ordered, songs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if q.Sort == "desc" {
			return ordered[i].Track > ordered[j].Track
		}
		return ordered[i].Track < ordered[j].Track
	})

	start := q.Skip
	if start > len(ordered) {
		start = len(ordered)
	}
	end := start + q.PageSize
	if q.PageSize <= 0 || end > len(ordered) {
		end = len(ordered)
	}
	page := ordered[start:end]

	return model.OK(model.AlbumTracksPage{
		List:  mapSongsWithLyrics(ctx, a.client, page),
		Total: total,
	}), nil
}

// GetAlbumsByArtist resolves the artist name to an id with a best-effort
// search; when resolution fails the answer is an empty list, not an error.
func (a *albumAPI) GetAlbumsByArtist(ctx context.Context, artist string) (model.SuccessResponse[[]model.Album], error) {
	id := searchArtistID(ctx, a.client, artist)
	if id == "" {
		return model.OK([]model.Album{}), nil
	}
	var res artistResponse
	if err := a.client.Get(ctx, "getArtist", map[string]string{"id": id}, &res); err != nil {
		return model.OK([]model.Album{}), nil
	}
	return model.OK(a.mapAlbums(res.Artist.Album)), nil
}

func (a *albumAPI) mapAlbums(entries []albumEntry) []model.Album {
	list := make([]model.Album, 0, len(entries))
	for _, e := range entries {
		list = append(list, mapAlbum(e, a.client))
	}
	return list
}

// searchArtistID is the shared name-to-id resolution step. Empty string means
// the artist could not be resolved.
func searchArtistID(ctx context.Context, c *Client, name string) string {
	var res searchResponse
	if err := c.Get(ctx, "search3", map[string]string{"query": name, "artistCount": "1"}, &res); err != nil {
		return ""
	}
	if len(res.SearchResult3.Artist) == 0 {
		return ""
	}
	return res.SearchResult3.Artist[0].ID
}
