package model

// SuccessResponse is the envelope every adapter operation returns. Code 200
// denotes success; any other code (notably 401) is an application-level
// outcome carried as data, not a transport failure.
type SuccessResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) SuccessResponse[T] {
	return SuccessResponse[T]{Code: 200, Message: "success", Data: data}
}

// LoadMoreData is the paginated envelope for "load more" style queries.
// LoadCount is cumulative: the value returned is always >= the value passed
// in. HasMore=false is a terminal signal and the caller must stop fetching.
type LoadMoreData[T any] struct {
	PageSize  int  `json:"pageSize"`
	LoadCount int  `json:"loadCount"`
	List      []T  `json:"list"`
	Total     int  `json:"total"`
	// TotalIsEstimate marks Total as a best-effort upper bound. Subsonic list
	// endpoints that honor size/offset give no authoritative count, so the
	// adapter reports a placeholder and flags it here.
	TotalIsEstimate bool `json:"totalIsEstimate,omitempty"`
	HasMore         bool `json:"hasMore"`
}

// TableData is the paginated envelope for table views (page-numbered).
type TableData[T any] struct {
	PageSize        int  `json:"pageSize"`
	Current         int  `json:"current"`
	List            []T  `json:"list"`
	Total           int  `json:"total"`
	TotalIsEstimate bool `json:"totalIsEstimate,omitempty"`
}

// AlbumTracksPage is the song-list slice of one album. Total counts the whole
// album, not the returned slice.
type AlbumTracksPage struct {
	List  []Track `json:"list"`
	Total int     `json:"total"`
}
