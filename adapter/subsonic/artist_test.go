package subsonic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"SoundX/adapter"
)

func artistServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/getArtists.view" {
			t.Errorf("unexpected request: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"subsonic-response":{"status":"ok","artists":{"index":[
			{"name":"A","artist":[{"id":"a1","name":"Alpha"},{"id":"a2","name":"Arc"}]},
			{"name":"B","artist":[{"id":"b1","name":"Beta"},{"id":"b2","name":"Blur"},{"id":"b3","name":"Bolt"}]}
		]}}}`)
	}))
}

func TestGetArtistListPagination(t *testing.T) {
	ts := artistServer(t)
	defer ts.Close()

	api := &artistAPI{client: newTestClient(ts)}
	ctx := context.Background()

	first, err := api.GetArtistList(ctx, adapter.LoadMoreQuery{PageSize: 2, LoadCount: 0})
	if err != nil {
		t.Fatalf("GetArtistList: %v", err)
	}
	if len(first.Data.List) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(first.Data.List))
	}
	if first.Data.LoadCount != 2 {
		t.Errorf("loadCount = %d, want 2", first.Data.LoadCount)
	}
	if first.Data.Total != 5 {
		t.Errorf("total = %d, want 5", first.Data.Total)
	}
	if !first.Data.HasMore {
		t.Error("hasMore = false on first page, want true")
	}
	if first.Data.List[0].ID != "a1" || first.Data.List[1].ID != "a2" {
		t.Errorf("unexpected page order: %+v", first.Data.List)
	}

	// Resume from where the first page left off. The returned loadCount never
	// decreases and the final page is terminal.
	last, err := api.GetArtistList(ctx, adapter.LoadMoreQuery{PageSize: 4, LoadCount: first.Data.LoadCount})
	if err != nil {
		t.Fatalf("GetArtistList: %v", err)
	}
	if len(last.Data.List) != 3 {
		t.Errorf("len(list) = %d, want 3", len(last.Data.List))
	}
	if last.Data.LoadCount < first.Data.LoadCount {
		t.Errorf("loadCount decreased: %d -> %d", first.Data.LoadCount, last.Data.LoadCount)
	}
	if last.Data.HasMore {
		t.Error("hasMore = true on final page, want false")
	}
}

func TestGetArtistListPastEnd(t *testing.T) {
	ts := artistServer(t)
	defer ts.Close()

	api := &artistAPI{client: newTestClient(ts)}
	res, err := api.GetArtistList(context.Background(), adapter.LoadMoreQuery{PageSize: 2, LoadCount: 50})
	if err != nil {
		t.Fatalf("GetArtistList: %v", err)
	}
	if len(res.Data.List) != 0 {
		t.Errorf("len(list) = %d, want 0", len(res.Data.List))
	}
	if res.Data.LoadCount < 50 {
		t.Errorf("loadCount = %d, must not decrease below 50", res.Data.LoadCount)
	}
	if res.Data.HasMore {
		t.Error("hasMore = true past the end, want false")
	}
}

func TestGetArtistTableList(t *testing.T) {
	ts := artistServer(t)
	defer ts.Close()

	api := &artistAPI{client: newTestClient(ts)}
	res, err := api.GetArtistTableList(context.Background(), adapter.PageQuery{PageSize: 2, Current: 2})
	if err != nil {
		t.Fatalf("GetArtistTableList: %v", err)
	}
	if res.Data.Current != 2 || res.Data.PageSize != 2 {
		t.Errorf("page echo mismatch: %+v", res.Data)
	}
	if len(res.Data.List) != 2 || res.Data.List[0].ID != "b1" {
		t.Errorf("unexpected second page: %+v", res.Data.List)
	}
	if res.Data.Total != 5 {
		t.Errorf("total = %d, want 5", res.Data.Total)
	}
}
