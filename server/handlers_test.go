package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"

	"SoundX/cache"
	"SoundX/resolver"
)

func newTestHandler(t *testing.T) (*Handler, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := cache.NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	r := resolver.New(c, func() (string, string, string) { return "http://backend", "test", "" })

	hub := NewPlayerHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	return NewHandler(c, r, hub), dir
}

func testRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/cache/check", h.CacheCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/cache/download", h.CacheDownloadHandler).Methods(http.MethodPost)
	router.HandleFunc("/cache/size", h.CacheSizeHandler).Methods(http.MethodGet)
	router.HandleFunc("/cache/clear", h.CacheClearHandler).Methods(http.MethodPost)
	router.HandleFunc("/media/{file}", h.MediaHandler).Methods(http.MethodGet)
	router.HandleFunc("/player/state", h.PublishPlayerStateHandler).Methods(http.MethodPost)
	return router
}

type stringEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func TestCacheCheckRequiresTrackID(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cache/check", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCacheCheckMissAndHit(t *testing.T) {
	h, dir := newTestHandler(t)
	router := testRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cache/check?trackId=1&path=t.mp3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res stringEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Data != "" {
		t.Errorf("miss returned %q", res.Data)
	}

	// The active binding's source namespaces the key.
	if err := os.WriteFile(filepath.Join(dir, "test-1.mp3"), []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cache/check?trackId=1&path=t.mp3", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Data != "media://test-1.mp3" {
		t.Errorf("hit returned %q, want media://test-1.mp3", res.Data)
	}
}

func TestCacheDownloadEndpoint(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "audio bytes")
	}))
	defer backend.Close()

	h, _ := newTestHandler(t)
	body, _ := json.Marshal(map[string]string{
		"trackId": "7",
		"path":    "stream/7.mp3",
		"url":     backend.URL + "/stream/7.mp3",
	})

	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cache/download", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res stringEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Data != "media://test-7.mp3" {
		t.Errorf("download resolved to %q, want media://test-7.mp3", res.Data)
	}
}

func TestMediaHandler(t *testing.T) {
	h, dir := newTestHandler(t)
	router := testRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/missing.mp3", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing entry: status = %d, want 404", rec.Code)
	}

	if err := os.WriteFile(filepath.Join(dir, "test-1.mp3"), []byte("audio bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/test-1.mp3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "audio bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMediaHandlerRejectsTraversal(t *testing.T) {
	h, dir := newTestHandler(t)

	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(secret, []byte("keep out"), 0644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/media/x", nil)
	req = mux.SetURLVars(req, map[string]string{"file": "../secret.txt"})
	rec := httptest.NewRecorder()
	h.MediaHandler(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("traversal: status = %d, want 404", rec.Code)
	}
}

func TestCacheSizeAndClearEndpoints(t *testing.T) {
	h, dir := newTestHandler(t)
	router := testRouter(h)

	if err := os.WriteFile(filepath.Join(dir, "test-1.mp3"), []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cache/size", nil))
	var sizeRes struct {
		Code int   `json:"code"`
		Data int64 `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sizeRes); err != nil {
		t.Fatal(err)
	}
	if sizeRes.Data != 5 {
		t.Errorf("size = %d, want 5", sizeRes.Data)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cache/clear", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: status = %d", rec.Code)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d files left after clear", len(entries))
	}
}

func TestPublishPlayerState(t *testing.T) {
	h, _ := newTestHandler(t)
	body := []byte(`{"type":"player:update","data":{"title":"Song","playing":true}}`)

	rec := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/player/state", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
