package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestKeyNamespacedBySource(t *testing.T) {
	if Key("subsonic", "42") == Key("native", "42") {
		t.Error("same track id on different sources must produce different keys")
	}
	if got := Key("subsonic", "42"); got != "subsonic-42" {
		t.Errorf("Key = %q, want subsonic-42", got)
	}
}

func TestCheckMissAndHit(t *testing.T) {
	m, dir := newTestManager(t)
	key := Key("subsonic", "42")

	if got := m.Check(key, "/music/track.flac"); got != "" {
		t.Errorf("Check on empty cache = %q, want miss", got)
	}

	writeFile(t, dir, "subsonic-42.flac", "audio bytes")
	if got := m.Check(key, "/music/track.flac"); got != "media://subsonic-42.flac" {
		t.Errorf("Check = %q, want media://subsonic-42.flac", got)
	}
}

func TestCheckDefaultExtension(t *testing.T) {
	m, dir := newTestManager(t)
	writeFile(t, dir, "subsonic-42.mp3", "audio")

	// A path with no extension falls back to .mp3.
	if got := m.Check(Key("subsonic", "42"), "stream/42"); got != "media://subsonic-42.mp3" {
		t.Errorf("Check = %q, want the .mp3 fallback hit", got)
	}
}

// Tracks whose path is a full signed stream URL must hit after download: the
// extension comes from the URL's path component on both sides, never from the
// query string.
func TestCheckFindsStreamURLEntry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "audio bytes")
	}))
	defer ts.Close()

	m, _ := newTestManager(t)
	key := Key("subsonic", "42")
	streamURL := ts.URL + "/rest/stream.view?id=42&v=1.16.1&c=SoundX"

	if got := m.Check(key, streamURL); got != "" {
		t.Fatalf("Check on empty cache = %q, want miss", got)
	}
	if uri := m.Download(context.Background(), key, streamURL, ""); uri != "media://subsonic-42.view" {
		t.Fatalf("Download = %q, want media://subsonic-42.view", uri)
	}
	if got := m.Check(key, streamURL); got != "media://subsonic-42.view" {
		t.Errorf("Check after download = %q, want media://subsonic-42.view", got)
	}
}

func TestZeroByteFileIsMiss(t *testing.T) {
	m, dir := newTestManager(t)
	writeFile(t, dir, "subsonic-42.mp3", "")

	if got := m.Check(Key("subsonic", "42"), "track.mp3"); got != "" {
		t.Errorf("zero-byte entry treated as hit: %q", got)
	}
}

func TestDownloadSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "audio bytes")
	}))
	defer ts.Close()

	m, dir := newTestManager(t)
	uri := m.Download(context.Background(), Key("subsonic", "42"), ts.URL+"/stream/42.mp3", "")
	if uri != "media://subsonic-42.mp3" {
		t.Fatalf("Download = %q, want media://subsonic-42.mp3", uri)
	}

	data, err := os.ReadFile(filepath.Join(dir, "subsonic-42.mp3"))
	if err != nil {
		t.Fatalf("cached file missing: %v", err)
	}
	if string(data) != "audio bytes" {
		t.Errorf("cached content = %q", data)
	}
	assertNoTempFiles(t, dir)
}

func TestDownloadFailureLeavesNoArtifacts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	m, dir := newTestManager(t)
	if uri := m.Download(context.Background(), Key("subsonic", "42"), ts.URL+"/stream/42.mp3", ""); uri != "" {
		t.Errorf("failed download resolved to %q, want \"\"", uri)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed download left %d files behind", len(entries))
	}
}

func TestEmptyBodyIsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	m, dir := newTestManager(t)
	if uri := m.Download(context.Background(), Key("subsonic", "42"), ts.URL+"/42.mp3", ""); uri != "" {
		t.Errorf("empty download resolved to %q, want \"\"", uri)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("empty download left %d files behind", len(entries))
	}
}

func TestDownloadCoalescing(t *testing.T) {
	var transfers int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&transfers, 1)
		time.Sleep(50 * time.Millisecond)
		fmt.Fprint(w, "audio bytes")
	}))
	defer ts.Close()

	m, _ := newTestManager(t)
	key := Key("subsonic", "42")
	url := ts.URL + "/42.mp3"

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Download(context.Background(), key, url, "")
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&transfers); n != 1 {
		t.Errorf("%d transfers for one key, want 1", n)
	}
	for i, r := range results {
		if r != "media://subsonic-42.mp3" {
			t.Errorf("caller %d resolved to %q", i, r)
		}
	}
}

func TestDownloadSendsBearerToken(t *testing.T) {
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, "audio")
	}))
	defer ts.Close()

	m, _ := newTestManager(t)
	m.Download(context.Background(), Key("native", "7"), ts.URL+"/7.mp3", "tok")
	if auth != "Bearer tok" {
		t.Errorf("Authorization = %q, want Bearer tok", auth)
	}
}

func TestSizeAndClear(t *testing.T) {
	m, dir := newTestManager(t)
	writeFile(t, dir, "subsonic-1.mp3", "abc")
	writeFile(t, dir, "subsonic-2.mp3", "defgh")

	size, err := m.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 8 {
		t.Errorf("size = %d, want 8", size)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	size, err = m.Size()
	if err != nil {
		t.Fatalf("Size after clear: %v", err)
	}
	if size != 0 {
		t.Errorf("size after clear = %d, want 0", size)
	}
}

func TestFilePathRejectsTraversal(t *testing.T) {
	m, dir := newTestManager(t)
	writeFile(t, dir, "subsonic-1.mp3", "audio")

	for _, name := range []string{"", "../secret", "a/b.mp3", `a\b.mp3`, "..", "subsonic-1.mp3.."} {
		if _, ok := m.FilePath(name); ok {
			t.Errorf("FilePath(%q) resolved, want rejection", name)
		}
	}

	p, ok := m.FilePath("subsonic-1.mp3")
	if !ok {
		t.Fatal("FilePath rejected a valid cache entry")
	}
	if !strings.HasPrefix(p, dir) {
		t.Errorf("resolved path %q escapes cache dir %q", p, dir)
	}
}
