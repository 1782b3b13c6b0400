// Package cache materializes remote audio on local disk and serves it back
// through the media:// scheme. Downloads are deduplicated per cache key,
// written to a temp sibling and atomically renamed, so a key is either fully
// cached or absent; failures never leave partial artifacts.
package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"SoundX/logger"
)

// Scheme is the local resource scheme the desktop shell registers;
// Scheme://{key}{ext} resolves to a file in the cache directory.
const Scheme = "media"

// defaultExt is assumed when the original path carries no extension.
const defaultExt = ".mp3"

// Manager owns one cache directory.
type Manager struct {
	dir        string
	httpClient *http.Client

	mu       sync.Mutex
	inflight map[string]*inflightDownload

	// sizeValid/size cache the directory byte-sum; the fsnotify watcher
	// invalidates it on any change so Size stays cheap.
	sizeValid atomic.Bool
	size      atomic.Int64
	watcher   *fsnotify.Watcher
}

type inflightDownload struct {
	done chan struct{}
	uri  string // settled result; "" means no cache entry was produced
}

// NewManager creates the cache directory if needed and starts the size
// watcher. The watcher is best-effort; without it Size falls back to walking
// the directory on every call.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	m := &Manager{
		dir:        dir,
		httpClient: &http.Client{},
		inflight:   make(map[string]*inflightDownload),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("cache size watcher unavailable", logger.ErrorField(err))
		return m, nil
	}
	if err := watcher.Add(dir); err != nil {
		logger.Warn("cache size watcher unavailable", logger.ErrorField(err))
		watcher.Close()
		return m, nil
	}
	m.watcher = watcher
	go m.watch()
	return m, nil
}

func (m *Manager) watch() {
	for {
		select {
		case _, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			m.sizeValid.Store(false)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("cache watcher error", logger.ErrorField(err))
		}
	}
}

// Close stops the watcher. In-flight downloads are not interrupted.
func (m *Manager) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// Key builds the on-disk cache identity for a track. Keys are namespaced by
// source so ids from different backends cannot collide after a switch.
func Key(source string, trackID string) string {
	return source + "-" + trackID
}

func extFromPath(p string) string {
	if ext := path.Ext(p); ext != "" {
		return ext
	}
	return defaultExt
}

func extFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultExt
	}
	return extFromPath(u.Path)
}

func localURI(name string) string {
	return Scheme + "://" + name
}

// Check reports whether a track is cached. The expected extension is derived
// exactly as Download derives it, so an entry fetched from a stream URL with
// query parameters is found on the next check. A zero-byte file counts as a
// miss; a crash between create and write must not poison the key.
func (m *Manager) Check(key, originalPath string) string {
	name := key + extFromURL(originalPath)
	info, err := os.Stat(filepath.Join(m.dir, name))
	if err != nil || info.Size() == 0 {
		return ""
	}
	return localURI(name)
}

// Download ensures the track's bytes are on disk and returns the local URI,
// or "" when no cache entry could be produced. Callers treat "" as "keep
// using the remote URL"; download failure is never an error on the playback
// path.
//
// At most one transfer runs per key: concurrent callers for the same key are
// handed the same in-flight completion and observe the same outcome.
func (m *Manager) Download(ctx context.Context, key, rawURL, token string) string {
	m.mu.Lock()
	if dl, ok := m.inflight[key]; ok {
		m.mu.Unlock()
		<-dl.done
		return dl.uri
	}
	dl := &inflightDownload{done: make(chan struct{})}
	m.inflight[key] = dl
	m.mu.Unlock()

	dl.uri = m.fetch(ctx, key, rawURL, token)

	m.mu.Lock()
	delete(m.inflight, key)
	m.mu.Unlock()
	close(dl.done)

	return dl.uri
}

func (m *Manager) fetch(ctx context.Context, key, rawURL, token string) string {
	name := key + extFromURL(rawURL)
	finalPath := filepath.Join(m.dir, name)

	if info, err := os.Stat(finalPath); err == nil && info.Size() > 0 {
		return localURI(name)
	}

	logger.Info("starting cache download",
		logger.String("key", key),
		logger.String("url", rawURL))

	tmpPath := finalPath + ".tmp"
	if err := m.transfer(ctx, rawURL, token, tmpPath); err != nil {
		logger.Error("cache download failed",
			logger.String("key", key),
			logger.ErrorField(err))
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn("failed to remove temp file", logger.ErrorField(removeErr))
		}
		return ""
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		logger.Error("cache rename failed", logger.String("key", key), logger.ErrorField(err))
		os.Remove(tmpPath)
		return ""
	}

	m.sizeValid.Store(false)
	logger.Info("cached track", logger.String("key", key), logger.String("file", name))
	return localURI(name)
}

// transfer streams the remote body into tmpPath and verifies it is non-empty.
// The file is left in place on success only; callers clean up otherwise.
func (m *Manager) transfer(ctx context.Context, rawURL, token, tmpPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "SoundX-Desktop")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch failed: %s", resp.Status)
	}

	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	if written == 0 {
		return fmt.Errorf("downloaded file is empty")
	}
	return nil
}

// Size returns the total bytes under the cache directory.
func (m *Manager) Size() (int64, error) {
	if m.watcher != nil && m.sizeValid.Load() {
		return m.size.Load(), nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}

	m.size.Store(total)
	m.sizeValid.Store(true)
	return total, nil
}

// Clear deletes every cache entry. There is no partial eviction policy.
func (m *Manager) Clear() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.Remove(filepath.Join(m.dir, entry.Name())); err != nil {
			return err
		}
	}
	m.sizeValid.Store(false)
	return nil
}

// FilePath resolves a media:// name to its on-disk path, rejecting anything
// that would escape the cache directory. Second return is false when the
// entry does not exist.
func (m *Manager) FilePath(name string) (string, bool) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", false
	}
	p := filepath.Join(m.dir, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}
