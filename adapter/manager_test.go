package adapter

import (
	"sync"
	"testing"
)

// stubAdapter satisfies MusicAdapter with just enough to tell instances apart.
type stubAdapter struct {
	source string
}

func (s *stubAdapter) Track() TrackAPI       { return nil }
func (s *stubAdapter) Album() AlbumAPI       { return nil }
func (s *stubAdapter) Artist() ArtistAPI     { return nil }
func (s *stubAdapter) Playlist() PlaylistAPI { return nil }
func (s *stubAdapter) User() UserAPI         { return nil }
func (s *stubAdapter) Auth() AuthAPI         { return nil }
func (s *stubAdapter) Source() string        { return s.source }

func TestManagerSwap(t *testing.T) {
	m := NewManager(&stubAdapter{source: "native"})
	if got := m.Current().Source(); got != "native" {
		t.Fatalf("initial binding = %q, want native", got)
	}

	m.Swap(&stubAdapter{source: "subsonic"})
	if got := m.Current().Source(); got != "subsonic" {
		t.Errorf("after swap = %q, want subsonic", got)
	}
}

// A caller that captured the adapter before a swap keeps using that instance;
// the swap replaces the binding, it never mutates it.
func TestCapturedInstanceSurvivesSwap(t *testing.T) {
	m := NewManager(&stubAdapter{source: "native"})
	captured := m.Current()

	m.Swap(&stubAdapter{source: "subsonic"})

	if got := captured.Source(); got != "native" {
		t.Errorf("captured instance changed to %q after swap", got)
	}
	if got := m.Current().Source(); got != "subsonic" {
		t.Errorf("new readers got %q, want subsonic", got)
	}
}

func TestConcurrentSwapAndRead(t *testing.T) {
	m := NewManager(&stubAdapter{source: "native"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Swap(&stubAdapter{source: "subsonic"})
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if a := m.Current(); a == nil || a.Source() == "" {
					t.Error("Current returned an unusable adapter")
					return
				}
			}
		}()
	}
	wg.Wait()
}
