// Package services is the canonical call surface consumed by the UI layer.
// Every function reads the active adapter binding at call time and delegates;
// callers never branch on which backend is bound.
package services

import (
	"sync"

	"SoundX/adapter"
	"SoundX/adapter/native"
	"SoundX/adapter/subsonic"
	"SoundX/config"
)

var (
	mgrOnce sync.Once
	mgr     *adapter.Manager
)

// manager lazily creates the process-wide binding, defaulting to an anonymous
// native adapter against the configured backend.
func manager() *adapter.Manager {
	mgrOnce.Do(func() {
		cfg := config.Load()
		mgr = adapter.NewManager(native.New(cfg.APIBaseURL, ""))
	})
	return mgr
}

// Current returns the adapter bound at this moment. Callers that make several
// dependent requests should capture it once so a concurrent switch cannot
// retarget them mid-sequence.
func Current() adapter.MusicAdapter {
	return manager().Current()
}

// UseNative rebinds to the native backend. token may be empty before login.
func UseNative(baseURL, token string) {
	manager().Swap(native.New(baseURL, token))
}

// UseSubsonic rebinds to a Subsonic server.
func UseSubsonic(cfg subsonic.Config) {
	manager().Swap(subsonic.New(cfg))
}

// Bind replaces the active adapter directly. Primarily a test seam.
func Bind(a adapter.MusicAdapter) {
	manager().Swap(a)
}

// BindingInfo describes the active backend for the resolver and cache layer:
// its base URL, the source namespace for cache keys, and the bearer token (if
// any) needed to fetch backend-relative stream paths.
func BindingInfo() (baseURL, source, token string) {
	switch a := Current().(type) {
	case *native.Adapter:
		return a.BaseURL(), a.Source(), a.Token()
	case *subsonic.Adapter:
		// Subsonic stream URLs carry their own auth parameters.
		return a.BaseURL(), a.Source(), ""
	default:
		return "", a.Source(), ""
	}
}
