// Package server is the shell IPC surface: a local HTTP endpoint the desktop
// frontend talks to for cache management, media:// resolution and player
// state fan-out.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"SoundX/cache"
	"SoundX/config"
	"SoundX/logger"
	"SoundX/resolver"
	"SoundX/services"
	"SoundX/store"
)

// Start initializes and starts the shell server. It blocks until SIGINT or
// SIGTERM, then shuts down gracefully.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
	})

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Redis is optional: without it credentials and search history simply
	// do not persist across restarts.
	if err := store.Connect(cfg); err != nil {
		logger.Warn("redis unavailable, persistence disabled", logger.ErrorField(err))
	} else {
		defer store.Close()
	}

	cacheManager, err := cache.NewManager(cfg.CacheDir)
	if err != nil {
		logger.Fatal("failed to initialize cache", logger.ErrorField(err))
	}
	defer cacheManager.Close()

	// Rebind to the last backend if credentials survived a restart.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := services.RestoreBinding(ctx); err != nil {
		logger.Warn("could not restore previous backend binding", logger.ErrorField(err))
	}
	cancel()

	trackResolver := resolver.New(cacheManager, services.BindingInfo)

	hub := NewPlayerHub()
	go hub.Run()
	defer hub.Stop()

	h := NewHandler(cacheManager, trackResolver, hub)

	router := mux.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Range")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Range")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Cache management
	router.HandleFunc("/cache/check", h.CacheCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/cache/download", h.CacheDownloadHandler).Methods(http.MethodPost)
	router.HandleFunc("/cache/size", h.CacheSizeHandler).Methods(http.MethodGet)
	router.HandleFunc("/cache/clear", h.CacheClearHandler).Methods(http.MethodPost)

	// media:// scheme resolution
	router.HandleFunc("/media/{file}", h.MediaHandler).Methods(http.MethodGet)

	// Session and backend binding
	router.HandleFunc("/auth/login", h.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/auth/logout", h.LogoutHandler).Methods(http.MethodPost)
	router.HandleFunc("/auth/check", h.AuthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/source", h.SourceHandler).Methods(http.MethodGet)

	// Local search history
	router.HandleFunc("/search-records", h.GetSearchRecordsHandler).Methods(http.MethodGet)
	router.HandleFunc("/search-records", h.SaveSearchRecordHandler).Methods(http.MethodPost)
	router.HandleFunc("/search-records", h.ClearSearchRecordsHandler).Methods(http.MethodDelete)

	// Player state fan-out
	router.HandleFunc("/ws/player", h.PlayerWSHandler).Methods(http.MethodGet)
	router.HandleFunc("/player/state", h.PublishPlayerStateHandler).Methods(http.MethodPost)

	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("shell server starting", logger.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("server stopped")
}
