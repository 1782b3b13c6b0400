package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"SoundX/adapter"
	"SoundX/adapter/subsonic"
	"SoundX/cache"
	"SoundX/config"
	"SoundX/logger"
	"SoundX/model"
	"SoundX/resolver"
	"SoundX/services"
)

// Handler carries the shell-side collaborators the IPC routes need.
type Handler struct {
	cache    *cache.Manager
	resolver *resolver.Resolver
	hub      *PlayerHub
}

func NewHandler(c *cache.Manager, r *resolver.Resolver, hub *PlayerHub) *Handler {
	return &Handler{cache: c, resolver: r, hub: hub}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", logger.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.SuccessResponse[any]{Code: status, Message: message})
}

// CacheCheckHandler answers whether a track is already on disk.
// GET /cache/check?trackId=...&path=...
func (h *Handler) CacheCheckHandler(w http.ResponseWriter, r *http.Request) {
	trackID := r.URL.Query().Get("trackId")
	if trackID == "" {
		writeError(w, http.StatusBadRequest, "trackId is required")
		return
	}
	path := r.URL.Query().Get("path")

	track := model.Track{ID: model.ID(trackID), Path: path}
	writeJSON(w, http.StatusOK, model.OK(h.resolver.Check(track)))
}

type downloadRequest struct {
	TrackID string `json:"trackId"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

// CacheDownloadHandler resolves a track and, when it is not cached yet, runs
// the download phase before answering. The response data is the local URI, or
// "" when the remote URL should stay in use.
func (h *Handler) CacheDownloadHandler(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TrackID == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "trackId and url are required")
		return
	}

	track := model.Track{ID: model.ID(req.TrackID), Path: req.Path}
	res := h.resolver.Resolve(track, req.URL)
	if res.Cached {
		writeJSON(w, http.StatusOK, model.OK(res.URI))
		return
	}
	writeJSON(w, http.StatusOK, model.OK(res.Download(r.Context())))
}

// CacheSizeHandler reports total cache bytes.
func (h *Handler) CacheSizeHandler(w http.ResponseWriter, r *http.Request) {
	size, err := h.cache.Size()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.OK(size))
}

// CacheClearHandler deletes all cached audio.
func (h *Handler) CacheClearHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.OK(true))
}

// MediaHandler serves a cached file for a media:// name. 404 for entries that
// do not exist or names that try to escape the cache directory.
func (h *Handler) MediaHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	path, ok := h.cache.FilePath(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

type loginRequest struct {
	Source   string `json:"source"`
	BaseURL  string `json:"baseUrl"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginHandler rebinds to the requested backend and authenticates. The
// binding is replaced before the login attempt so the probe runs against the
// target server; a failed login leaves the new binding in place but persists
// nothing.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Source {
	case "subsonic":
		services.UseSubsonic(subsonic.Config{
			BaseURL:    req.BaseURL,
			Username:   req.Username,
			Password:   req.Password,
			ClientName: config.Load().ClientName,
		})
	case "native", "":
		baseURL := req.BaseURL
		if baseURL == "" {
			baseURL = config.Load().APIBaseURL
		}
		services.UseNative(baseURL, "")
	default:
		writeError(w, http.StatusBadRequest, "unknown source: "+req.Source)
		return
	}

	res, err := services.Login(r.Context(), adapter.Credentials{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// LogoutHandler clears credentials and rebinds to the anonymous default.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	services.ForceLogout(r.Context())
	writeJSON(w, http.StatusOK, model.OK(true))
}

// AuthCheckHandler probes the bound backend's session state.
func (h *Handler) AuthCheckHandler(w http.ResponseWriter, r *http.Request) {
	res, err := services.Check(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type sourceInfo struct {
	Source  string `json:"source"`
	BaseURL string `json:"baseUrl"`
}

// SourceHandler reports the active backend binding. The session token never
// leaves the shell.
func (h *Handler) SourceHandler(w http.ResponseWriter, r *http.Request) {
	baseURL, source, _ := services.BindingInfo()
	writeJSON(w, http.StatusOK, model.OK(sourceInfo{Source: source, BaseURL: baseURL}))
}

func (h *Handler) GetSearchRecordsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := services.GetSearchRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) SaveSearchRecordHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	res, err := services.SaveSearchRecord(r.Context(), req.Query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ClearSearchRecordsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := services.ClearSearchRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PublishPlayerStateHandler accepts a player state update from the UI process
// and fans it out to every connected listener. Fire and forget: slow
// listeners are dropped, not waited on.
func (h *Handler) PublishPlayerStateHandler(w http.ResponseWriter, r *http.Request) {
	var msg PlayerMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg.Type == "" {
		msg.Type = MsgPlayerUpdate
	}
	if err := h.hub.Publish(&msg); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.OK(true))
}
