package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"clipforge/internal/domain"
)

type generateVideoRequest struct {
	Prompt            string `json:"prompt"`
	Topic             string `json:"topic"`
	Voice             string `json:"voice"`
	Theme             string `json:"theme"`
	Style             string `json:"style"`
	Language          string `json:"language"`
	Duration          string `json:"duration"`
	AspectRatio       string `json:"aspect_ratio"`
	CustomInstruction string `json:"custom_instruction"`
}

type videoStatusResponse struct {
	VID          int64      `json:"vid"`
	Status       string     `json:"status"`
	VideoURL     *string    `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type videoMetadataResponse struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	VideoType   string     `json:"video_type"`
	Duration    string     `json:"duration"`
	Language    string     `json:"language"`
	Theme       string     `json:"theme"`
}

// GenerateVideo accepts a generation request and returns its ID immediately;
// completion happens out of band.
func (a *App) GenerateVideo(w http.ResponseWriter, r *http.Request) {
	cred, ok := a.currentCredential(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "API key is required")
		return
	}
	var req generateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := a.Service.Create(cred, domain.GenerationParams{
		Prompt:            req.Prompt,
		Topic:             req.Topic,
		Voice:             req.Voice,
		Theme:             req.Theme,
		Style:             req.Style,
		Language:          req.Language,
		Duration:          req.Duration,
		AspectRatio:       req.AspectRatio,
		CustomInstruction: req.CustomInstruction,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			a.error(w, http.StatusBadRequest, "Prompt is required when topic is set to Custom")
		case errors.Is(err, domain.ErrQuotaExceeded):
			a.error(w, http.StatusForbidden, "Free plan limited to 5 videos. Please upgrade to continue.")
		default:
			a.Logger.Error().Err(err).Msg("generate video failed")
			a.error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	a.json(w, http.StatusOK, map[string]int64{"vid": v.ID})
}

// CheckVideo returns the owner-facing status projection for a video.
func (a *App) CheckVideo(w http.ResponseWriter, r *http.Request) {
	cred, ok := a.currentCredential(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "API key is required")
		return
	}
	raw := r.URL.Query().Get("vid")
	if raw == "" {
		a.error(w, http.StatusBadRequest, "Video ID is required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.error(w, http.StatusNotFound, "Video not found")
		return
	}

	v, err := a.Service.Status(cred, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "Video not found")
		case errors.Is(err, domain.ErrForbidden):
			a.error(w, http.StatusForbidden, "You do not have access to this video")
		default:
			a.Logger.Error().Err(err).Msg("check video failed")
			a.error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	a.json(w, http.StatusOK, videoStatusResponse{
		VID:          v.ID,
		Status:       string(v.Status),
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		CreatedAt:    v.CreatedAt,
		CompletedAt:  v.CompletedAt,
	})
}

// VideoMetadata serves the reduced public projection. There is deliberately
// no ownership check on this endpoint.
func (a *App) VideoMetadata(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		a.error(w, http.StatusBadRequest, "Video ID is required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.error(w, http.StatusNotFound, "Video not found")
		return
	}

	v, err := a.Service.PublicMetadata(id)
	if err != nil {
		a.error(w, http.StatusNotFound, "Video not found")
		return
	}
	a.json(w, http.StatusOK, videoMetadataResponse{
		ID:          v.ID,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
		CompletedAt: v.CompletedAt,
		VideoType:   "mp4",
		Duration:    v.Params.Duration,
		Language:    v.Params.Language,
		Theme:       v.Params.Theme,
	})
}

// VideoFile answers existence probes for finished media. HEAD confirms a
// completed video with 204; GET is not implemented in this server.
func (a *App) VideoFile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusNotFound, "Video not found")
		return
	}

	v, err := a.Service.PublicMetadata(id)
	if err != nil {
		a.error(w, http.StatusNotFound, "Video not found")
		return
	}
	if !v.Completed() {
		a.error(w, http.StatusBadRequest, "Video is still processing")
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.error(w, http.StatusBadRequest, "Video streaming not implemented in this demo server")
}
