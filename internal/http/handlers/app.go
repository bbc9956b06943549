package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"clipforge/internal/domain"
	"clipforge/internal/middleware"
	"clipforge/internal/storage"
	"clipforge/internal/videos"
)

// App bundles the dependencies shared by the HTTP handlers.
type App struct {
	Logger         zerolog.Logger
	Service        *videos.Service
	Uploads        *storage.FileStore
	MaxUploadBytes int64
}

// NewApp builds the handler container.
func NewApp(logger zerolog.Logger, service *videos.Service, uploads *storage.FileStore, maxUploadBytes int64) *App {
	return &App{
		Logger:         logger,
		Service:        service,
		Uploads:        uploads,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// currentCredential returns the credential resolved by the auth middleware.
func (a *App) currentCredential(r *http.Request) (domain.Credential, bool) {
	return middleware.CredentialFromContext(r.Context())
}
