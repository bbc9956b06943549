package httpapi

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"clipforge/internal/apikeys"
	"clipforge/internal/http/handlers"
	"clipforge/internal/infra"
	"clipforge/internal/middleware"
)

// NewRouter assembles the public HTTP surface: the API routes, static assets
// from the public directory, the video download proxy and the JSON fallbacks.
func NewRouter(app *handlers.App, keys *apikeys.Directory, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recover(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	auth := middleware.APIKeyAuth(keys)

	r.Route("/api", func(r chi.Router) {
		r.With(auth).Post("/register-webhook", app.RegisterWebhook)
		r.With(auth).Post("/generate-video", app.GenerateVideo)
		r.With(auth).Get("/check-video", app.CheckVideo)
		r.With(auth).Post("/upload-media", app.UploadMedia)
		r.Get("/get-video-metadata", app.VideoMetadata)
		r.Get("/video/{id}", app.VideoFile)
		r.Head("/video/{id}", app.VideoFile)
	})

	r.Get("/v1/healthz", app.Health)

	// PROXY_TARGET is validated by LoadConfig, so the parse cannot fail here.
	origin, _ := url.Parse(cfg.ProxyTarget)
	r.Handle("/proxy/video/*", http.StripPrefix("/proxy/video", newVideoProxy(origin, logger)))

	r.NotFound(staticOrNotFound(cfg.PublicDir))

	return r
}

// staticOrNotFound serves files from the public directory and answers
// everything else with the documented JSON 404.
func staticOrNotFound(publicDir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(publicDir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			full := filepath.Join(publicDir, filepath.Clean("/"+r.URL.Path))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				fs.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Route not found"}`))
	}
}
