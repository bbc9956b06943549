package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path"
	"strings"

	"github.com/rs/zerolog"
)

// newVideoProxy forwards download requests to the media origin so browser
// clients are not blocked by the origin's CORS policy. Incoming paths are
// relative to the mount point and rewritten under /videos on the origin.
func newVideoProxy(origin *url.URL, logger zerolog.Logger) http.Handler {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(origin)
			pr.Out.URL.Path = "/videos" + ensureLeadingSlash(pr.In.URL.Path)
			pr.Out.Host = origin.Host
		},
		ModifyResponse: func(resp *http.Response) error {
			name := path.Base(resp.Request.URL.Path)
			resp.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "video_"+name))
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error().Err(err).Str("path", r.URL.Path).Msg("proxy: upstream request failed")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
