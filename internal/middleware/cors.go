package middleware

import "net/http"

// CORS answers cross-origin requests. With an empty allowlist every origin is
// accepted, which matches the open posture of the public API; a non-empty
// allowlist restricts browsers to the listed origins.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allow := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allow[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				allowed := len(allow) == 0
				value := "*"
				if !allowed {
					if _, ok := allow[origin]; ok {
						allowed = true
						value = origin
						w.Header().Set("Vary", "Origin")
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
				}
				if allowed {
					w.Header().Set("Access-Control-Allow-Origin", value)
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")
					w.Header().Set("Access-Control-Allow-Methods", "GET,POST,HEAD,OPTIONS")
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
