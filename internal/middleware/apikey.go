package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"clipforge/internal/apikeys"
	"clipforge/internal/domain"
)

type credentialKey string

const credentialCtxKey credentialKey = "credential"

// APIKeyAuth authenticates requests via the X-API-Key header and stores the
// resolved credential on the request context.
func APIKeyAuth(keys *apikeys.Directory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-API-Key")
			if token == "" {
				writeAuthError(w, "API key is required")
				return
			}
			cred, err := keys.Resolve(token)
			if err != nil {
				writeAuthError(w, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithCredential(r.Context(), cred)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// CredentialFromContext returns the credential stored by APIKeyAuth.
func CredentialFromContext(ctx context.Context) (domain.Credential, bool) {
	cred, ok := ctx.Value(credentialCtxKey).(domain.Credential)
	return cred, ok
}

// ContextWithCredential injects a credential, primarily for tests that call
// handlers without the auth middleware.
func ContextWithCredential(ctx context.Context, cred domain.Credential) context.Context {
	return context.WithValue(ctx, credentialCtxKey, cred)
}
