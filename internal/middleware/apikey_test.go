package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipforge/internal/apikeys"
	"clipforge/internal/domain"
)

func TestAPIKeyAuth(t *testing.T) {
	keys := apikeys.NewDirectory()
	keys.Add("good-key", domain.Credential{OwnerID: "7", DisplayName: "Seven", Plan: domain.PlanFree})

	handler := APIKeyAuth(keys)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cred, ok := CredentialFromContext(r.Context())
		if !ok {
			t.Error("credential missing from context inside protected handler")
		}
		_, _ = w.Write([]byte(cred.OwnerID))
	}))

	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantError  string
	}{
		{name: "missing key", key: "", wantStatus: http.StatusUnauthorized, wantError: "API key is required"},
		{name: "unknown key", key: "bogus", wantStatus: http.StatusUnauthorized, wantError: "Invalid API key"},
		{name: "valid key", key: "good-key", wantStatus: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.key != "" {
				req.Header.Set("X-API-Key", tc.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantError != "" {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decoding error body: %v", err)
				}
				if body["error"] != tc.wantError {
					t.Fatalf("error = %q, want %q", body["error"], tc.wantError)
				}
				return
			}
			if rec.Body.String() != "7" {
				t.Fatalf("handler body = %q, want owner ID", rec.Body.String())
			}
		})
	}
}
