package handlers

import (
	"encoding/json"
	"net/http"
)

type registerWebhookRequest struct {
	URL string `json:"url"`
}

// RegisterWebhook stores the caller's completion-callback URL, replacing any
// previous registration for the same owner.
func (a *App) RegisterWebhook(w http.ResponseWriter, r *http.Request) {
	cred, ok := a.currentCredential(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "API key is required")
		return
	}
	var req registerWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL == "" {
		a.error(w, http.StatusBadRequest, "Webhook URL is required")
		return
	}

	if _, err := a.Service.RegisterWebhook(cred, req.URL); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid URL format")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Webhook registered successfully",
	})
}
