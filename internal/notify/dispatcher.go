package notify

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"clipforge/internal/domain"
)

// WebhookSource looks up an owner's registered callback endpoint.
type WebhookSource interface {
	GetWebhook(ownerID string) (domain.Webhook, bool)
}

const eventVideoCompleted = "video.completed"

// Event is the payload posted to a registered webhook when a video completes.
type Event struct {
	Event        string     `json:"event"`
	VideoID      int64      `json:"vid"`
	Status       string     `json:"status"`
	VideoURL     *string    `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// Dispatcher posts completion events to owner-registered webhooks. Delivery
// is best effort: any failure is logged and dropped, never retried, and never
// surfaced to the completion transition that triggered it.
type Dispatcher struct {
	source WebhookSource
	client *http.Client
	logger zerolog.Logger
}

// NewDispatcher builds a dispatcher with the given per-delivery timeout.
func NewDispatcher(source WebhookSource, logger zerolog.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		source: source,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Notify sends a single completion notification to the owner's webhook. Owners
// without a registered webhook are skipped silently.
func (d *Dispatcher) Notify(ownerID string, video domain.Video) {
	hook, ok := d.source.GetWebhook(ownerID)
	if !ok {
		return
	}

	payload := Event{
		Event:        eventVideoCompleted,
		VideoID:      video.ID,
		Status:       string(video.Status),
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		CompletedAt:  video.CompletedAt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error().Err(err).Int64("video_id", video.ID).Msg("webhook: encode payload failed")
		return
	}

	resp, err := d.client.Post(hook.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		d.logger.Error().Err(err).Str("url", hook.URL).Int64("video_id", video.ID).Msg("webhook: delivery failed")
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.Error().Int("status", resp.StatusCode).Str("url", hook.URL).Int64("video_id", video.ID).Msg("webhook: endpoint rejected notification")
		return
	}
	d.logger.Info().Str("url", hook.URL).Int64("video_id", video.ID).Msg("webhook: notification sent")
}
