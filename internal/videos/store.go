package videos

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"

	"clipforge/internal/domain"
)

// maxVideoID bounds generated identifiers to twelve decimal digits.
const maxVideoID = 1_000_000_000_000

// Store is the authoritative in-memory collection of videos and per-owner
// webhooks. All state lives behind a single mutex and is lost on restart.
// Records are handed out as copies so callers can never mutate stored state
// directly.
type Store struct {
	mu       sync.Mutex
	videos   map[int64]*domain.Video
	webhooks map[string]domain.Webhook
	now      func() time.Time
	randID   func() int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		videos:   make(map[int64]*domain.Video),
		webhooks: make(map[string]domain.Webhook),
		now:      time.Now,
		randID:   func() int64 { return rand.Int64N(maxVideoID) },
	}
}

// Insert creates a new processing video for the owner and returns a copy of
// the stored record. IDs are drawn at random and re-drawn under the mutex
// until unused, so no two videos ever share an ID.
func (s *Store) Insert(ownerID string, params domain.GenerationParams) domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.randID()
	for {
		if _, exists := s.videos[id]; !exists {
			break
		}
		id = s.randID()
	}

	v := &domain.Video{
		ID:        id,
		OwnerID:   ownerID,
		Params:    params,
		Status:    domain.VideoStatusProcessing,
		CreatedAt: s.now().UTC(),
	}
	s.videos[id] = v
	return *v
}

// Get returns a copy of the video with the given ID.
func (s *Store) Get(id int64) (domain.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return domain.Video{}, false
	}
	return *v, true
}

// CountByOwner returns the number of videos the owner has created, regardless
// of status.
func (s *Store) CountByOwner(ownerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, v := range s.videos {
		if v.OwnerID == ownerID {
			count++
		}
	}
	return count
}

// ListByOwner returns copies of all videos created by the owner, in no
// particular order.
func (s *Store) ListByOwner(ownerID string) []domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Video
	for _, v := range s.videos {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	return out
}

// Complete transitions the video to completed, stamping CompletedAt and the
// result URLs exactly once. It reports false, without touching the record,
// when the video is unknown or already completed, so a duplicate call can
// never double-fire completion side effects.
func (s *Store) Complete(id int64, urls domain.ResultURLs) (domain.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.Status == domain.VideoStatusCompleted {
		return domain.Video{}, false
	}
	completedAt := s.now().UTC()
	v.Status = domain.VideoStatusCompleted
	v.CompletedAt = &completedAt
	videoURL := urls.Video
	thumbURL := urls.Thumbnail
	v.VideoURL = &videoURL
	v.ThumbnailURL = &thumbURL
	return *v, true
}

// UpsertWebhook validates the callback URL and stores it for the owner,
// replacing any previous registration (last write wins).
func (s *Store) UpsertWebhook(ownerID, rawURL string) (domain.Webhook, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return domain.Webhook{}, fmt.Errorf("%w: webhook URL is required", domain.ErrInvalidInput)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return domain.Webhook{}, fmt.Errorf("%w: invalid URL format", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	hook := domain.Webhook{OwnerID: ownerID, URL: rawURL}
	s.webhooks[ownerID] = hook
	return hook, nil
}

// GetWebhook returns the owner's registered webhook, if any.
func (s *Store) GetWebhook(ownerID string) (domain.Webhook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hook, ok := s.webhooks[ownerID]
	return hook, ok
}
