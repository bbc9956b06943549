package videos

import (
	"fmt"

	"clipforge/internal/domain"
)

// Service is the orchestrating façade the HTTP layer calls. It owns the order
// of validation, quota, insert and arming; everything after Create returns
// happens out of band.
type Service struct {
	store     *Store
	policy    *Policy
	scheduler *Scheduler
}

// NewService wires the façade.
func NewService(store *Store, policy *Policy, scheduler *Scheduler) *Service {
	return &Service{store: store, policy: policy, scheduler: scheduler}
}

// Create validates the request, applies the creation quota, inserts the video
// and arms its completion timer. The returned record is still processing.
func (s *Service) Create(cred domain.Credential, params domain.GenerationParams) (domain.Video, error) {
	params.ApplyDefaults()
	if err := params.Validate(); err != nil {
		return domain.Video{}, err
	}
	if err := s.policy.AuthorizeCreate(cred.OwnerID, cred.Plan); err != nil {
		return domain.Video{}, err
	}
	v := s.store.Insert(cred.OwnerID, params)
	s.scheduler.Arm(v)
	return v, nil
}

// Status returns the video for its owner. Any credential whose owner differs
// from the video's owner gets ErrForbidden, regardless of key validity.
func (s *Service) Status(cred domain.Credential, id int64) (domain.Video, error) {
	v, ok := s.store.Get(id)
	if !ok {
		return domain.Video{}, fmt.Errorf("%w: video %d", domain.ErrNotFound, id)
	}
	if v.OwnerID != cred.OwnerID {
		return domain.Video{}, fmt.Errorf("%w: video %d belongs to another owner", domain.ErrForbidden, id)
	}
	return v, nil
}

// PublicMetadata returns the video for the reduced, non-sensitive projection
// served without an ownership check. The endpoint is deliberately public.
func (s *Service) PublicMetadata(id int64) (domain.Video, error) {
	v, ok := s.store.Get(id)
	if !ok {
		return domain.Video{}, fmt.Errorf("%w: video %d", domain.ErrNotFound, id)
	}
	return v, nil
}

// RegisterWebhook stores the owner's callback URL, replacing any previous
// registration.
func (s *Service) RegisterWebhook(cred domain.Credential, url string) (domain.Webhook, error) {
	return s.store.UpsertWebhook(cred.OwnerID, url)
}
