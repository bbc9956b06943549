package videos

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"clipforge/internal/domain"
)

// Notifier delivers a completion event to the video's owner. Implementations
// must not block completion on delivery outcome.
type Notifier interface {
	Notify(ownerID string, video domain.Video)
}

// Scheduler defers each new video's completion by a randomized delay and
// applies the completion transition when the timer fires. Timers live only in
// process memory: a restart leaves armed videos processing forever, and there
// is no cancellation once a video is armed.
type Scheduler struct {
	store    *Store
	notifier Notifier
	logger   zerolog.Logger
	baseURL  string
	minDelay time.Duration
	maxDelay time.Duration
}

// NewScheduler builds a scheduler completing videos after a delay drawn
// uniformly from [minDelay, maxDelay]. Result URLs are derived from baseURL.
func NewScheduler(store *Store, notifier Notifier, logger zerolog.Logger, baseURL string, minDelay, maxDelay time.Duration) *Scheduler {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		logger:   logger,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Arm schedules exactly one completion event for the video. The deferred work
// runs on its own goroutine, fully decoupled from the caller.
func (s *Scheduler) Arm(v domain.Video) {
	delay := s.minDelay
	if span := s.maxDelay - s.minDelay; span > 0 {
		delay += rand.N(span)
	}
	time.AfterFunc(delay, func() { s.fire(v.ID, v.OwnerID) })
	s.logger.Debug().Int64("video_id", v.ID).Dur("delay", delay).Msg("scheduler: completion armed")
}

func (s *Scheduler) fire(id int64, ownerID string) {
	updated, ok := s.store.Complete(id, s.resultURLs(id))
	if !ok {
		s.logger.Error().Int64("video_id", id).Msg("scheduler: video missing or already completed")
		return
	}
	s.logger.Info().Int64("video_id", id).Msg("scheduler: video processing completed")
	s.notifier.Notify(ownerID, updated)
}

// resultURLs derives the artifact locations from the video ID.
func (s *Scheduler) resultURLs(id int64) domain.ResultURLs {
	return domain.ResultURLs{
		Video:     fmt.Sprintf("%s/%d.mp4", s.baseURL, id),
		Thumbnail: fmt.Sprintf("%s/%d_thumb.jpg", s.baseURL, id),
	}
}
