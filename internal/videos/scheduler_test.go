package videos

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"clipforge/internal/domain"
)

type channelNotifier struct {
	ch chan domain.Video
}

func (n *channelNotifier) Notify(ownerID string, video domain.Video) {
	n.ch <- video
}

func TestArmCompletesAndNotifies(t *testing.T) {
	store := NewStore()
	notifier := &channelNotifier{ch: make(chan domain.Video, 1)}
	sched := NewScheduler(store, notifier, zerolog.Nop(), "https://example.com/videos/", 0, 0)

	v := store.Insert("1", domain.GenerationParams{})
	sched.Arm(v)

	var got domain.Video
	select {
	case got = <-notifier.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion notification")
	}

	if got.ID != v.ID {
		t.Fatalf("notified video ID = %d, want %d", got.ID, v.ID)
	}
	if got.Status != domain.VideoStatusCompleted {
		t.Fatalf("notified status = %q, want completed", got.Status)
	}
	wantVideo := fmt.Sprintf("https://example.com/videos/%d.mp4", v.ID)
	wantThumb := fmt.Sprintf("https://example.com/videos/%d_thumb.jpg", v.ID)
	if got.VideoURL == nil || *got.VideoURL != wantVideo {
		t.Fatalf("video URL = %v, want %q", got.VideoURL, wantVideo)
	}
	if got.ThumbnailURL == nil || *got.ThumbnailURL != wantThumb {
		t.Fatalf("thumbnail URL = %v, want %q", got.ThumbnailURL, wantThumb)
	}

	stored, ok := store.Get(v.ID)
	if !ok || stored.Status != domain.VideoStatusCompleted || stored.CompletedAt == nil {
		t.Fatalf("store state after fire = %+v", stored)
	}
}

func TestDuplicateFireNotifiesOnce(t *testing.T) {
	store := NewStore()
	notifier := &channelNotifier{ch: make(chan domain.Video, 2)}
	sched := NewScheduler(store, notifier, zerolog.Nop(), "https://example.com/videos", 0, 0)

	v := store.Insert("1", domain.GenerationParams{})
	sched.Arm(v)
	sched.Arm(v)

	select {
	case <-notifier.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first notification")
	}
	select {
	case <-notifier.ch:
		t.Fatal("second fire must not notify again")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewSchedulerNormalizesWindow(t *testing.T) {
	sched := NewScheduler(NewStore(), &channelNotifier{ch: make(chan domain.Video, 1)}, zerolog.Nop(), "https://example.com/videos", time.Minute, time.Second)
	if sched.maxDelay != sched.minDelay {
		t.Fatalf("maxDelay = %s, want clamped to minDelay %s", sched.maxDelay, sched.minDelay)
	}

	sched = NewScheduler(NewStore(), &channelNotifier{ch: make(chan domain.Video, 1)}, zerolog.Nop(), "https://example.com/videos", -time.Second, time.Second)
	if sched.minDelay != 0 {
		t.Fatalf("minDelay = %s, want clamped to zero", sched.minDelay)
	}
}

func TestResultURLDerivation(t *testing.T) {
	sched := NewScheduler(NewStore(), &channelNotifier{ch: make(chan domain.Video, 1)}, zerolog.Nop(), "https://cdn.example/media", 0, 0)
	urls := sched.resultURLs(42)
	if urls.Video != "https://cdn.example/media/42.mp4" {
		t.Fatalf("video URL = %q", urls.Video)
	}
	if urls.Thumbnail != "https://cdn.example/media/42_thumb.jpg" {
		t.Fatalf("thumbnail URL = %q", urls.Thumbnail)
	}
}
