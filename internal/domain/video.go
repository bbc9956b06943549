package domain

import (
	"fmt"
	"strings"
	"time"
)

// VideoStatus enumerates video lifecycle states.
type VideoStatus string

const (
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusCompleted  VideoStatus = "completed"
)

// TopicCustom marks a request whose content comes entirely from the caller's
// prompt, which makes the prompt mandatory.
const TopicCustom = "Custom"

// GenerationParams carries caller-supplied generation settings. The service
// only inspects Prompt and Topic; the remaining fields are passed through to
// the result metadata untouched.
type GenerationParams struct {
	Prompt            string
	Topic             string
	Voice             string
	Theme             string
	Style             string
	Language          string
	Duration          string
	AspectRatio       string
	CustomInstruction string
}

// ApplyDefaults fills unset fields with the service defaults.
func (p *GenerationParams) ApplyDefaults() {
	if p.Topic == "" {
		p.Topic = "Random AI Story"
	}
	if p.Voice == "" {
		p.Voice = "Charlie"
	}
	if p.Theme == "" {
		p.Theme = "Hormozi_1"
	}
	if p.Style == "" {
		p.Style = "None"
	}
	if p.Language == "" {
		p.Language = "English"
	}
	if p.Duration == "" {
		p.Duration = "30-60"
	}
	if p.AspectRatio == "" {
		p.AspectRatio = "9:16"
	}
}

// Validate checks the one hard requirement on generation input.
func (p GenerationParams) Validate() error {
	if p.Topic == TopicCustom && strings.TrimSpace(p.Prompt) == "" {
		return fmt.Errorf("%w: prompt is required when topic is set to Custom", ErrInvalidInput)
	}
	return nil
}

// Video is one generation request and its lifecycle record. CompletedAt and
// the result URLs are non-nil exactly when Status is completed.
type Video struct {
	ID           int64
	OwnerID      string
	Params       GenerationParams
	Status       VideoStatus
	CreatedAt    time.Time
	CompletedAt  *time.Time
	VideoURL     *string
	ThumbnailURL *string
}

// Completed reports whether the video finished processing.
func (v Video) Completed() bool {
	return v.Status == VideoStatusCompleted
}

// ResultURLs groups the artifact locations filled in on completion.
type ResultURLs struct {
	Video     string
	Thumbnail string
}
