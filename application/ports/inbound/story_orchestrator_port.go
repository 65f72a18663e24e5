package inbound

import (
	"context"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

type SubmitStoryParams struct {
	Topic      string
	Credential string
	TextModel  domain.TextModel
	ImageModel domain.ImageModel
	MaxTokens  int
}

type NarrateStoryParams struct {
	Credential string
	Options    domain.NarrationOptions
}

// StoryOrchestrator drives one live story: narrative generation, segmentation and
// section-by-section illustration. A new submission supersedes the live story.
type StoryOrchestrator interface {
	Submit(ctx context.Context, params SubmitStoryParams) (domain.StorySnapshot, error)
	Snapshot() domain.StorySnapshot
	Narrate(ctx context.Context, params NarrateStoryParams) (string, error)
}
