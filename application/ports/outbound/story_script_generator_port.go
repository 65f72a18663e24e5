package outbound

import (
	"context"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

// GenerateStoryScriptRequest asks for a complete narrative. MaxTokens of zero means unlimited.
type GenerateStoryScriptRequest struct {
	Topic      string
	Credential string
	Model      domain.TextModel
	MaxTokens  int
}

type StoryScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateStoryScriptRequest) (string, error)
}
