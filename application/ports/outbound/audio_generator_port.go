package outbound

import (
	"context"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

type GenerateAudioRequest struct {
	Text       string
	Credential string
	Options    domain.NarrationOptions
}

type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) (string, error)
}
