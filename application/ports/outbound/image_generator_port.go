package outbound

import (
	"context"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

type GenerateIllustrationRequest struct {
	Scene      string
	Credential string
	Model      domain.ImageModel
}

// ImageGeneratorPort returns the illustration as an encoded image payload.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, req GenerateIllustrationRequest) (string, error)
}
