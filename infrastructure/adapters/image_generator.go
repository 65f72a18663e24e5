package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

const (
	imageGenerationPath = "/image/generation"
	maxSceneRunes       = 200
	imageSize           = 1024
)

var errEmptyImage = errors.New("provider returned no image")

type imageGenerationRequest struct {
	ModelName string `json:"model_name"`
	Prompt    string `json:"prompt"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Backend   string `json:"backend"`
}

type imageGenerationResponse struct {
	Images []struct {
		Image string `json:"image"`
	} `json:"images"`
}

type imageGenerator struct {
	ContentFetcher
	logger         outbound.LoggerPort
	providerConfig *config.ProviderConfig
}

func NewImageGenerator(contentFetcher ContentFetcher, providerConfig *config.ProviderConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &imageGenerator{
		logger:         logger,
		ContentFetcher: contentFetcher,
		providerConfig: providerConfig,
	}
}

func (i *imageGenerator) Generate(ctx context.Context, req outbound.GenerateIllustrationRequest) (string, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return "", domain.ErrCredentialRequired
	}

	model := req.Model
	if model == "" {
		model = domain.DefaultImageModel
	}

	httpReq, err := newProviderRequest(ctx, i.logger, i.providerConfig.ApiUrl+imageGenerationPath, req.Credential, imageGenerationRequest{
		ModelName: string(model),
		Prompt:    illustrationPrompt(req.Scene),
		Height:    imageSize,
		Width:     imageSize,
		Backend:   "auto",
	})
	if err != nil {
		return "", domain.NewGenerationError(domain.IllustrationGeneration, 0, err)
	}

	rawRes, err := i.FetchContent(httpReq)
	if err != nil {
		i.logger.Error(err, "Failed to fetch the illustration")
		return "", asGenerationError(domain.IllustrationGeneration, err)
	}

	var imageRes imageGenerationResponse
	if err := json.Unmarshal(rawRes, &imageRes); err != nil {
		i.logger.Error(err, "Failed to unmarshal the response")
		return "", domain.NewGenerationError(domain.IllustrationGeneration, 0, err)
	}
	if len(imageRes.Images) == 0 || imageRes.Images[0].Image == "" {
		i.logger.Error(errEmptyImage, "Provider response has no image")
		return "", domain.NewGenerationError(domain.IllustrationGeneration, 0, errEmptyImage)
	}

	return imageRes.Images[0].Image, nil
}

func illustrationPrompt(scene string) string {
	return fmt.Sprintf("Create a detailed, artistic illustration of this scene: %s. "+
		"Make it visually striking and capture the mood and key elements of the scene.", truncateRunes(scene, maxSceneRunes))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
