package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

const audioGenerationPath = "/audio/generation"

var errEmptyAudio = errors.New("provider returned no audio")

type audioGenerationRequest struct {
	Text        string   `json:"text"`
	Language    string   `json:"language,omitempty"`
	Speaker     string   `json:"speaker,omitempty"`
	SDPRatio    *float64 `json:"sdp_ratio,omitempty"`
	NoiseScale  *float64 `json:"noise_scale,omitempty"`
	NoiseScaleW *float64 `json:"noise_scale_w,omitempty"`
	Speed       *float64 `json:"speed,omitempty"`
}

type audioGenerationResponse struct {
	Audio string `json:"audio"`
}

type audioGenerator struct {
	ContentFetcher
	logger         outbound.LoggerPort
	providerConfig *config.ProviderConfig
}

func NewAudioGenerator(contentFetcher ContentFetcher, providerConfig *config.ProviderConfig, logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &audioGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		providerConfig: providerConfig,
	}
}

func (a *audioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) (string, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return "", domain.ErrCredentialRequired
	}

	httpReq, err := newProviderRequest(ctx, a.logger, a.providerConfig.ApiUrl+audioGenerationPath, req.Credential, audioGenerationRequest{
		Text:        req.Text,
		Language:    string(req.Options.Language),
		Speaker:     req.Options.Speaker,
		SDPRatio:    req.Options.SDPRatio,
		NoiseScale:  req.Options.NoiseScale,
		NoiseScaleW: req.Options.NoiseScaleW,
		Speed:       req.Options.Speed,
	})
	if err != nil {
		return "", domain.NewGenerationError(domain.NarrationGeneration, 0, err)
	}

	rawRes, err := a.FetchContent(httpReq)
	if err != nil {
		a.logger.Error(err, "Failed to fetch the narration")
		return "", asGenerationError(domain.NarrationGeneration, err)
	}

	var audioRes audioGenerationResponse
	if err := json.Unmarshal(rawRes, &audioRes); err != nil {
		a.logger.Error(err, "Failed to unmarshal the response")
		return "", domain.NewGenerationError(domain.NarrationGeneration, 0, err)
	}
	if audioRes.Audio == "" {
		a.logger.Error(errEmptyAudio, "Provider response has no audio")
		return "", domain.NewGenerationError(domain.NarrationGeneration, 0, errEmptyAudio)
	}

	return audioRes.Audio, nil
}
