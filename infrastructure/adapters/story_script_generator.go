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

const chatCompletionsPath = "/chat/completions"

const narrativeSystemPrompt = `You are a master storyteller who writes long, richly detailed and complete stories with no length limit.

Every story you write has:
- a thorough opening that establishes the world, the setting and the characters
- several developed middle sections that build tension, conflict and relationships
- a conclusion that resolves every thread of the plot

Write with vivid sensory description, natural dialogue and deep characters.
Divide the story into as many substantial sections as it needs, each made of several full paragraphs.
Take all the space the story needs.`

const narrativeUserPrompt = `Write a long and richly detailed story about: %s

Formatting rules:
- Put the story title alone on the first line.
- Separate every paragraph and every section with a blank line.
- Write section titles as plain text.
- Do not use markdown or special characters such as *, _ or #.

Give the story a full beginning, an extensive middle and a satisfying ending, with developed characters, dialogue and description. Divide it into several sections, each with multiple detailed paragraphs.`

var errEmptyCompletion = errors.New("provider returned no story text")

type chatCompletionRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type storyScriptGenerator struct {
	ContentFetcher
	logger         outbound.LoggerPort
	providerConfig *config.ProviderConfig
}

func NewStoryScriptGenerator(contentFetcher ContentFetcher, providerConfig *config.ProviderConfig, logger outbound.LoggerPort) outbound.StoryScriptGeneratorPort {
	return &storyScriptGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		providerConfig: providerConfig,
	}
}

func (s *storyScriptGenerator) Generate(ctx context.Context, req outbound.GenerateStoryScriptRequest) (string, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return "", domain.ErrCredentialRequired
	}

	model := req.Model
	if model == "" {
		model = domain.DefaultTextModel
	}
	maxTokens := req.MaxTokens
	if maxTokens < 0 {
		maxTokens = 0
	}

	httpReq, err := newProviderRequest(ctx, s.logger, s.providerConfig.ApiUrl+chatCompletionsPath, req.Credential, chatCompletionRequest{
		Messages: []chatMessage{
			{Role: "system", Content: narrativeSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(narrativeUserPrompt, req.Topic)},
		},
		Model:       string(model),
		Temperature: s.providerConfig.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", domain.NewGenerationError(domain.NarrativeGeneration, 0, err)
	}

	rawRes, err := s.FetchContent(httpReq)
	if err != nil {
		s.logger.Error(err, "Failed to fetch the story narrative")
		return "", asGenerationError(domain.NarrativeGeneration, err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(rawRes, &completion); err != nil {
		s.logger.Error(err, "Failed to unmarshal the response")
		return "", domain.NewGenerationError(domain.NarrativeGeneration, 0, err)
	}
	if len(completion.Choices) == 0 {
		s.logger.Error(errEmptyCompletion, "Provider response has no choices")
		return "", domain.NewGenerationError(domain.NarrativeGeneration, 0, errEmptyCompletion)
	}

	return completion.Choices[0].Message.Content, nil
}
