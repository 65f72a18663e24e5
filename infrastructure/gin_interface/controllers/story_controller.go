package controllers

import (
	"net/http"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/inbound"
	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/gin_interface/dto"
	"github.com/0xlimon/hyperbolic-story-creator/middleware"
	"github.com/gin-gonic/gin"
)

type StoryController interface {
	CreateStory(c *gin.Context)
	CurrentStory(c *gin.Context)
	NarrateStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger          outbound.LoggerPort
	orchestrator    inbound.StoryOrchestrator
	credentialStore outbound.CredentialStorePort
	storyConfig     *config.StoryConfig
	events          http.Handler
}

func NewStoryController(
	logger outbound.LoggerPort,
	orchestrator inbound.StoryOrchestrator,
	credentialStore outbound.CredentialStorePort,
	storyConfig *config.StoryConfig,
	events http.Handler,
) StoryController {
	return &storyController{
		logger:          logger,
		orchestrator:    orchestrator,
		credentialStore: credentialStore,
		storyConfig:     storyConfig,
		events:          events,
	}
}

func (s *storyController) CreateStory(c *gin.Context) {
	var createStoryRequest dto.CreateStoryRequest
	if err := c.ShouldBindJSON(&createStoryRequest); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	textModel := s.storyConfig.DefaultTextModel
	if createStoryRequest.TextModel != "" {
		parsed, err := domain.ParseTextModel(createStoryRequest.TextModel)
		if err != nil {
			abortWithError(c, s.logger, err)
			return
		}
		textModel = parsed
	}
	imageModel := s.storyConfig.DefaultImageModel
	if createStoryRequest.ImageModel != "" {
		parsed, err := domain.ParseImageModel(createStoryRequest.ImageModel)
		if err != nil {
			abortWithError(c, s.logger, err)
			return
		}
		imageModel = parsed
	}
	maxTokens := s.storyConfig.MaxTokens
	if createStoryRequest.MaxTokens != nil {
		maxTokens = *createStoryRequest.MaxTokens
	}

	credential, err := s.credentialStore.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	snapshot, err := s.orchestrator.Submit(c.Request.Context(), inbound.SubmitStoryParams{
		Topic:      createStoryRequest.Topic,
		Credential: credential,
		TextModel:  textModel,
		ImageModel: imageModel,
		MaxTokens:  maxTokens,
	})
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (s *storyController) CurrentStory(c *gin.Context) {
	c.JSON(http.StatusOK, s.orchestrator.Snapshot())
}

func (s *storyController) NarrateStory(c *gin.Context) {
	var narrationRequest dto.NarrationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&narrationRequest); err != nil {
			abortWithBadRequest(c, err)
			return
		}
	}

	credential, err := s.credentialStore.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	audio, err := s.orchestrator.Narrate(c.Request.Context(), inbound.NarrateStoryParams{
		Credential: credential,
		Options: domain.NarrationOptions{
			Language:    domain.Language(narrationRequest.Language),
			Speaker:     narrationRequest.Speaker,
			SDPRatio:    narrationRequest.SDPRatio,
			NoiseScale:  narrationRequest.NoiseScale,
			NoiseScaleW: narrationRequest.NoiseScaleW,
			Speed:       narrationRequest.Speed,
		}.WithDefaults(),
	})
	if err != nil {
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NarrationResponse{Audio: audio})
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/stories", s.CreateStory)
	g.GET("/stories/current", s.CurrentStory)
	g.POST("/stories/current/narration", s.NarrateStory)
	g.GET("/stories/events", middleware.SSEMiddleware(s.logger), gin.WrapH(s.events))
}
