package controllers

import (
	"net/http"
	"sort"

	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type CatalogController interface {
	Health(c *gin.Context)
	Models(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type catalogController struct {
	models dto.ModelsResponse
}

func NewCatalogController(storyConfig *config.StoryConfig) CatalogController {
	return &catalogController{models: buildModelsResponse(storyConfig)}
}

func (cc *catalogController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (cc *catalogController) Models(c *gin.Context) {
	c.JSON(http.StatusOK, cc.models)
}

func (cc *catalogController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", cc.Health)
	g.GET("/models", cc.Models)
}

func buildModelsResponse(storyConfig *config.StoryConfig) dto.ModelsResponse {
	textModels := make([]dto.ModelEntry, 0, len(domain.TextModels))
	for id, name := range domain.TextModels {
		textModels = append(textModels, dto.ModelEntry{ID: string(id), Name: name})
	}
	imageModels := make([]dto.ModelEntry, 0, len(domain.ImageModels))
	for id, name := range domain.ImageModels {
		imageModels = append(imageModels, dto.ModelEntry{ID: string(id), Name: name})
	}
	sortEntries(textModels)
	sortEntries(imageModels)

	languages := make([]dto.LanguageEntry, 0, len(domain.Speakers))
	for _, language := range domain.SortedLanguages() {
		languages = append(languages, dto.LanguageEntry{
			Code:     string(language),
			Speakers: append([]string(nil), domain.Speakers[language]...),
		})
	}

	return dto.ModelsResponse{
		TextModels:        textModels,
		ImageModels:       imageModels,
		Languages:         languages,
		DefaultTextModel:  string(storyConfig.DefaultTextModel),
		DefaultImageModel: string(storyConfig.DefaultImageModel),
		DefaultLanguage:   string(domain.DefaultLanguage),
		DefaultSpeaker:    domain.DefaultSpeaker,
	}
}

func sortEntries(entries []dto.ModelEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
