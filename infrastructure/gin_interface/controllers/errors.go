package controllers

import (
	"errors"
	"net/http"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, logger outbound.LoggerPort, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields(err, "request failed", map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": status,
		})
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var genErr *domain.GenerationError
	switch {
	case errors.Is(err, domain.ErrCredentialRequired):
		return http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrCredentialRequired.Error(), CredentialRequired: true}
	case errors.As(err, &genErr):
		return http.StatusBadGateway, dto.ErrorResponse{Error: genErr.Message(), CredentialRequired: genErr.CredentialProblem()}
	case errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrUnknownModel),
		errors.Is(err, domain.ErrUnknownLanguage),
		errors.Is(err, domain.ErrUnknownSpeaker):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrNoStory),
		errors.Is(err, domain.ErrStoryIncomplete),
		errors.Is(err, domain.ErrStaleGeneration):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
	}
}

func abortWithBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}
