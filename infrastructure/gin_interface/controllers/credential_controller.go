package controllers

import (
	"net/http"
	"strings"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type CredentialController interface {
	GetCredential(c *gin.Context)
	SaveCredential(c *gin.Context)
	DeleteCredential(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type credentialController struct {
	logger          outbound.LoggerPort
	credentialStore outbound.CredentialStorePort
}

func NewCredentialController(logger outbound.LoggerPort, credentialStore outbound.CredentialStorePort) CredentialController {
	return &credentialController{
		logger:          logger,
		credentialStore: credentialStore,
	}
}

// GetCredential never echoes the stored value back.
func (cc *credentialController) GetCredential(c *gin.Context) {
	credential, err := cc.credentialStore.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CredentialStatusResponse{Configured: credential != ""})
}

func (cc *credentialController) SaveCredential(c *gin.Context) {
	var saveRequest dto.SaveCredentialRequest
	if err := c.ShouldBindJSON(&saveRequest); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	credential := strings.TrimSpace(saveRequest.Credential)
	if credential == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "credential must not be blank"})
		return
	}

	if err := cc.credentialStore.Save(c.Request.Context(), credential); err != nil {
		abortWithError(c, cc.logger, err)
		return
	}
	cc.logger.Info("provider credential saved")

	c.JSON(http.StatusOK, dto.CredentialStatusResponse{Configured: true})
}

func (cc *credentialController) DeleteCredential(c *gin.Context) {
	if err := cc.credentialStore.Delete(c.Request.Context()); err != nil {
		abortWithError(c, cc.logger, err)
		return
	}
	cc.logger.Info("provider credential removed")

	c.Status(http.StatusNoContent)
}

func (cc *credentialController) RegisterRoutes(g *gin.Engine) {
	g.GET("/credential", cc.GetCredential)
	g.PUT("/credential", cc.SaveCredential)
	g.DELETE("/credential", cc.DeleteCredential)
}
