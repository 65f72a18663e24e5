package dto

type SaveCredentialRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}
