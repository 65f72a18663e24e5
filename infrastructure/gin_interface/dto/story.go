package dto

type CreateStoryRequest struct {
	Topic      string `json:"topic" binding:"required"`
	TextModel  string `json:"text_model"`
	ImageModel string `json:"image_model"`
	MaxTokens  *int   `json:"max_tokens" binding:"omitempty,min=0"`
}

// NarrationRequest leaves unset voice settings to the provider defaults.
type NarrationRequest struct {
	Language    string   `json:"language"`
	Speaker     string   `json:"speaker"`
	SDPRatio    *float64 `json:"sdp_ratio" binding:"omitempty,min=0,max=1"`
	NoiseScale  *float64 `json:"noise_scale" binding:"omitempty,min=0,max=1"`
	NoiseScaleW *float64 `json:"noise_scale_w" binding:"omitempty,min=0,max=1"`
	Speed       *float64 `json:"speed" binding:"omitempty,gt=0,max=5"`
}

type NarrationResponse struct {
	Audio string `json:"audio"`
}
