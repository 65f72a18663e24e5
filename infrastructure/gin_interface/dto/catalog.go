package dto

type ModelEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LanguageEntry struct {
	Code     string   `json:"code"`
	Speakers []string `json:"speakers"`
}

type ModelsResponse struct {
	TextModels        []ModelEntry    `json:"text_models"`
	ImageModels       []ModelEntry    `json:"image_models"`
	Languages         []LanguageEntry `json:"languages"`
	DefaultTextModel  string          `json:"default_text_model"`
	DefaultImageModel string          `json:"default_image_model"`
	DefaultLanguage   string          `json:"default_language"`
	DefaultSpeaker    string          `json:"default_speaker"`
}

type ErrorResponse struct {
	Error              string `json:"error"`
	CredentialRequired bool   `json:"credential_required,omitempty"`
}
