package domain

import (
	"fmt"
	"sort"
)

type TextModel string

type ImageModel string

type Language string

const (
	DefaultTextModel  TextModel  = "meta-llama/Meta-Llama-3-70B-Instruct"
	DefaultImageModel ImageModel = "SDXL1.0-base"
	DefaultLanguage   Language   = "EN"
	DefaultSpeaker    string     = "EN-US"
)

var TextModels = map[TextModel]string{
	"meta-llama/Meta-Llama-3-70B-Instruct": "Meta Llama 3 70B",
	"mistralai/Mixtral-8x7B-Instruct-v0.1": "Mixtral 8x7B",
	"deepseek-ai/DeepSeek-R1":              "DeepSeek R1",
	"deepseek-ai/DeepSeek-V3":              "DeepSeek V3",
	"Qwen/QwQ-32B":                         "Qwen QwQ 32B",
	"Qwen/Qwen2.5-72B-Instruct":            "Qwen 2.5 72B",
	"Qwen/QwQ-32B-Preview":                 "Qwen QwQ 32B Preview",
	"NousResearch/Hermes-3-Llama-3.1-70B":  "Hermes 3 Llama 70B",
}

var ImageModels = map[ImageModel]string{
	"SDXL1.0-base": "Stable Diffusion XL 1.0",
	"SD2":          "Stable Diffusion 2.0",
	"SD1.5":        "Stable Diffusion 1.5",
	"SDXL-turbo":   "SDXL Turbo",
}

// Speakers lists the narration voices available per language.
var Speakers = map[Language][]string{
	"EN": {"EN-US", "EN-BR", "EN-INDIA", "EN-AU"},
	"ES": {"ES"},
	"FR": {"FR"},
	"ZH": {"ZH"},
	"JP": {"JP"},
	"KR": {"KR"},
}

// ParseTextModel returns the default model for an empty id.
func ParseTextModel(id string) (TextModel, error) {
	if id == "" {
		return DefaultTextModel, nil
	}
	model := TextModel(id)
	if _, ok := TextModels[model]; !ok {
		return "", fmt.Errorf("%w: text model %q", ErrUnknownModel, id)
	}
	return model, nil
}

// ParseImageModel returns the default model for an empty id.
func ParseImageModel(id string) (ImageModel, error) {
	if id == "" {
		return DefaultImageModel, nil
	}
	model := ImageModel(id)
	if _, ok := ImageModels[model]; !ok {
		return "", fmt.Errorf("%w: image model %q", ErrUnknownModel, id)
	}
	return model, nil
}

// NarrationOptions are the voice settings sent with a narration request.
// Nil prosody fields are left to the provider defaults.
type NarrationOptions struct {
	Language    Language
	Speaker     string
	SDPRatio    *float64
	NoiseScale  *float64
	NoiseScaleW *float64
	Speed       *float64
}

func (o NarrationOptions) Validate() error {
	if o.Language == "" {
		if o.Speaker != "" && !knownSpeaker(o.Speaker) {
			return fmt.Errorf("%w: %q", ErrUnknownSpeaker, o.Speaker)
		}
		return nil
	}
	speakers, ok := Speakers[o.Language]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, o.Language)
	}
	if o.Speaker == "" {
		return nil
	}
	for _, s := range speakers {
		if s == o.Speaker {
			return nil
		}
	}
	return fmt.Errorf("%w: %q for language %s", ErrUnknownSpeaker, o.Speaker, o.Language)
}

// WithDefaults fills an omitted language and speaker: EN with EN-US when both are missing, the
// speaker's language when only the speaker is given, and the language's first speaker otherwise.
func (o NarrationOptions) WithDefaults() NarrationOptions {
	if o.Language == "" {
		if o.Speaker == "" {
			o.Language, o.Speaker = DefaultLanguage, DefaultSpeaker
			return o
		}
		for language, speakers := range Speakers {
			for _, s := range speakers {
				if s == o.Speaker {
					o.Language = language
					return o
				}
			}
		}
		return o
	}
	if speakers := Speakers[o.Language]; o.Speaker == "" && len(speakers) > 0 {
		o.Speaker = speakers[0]
	}
	return o
}

func knownSpeaker(speaker string) bool {
	for _, speakers := range Speakers {
		for _, s := range speakers {
			if s == speaker {
				return true
			}
		}
	}
	return false
}

func SortedLanguages() []Language {
	languages := make([]Language, 0, len(Speakers))
	for l := range Speakers {
		languages = append(languages, l)
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i] < languages[j] })
	return languages
}
