package config

import (
	"fmt"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

type StoryConfig struct {
	TextModel            string        `env:"DEFAULT_TEXT_MODEL"`
	ImageModel           string        `env:"DEFAULT_IMAGE_MODEL"`
	MaxTokens            int           `env:"DEFAULT_MAX_TOKENS" envDefault:"0"`
	SectionWordThreshold int           `env:"SECTION_WORD_THRESHOLD" envDefault:"300"`
	MaxSections          int           `env:"MAX_SECTIONS" envDefault:"4"`
	SkipBaseDelay        time.Duration `env:"ILLUSTRATION_RETRY_BASE_DELAY" envDefault:"1s"`
	SkipDelayPerChar     time.Duration `env:"ILLUSTRATION_DELAY_PER_CHAR" envDefault:"15ms"`
	WorkerPoolSize       int           `env:"WORKER_POOL_SIZE" envDefault:"16"`

	DefaultTextModel  domain.TextModel
	DefaultImageModel domain.ImageModel
}

func GetStoryConfig() (*StoryConfig, error) {
	var conf StoryConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}

	textModel, err := domain.ParseTextModel(conf.TextModel)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TEXT_MODEL: %w", err)
	}
	imageModel, err := domain.ParseImageModel(conf.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_IMAGE_MODEL: %w", err)
	}
	conf.DefaultTextModel = textModel
	conf.DefaultImageModel = imageModel

	if conf.MaxTokens < 0 {
		return nil, fmt.Errorf("DEFAULT_MAX_TOKENS must not be negative")
	}
	if conf.SectionWordThreshold <= 0 {
		return nil, fmt.Errorf("SECTION_WORD_THRESHOLD must be positive")
	}
	if conf.MaxSections <= 0 {
		return nil, fmt.Errorf("MAX_SECTIONS must be positive")
	}
	if conf.SkipBaseDelay < 0 || conf.SkipDelayPerChar < 0 {
		return nil, fmt.Errorf("illustration skip delays must not be negative")
	}
	if conf.WorkerPoolSize <= 0 {
		return nil, fmt.Errorf("WORKER_POOL_SIZE must be positive")
	}
	return &conf, nil
}
