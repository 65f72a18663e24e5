package config

import (
	"fmt"
	"strings"
)

type ProviderConfig struct {
	ApiUrl      string  `env:"PROVIDER_BASE_URL" envDefault:"https://api.hyperbolic.xyz/v1"`
	Temperature float64 `env:"PROVIDER_TEMPERATURE" envDefault:"0.7"`
	Mock        bool    `env:"PROVIDER_MOCK"`
	MockFixture string  `env:"PROVIDER_MOCK_FIXTURE" envDefault:"mock/story.json"`
}

func GetProviderConfig() (*ProviderConfig, error) {
	var conf ProviderConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}
	conf.ApiUrl = strings.TrimRight(strings.TrimSpace(conf.ApiUrl), "/")
	if conf.ApiUrl == "" {
		return nil, fmt.Errorf("PROVIDER_BASE_URL must be set")
	}
	if conf.Temperature < 0 || conf.Temperature > 2 {
		return nil, fmt.Errorf("PROVIDER_TEMPERATURE must be between 0 and 2")
	}
	if conf.Mock && conf.MockFixture == "" {
		return nil, fmt.Errorf("PROVIDER_MOCK_FIXTURE must be set when PROVIDER_MOCK is enabled")
	}
	return &conf, nil
}
