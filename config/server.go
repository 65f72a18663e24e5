package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func GetServerConfig() (*ServerConfig, error) {
	var conf ServerConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}
	if conf.Port == "" {
		return nil, fmt.Errorf("PORT must be set")
	}
	return &conf, nil
}

func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}
