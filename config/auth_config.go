package config

type AuthorizerConfig struct {
	JwksURL string `env:"JWKS_URL"`
}

// NewAuthorizerConfig leaves authentication disabled when JWKS_URL is not set.
func NewAuthorizerConfig() (*AuthorizerConfig, error) {
	var conf AuthorizerConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *AuthorizerConfig) Enabled() bool {
	return c.JwksURL != ""
}
