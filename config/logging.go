package config

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY"`
}

func GetLogConfig() (*LogConfig, error) {
	var conf LogConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
