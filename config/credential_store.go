package config

import "fmt"

const (
	MemoryCredentialStore = "memory"
	SQLiteCredentialStore = "sqlite"
	DynamoCredentialStore = "dynamo"
)

type CredentialStoreConfig struct {
	Backend    string `env:"CREDENTIAL_STORE" envDefault:"memory"`
	SQLitePath string `env:"CREDENTIAL_SQLITE_PATH" envDefault:"data/credential.db"`
	TableName  string `env:"CREDENTIAL_DYNAMO_TABLE"`
	Key        string `env:"CREDENTIAL_KEY" envDefault:"hyperbolic_api_key"`
}

func GetCredentialStoreConfig() (*CredentialStoreConfig, error) {
	var conf CredentialStoreConfig
	if err := parseEnv(&conf); err != nil {
		return nil, err
	}
	if conf.Key == "" {
		return nil, fmt.Errorf("CREDENTIAL_KEY must be set")
	}

	switch conf.Backend {
	case MemoryCredentialStore:
	case SQLiteCredentialStore:
		if conf.SQLitePath == "" {
			return nil, fmt.Errorf("CREDENTIAL_SQLITE_PATH must be set")
		}
	case DynamoCredentialStore:
		if conf.TableName == "" {
			return nil, fmt.Errorf("CREDENTIAL_DYNAMO_TABLE must be set")
		}
	default:
		return nil, fmt.Errorf("unknown CREDENTIAL_STORE %q", conf.Backend)
	}
	return &conf, nil
}
