package config

import (
	"testing"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

func TestGetProviderConfig_Defaults(t *testing.T) {
	conf, err := GetProviderConfig()
	if err != nil {
		t.Fatalf("GetProviderConfig() error = %v", err)
	}
	if conf.ApiUrl != "https://api.hyperbolic.xyz/v1" || conf.Temperature != 0.7 || conf.Mock {
		t.Fatalf("conf = %+v", conf)
	}
}

func TestGetProviderConfig_Overrides(t *testing.T) {
	t.Setenv("PROVIDER_BASE_URL", " http://localhost:9000/v1/ ")
	t.Setenv("PROVIDER_TEMPERATURE", "1.1")
	t.Setenv("PROVIDER_MOCK", "true")

	conf, err := GetProviderConfig()
	if err != nil {
		t.Fatalf("GetProviderConfig() error = %v", err)
	}
	if conf.ApiUrl != "http://localhost:9000/v1" || conf.Temperature != 1.1 || !conf.Mock {
		t.Fatalf("conf = %+v", conf)
	}
}

func TestGetProviderConfig_Invalid(t *testing.T) {
	t.Setenv("PROVIDER_TEMPERATURE", "hot")
	if _, err := GetProviderConfig(); err == nil {
		t.Fatal("unparsable temperature should fail")
	}

	t.Setenv("PROVIDER_TEMPERATURE", "3")
	if _, err := GetProviderConfig(); err == nil {
		t.Fatal("out of range temperature should fail")
	}
}

func TestGetStoryConfig_Defaults(t *testing.T) {
	conf, err := GetStoryConfig()
	if err != nil {
		t.Fatalf("GetStoryConfig() error = %v", err)
	}
	if conf.DefaultTextModel != domain.DefaultTextModel || conf.DefaultImageModel != domain.DefaultImageModel {
		t.Fatalf("models = %q %q", conf.DefaultTextModel, conf.DefaultImageModel)
	}
	if conf.SectionWordThreshold != 300 || conf.MaxSections != 4 || conf.MaxTokens != 0 {
		t.Fatalf("conf = %+v", conf)
	}
	if conf.SkipBaseDelay != time.Second || conf.SkipDelayPerChar != 15*time.Millisecond {
		t.Fatalf("delays = %v %v", conf.SkipBaseDelay, conf.SkipDelayPerChar)
	}
}

func TestGetStoryConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown text model", key: "DEFAULT_TEXT_MODEL", value: "gpt-nothing"},
		{name: "unknown image model", key: "DEFAULT_IMAGE_MODEL", value: "paint"},
		{name: "negative max tokens", key: "DEFAULT_MAX_TOKENS", value: "-5"},
		{name: "zero threshold", key: "SECTION_WORD_THRESHOLD", value: "0"},
		{name: "zero sections", key: "MAX_SECTIONS", value: "0"},
		{name: "bad duration", key: "ILLUSTRATION_RETRY_BASE_DELAY", value: "soon"},
		{name: "zero pool", key: "WORKER_POOL_SIZE", value: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := GetStoryConfig(); err == nil {
				t.Fatalf("%s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestGetCredentialStoreConfig(t *testing.T) {
	conf, err := GetCredentialStoreConfig()
	if err != nil || conf.Backend != MemoryCredentialStore {
		t.Fatalf("default = %+v, %v", conf, err)
	}

	t.Setenv("CREDENTIAL_STORE", DynamoCredentialStore)
	if _, err := GetCredentialStoreConfig(); err == nil {
		t.Fatal("dynamo without a table should fail")
	}
	t.Setenv("CREDENTIAL_DYNAMO_TABLE", "credentials")
	if _, err := GetCredentialStoreConfig(); err != nil {
		t.Fatalf("dynamo with table error = %v", err)
	}

	t.Setenv("CREDENTIAL_STORE", "redis")
	if _, err := GetCredentialStoreConfig(); err == nil {
		t.Fatal("unknown backend should fail")
	}
}

func TestAuthorizerConfig_Enabled(t *testing.T) {
	conf, err := NewAuthorizerConfig()
	if err != nil || conf.Enabled() {
		t.Fatalf("auth should be disabled by default: %+v, %v", conf, err)
	}

	t.Setenv("JWKS_URL", "https://issuer.test/.well-known/jwks.json")
	conf, err = NewAuthorizerConfig()
	if err != nil || !conf.Enabled() {
		t.Fatalf("auth should be enabled: %+v, %v", conf, err)
	}
}

func TestGetServerConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	conf, err := GetServerConfig()
	if err != nil {
		t.Fatalf("GetServerConfig() error = %v", err)
	}
	if conf.Addr() != ":9090" || conf.ShutdownTimeout != 10*time.Second {
		t.Fatalf("conf = %+v", conf)
	}
}
