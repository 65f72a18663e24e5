package mock_generator

import (
	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
)

// Init loads the configured fixture and returns a runner serving it.
func Init(providerConfig *config.ProviderConfig, logger outbound.LoggerPort) (*Runner, error) {
	fixture, err := NewFileFixtureReader(logger).Read(providerConfig.MockFixture)
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("mock provider enabled", map[string]interface{}{
		"fixture":       providerConfig.MockFixture,
		"illustrations": len(fixture.Illustrations),
	})
	return NewRunner(fixture, logger), nil
}
