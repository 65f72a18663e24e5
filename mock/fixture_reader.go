package mock_generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
)

var errEmptyFixture = errors.New("mock fixture has no story text")

type FixtureReader interface {
	Read(fileName string) (*Fixture, error)
}

type fileFixtureReader struct {
	logger outbound.LoggerPort
}

func NewFileFixtureReader(logger outbound.LoggerPort) FixtureReader {
	return &fileFixtureReader{
		logger: logger,
	}
}

func (f *fileFixtureReader) Read(fileName string) (*Fixture, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var fixture Fixture
	if err := json.NewDecoder(file).Decode(&fixture); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	if fixture.Story == "" {
		return nil, fmt.Errorf("%s: %w", fileName, errEmptyFixture)
	}

	return &fixture, nil
}
