package mock_generator

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
)

var (
	errRejectedCredential = errors.New("mock provider rejected the credential")
	errMockIllustration   = errors.New("mock illustration failure")
)

// Runner replays a fixture through the three generator ports without network access.
type Runner struct {
	logger  outbound.LoggerPort
	fixture *Fixture

	mu    sync.Mutex
	calls int
}

func NewRunner(fixture *Fixture, logger outbound.LoggerPort) *Runner {
	return &Runner{
		logger:  logger,
		fixture: fixture,
	}
}

func (r *Runner) ScriptGenerator() outbound.StoryScriptGeneratorPort {
	return scriptGenerator{r}
}

func (r *Runner) ImageGenerator() outbound.ImageGeneratorPort {
	return imageGenerator{r}
}

func (r *Runner) AudioGenerator() outbound.AudioGeneratorPort {
	return audioGenerator{r}
}

func (r *Runner) checkCredential(kind domain.GenerationKind, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return domain.ErrCredentialRequired
	}
	if r.fixture.RejectedCredential != "" && credential == r.fixture.RejectedCredential {
		return domain.NewGenerationError(kind, http.StatusUnauthorized, errRejectedCredential)
	}
	return nil
}

func (r *Runner) nextIllustration() (MockIllustration, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	call := r.calls
	r.calls++
	if len(r.fixture.Illustrations) == 0 {
		return MockIllustration{}, call
	}
	return r.fixture.Illustrations[call%len(r.fixture.Illustrations)], call
}

type scriptGenerator struct{ r *Runner }

func (g scriptGenerator) Generate(ctx context.Context, req outbound.GenerateStoryScriptRequest) (string, error) {
	if err := g.r.checkCredential(domain.NarrativeGeneration, req.Credential); err != nil {
		return "", err
	}
	if err := wait(ctx, g.r.fixture.StoryDelay); err != nil {
		return "", domain.NewGenerationError(domain.NarrativeGeneration, 0, err)
	}
	g.r.logger.InfoWithFields("mock narrative served", map[string]interface{}{
		"topic": req.Topic,
		"model": req.Model,
	})
	return g.r.fixture.Story, nil
}

type imageGenerator struct{ r *Runner }

func (g imageGenerator) Generate(ctx context.Context, req outbound.GenerateIllustrationRequest) (string, error) {
	if err := g.r.checkCredential(domain.IllustrationGeneration, req.Credential); err != nil {
		return "", err
	}

	illustration, call := g.r.nextIllustration()
	if err := wait(ctx, illustration.Delay); err != nil {
		return "", domain.NewGenerationError(domain.IllustrationGeneration, 0, err)
	}
	if illustration.Fail || illustration.Image == "" {
		g.r.logger.DebugWithFields("mock illustration failed", map[string]interface{}{"call": call})
		return "", domain.NewGenerationError(domain.IllustrationGeneration, http.StatusInternalServerError, errMockIllustration)
	}
	return illustration.Image, nil
}

type audioGenerator struct{ r *Runner }

func (g audioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) (string, error) {
	if err := g.r.checkCredential(domain.NarrationGeneration, req.Credential); err != nil {
		return "", err
	}
	if err := wait(ctx, g.r.fixture.AudioDelay); err != nil {
		return "", domain.NewGenerationError(domain.NarrationGeneration, 0, err)
	}
	return g.r.fixture.Audio, nil
}

func wait(ctx context.Context, delayMs int) error {
	if delayMs <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(delayMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
