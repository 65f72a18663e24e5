package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/inbound"
	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/google/uuid"
)

const (
	DefaultSkipBaseDelay    = time.Second
	DefaultSkipDelayPerChar = 15 * time.Millisecond
)

// SkipDelay is how long the orchestrator waits after a failed illustration before moving on,
// so a reader has time to read the section that got no image.
type SkipDelay struct {
	Base    time.Duration
	PerChar time.Duration
}

func (d SkipDelay) For(section string) time.Duration {
	return d.Base + time.Duration(utf8.RuneCountInString(section))*d.PerChar
}

type storyOrchestrator struct {
	logger          outbound.LoggerPort
	workerPool      outbound.TaskDispatcher
	segmenter       inbound.SectionSegmenterPort
	scriptGenerator outbound.StoryScriptGeneratorPort
	imageGenerator  outbound.ImageGeneratorPort
	audioGenerator  outbound.AudioGeneratorPort
	publisher       outbound.SnapshotPublisherPort
	skipDelay       SkipDelay

	mu      sync.Mutex
	machine *domain.Machine
}

func NewStoryOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	segmenter inbound.SectionSegmenterPort, scriptGenerator outbound.StoryScriptGeneratorPort,
	imageGenerator outbound.ImageGeneratorPort, audioGenerator outbound.AudioGeneratorPort,
	publisher outbound.SnapshotPublisherPort, skipDelay SkipDelay) inbound.StoryOrchestrator {
	return &storyOrchestrator{
		logger:          logger,
		workerPool:      workerPool,
		segmenter:       segmenter,
		scriptGenerator: scriptGenerator,
		imageGenerator:  imageGenerator,
		audioGenerator:  audioGenerator,
		publisher:       publisher,
		skipDelay:       skipDelay,
		machine:         domain.NewMachine(),
	}
}

func (s *storyOrchestrator) Submit(ctx context.Context, params inbound.SubmitStoryParams) (domain.StorySnapshot, error) {
	if strings.TrimSpace(params.Credential) == "" {
		return s.Snapshot(), domain.ErrCredentialRequired
	}
	if strings.TrimSpace(params.Topic) == "" {
		return s.Snapshot(), domain.ErrEmptyTopic
	}

	token := uuid.NewString()
	if _, err := s.apply(domain.Submitted(token)); err != nil {
		s.logger.Error(err, "failed to start story generation")
		return s.Snapshot(), err
	}
	s.logger.InfoWithFields("story generation started", map[string]interface{}{
		"token":       token,
		"text_model":  params.TextModel,
		"image_model": params.ImageModel,
		"max_tokens":  params.MaxTokens,
	})

	text, err := s.scriptGenerator.Generate(ctx, outbound.GenerateStoryScriptRequest{
		Topic:      params.Topic,
		Credential: params.Credential,
		Model:      params.TextModel,
		MaxTokens:  params.MaxTokens,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to generate story narrative", map[string]interface{}{
			"token": token,
		})
		snapshot, applyErr := s.apply(domain.NarrativeFailed(token, err))
		if applyErr != nil {
			return snapshot, errors.Join(err, applyErr)
		}
		return snapshot, err
	}

	segments := s.segmenter.Segment(text)
	snapshot, err := s.apply(domain.NarrativeReady(token, segments))
	if err != nil {
		s.logger.WarnWithFields("narrative arrived for a superseded story", map[string]interface{}{
			"token": token,
		})
		return snapshot, err
	}
	s.logger.InfoWithFields("story segmented", map[string]interface{}{
		"token":    token,
		"title":    snapshot.Title,
		"sections": len(snapshot.Sections),
	})

	if snapshot.State != domain.StateIllustratingSection {
		return snapshot, nil
	}

	illustrationCtx := context.WithoutCancel(ctx)
	err = s.workerPool.Submit(func() {
		s.illustrate(illustrationCtx, token, params.Credential, params.ImageModel)
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to submit illustration task", map[string]interface{}{
			"token": token,
		})
		return snapshot, err
	}

	return snapshot, nil
}

func (s *storyOrchestrator) Snapshot() domain.StorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

func (s *storyOrchestrator) Narrate(ctx context.Context, params inbound.NarrateStoryParams) (string, error) {
	if strings.TrimSpace(params.Credential) == "" {
		return "", domain.ErrCredentialRequired
	}
	if err := params.Options.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	story := s.machine.Story()
	state := s.machine.State()
	text := ""
	if story != nil {
		text = story.FullText()
	}
	s.mu.Unlock()

	if story == nil {
		return "", domain.ErrNoStory
	}
	if state != domain.StateComplete {
		return "", domain.ErrStoryIncomplete
	}

	audio, err := s.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{
		Text:       text,
		Credential: params.Credential,
		Options:    params.Options,
	})
	if err != nil {
		s.logger.Error(err, "failed to generate narration")
		return "", err
	}

	return audio, nil
}

// illustrate requests one illustration at a time, in section order, until the story is
// complete or superseded. A superseded loop lets its in-flight request finish and then
// drops the result.
func (s *storyOrchestrator) illustrate(ctx context.Context, token string, credential string, model domain.ImageModel) {
	for {
		index, section, ok := s.current(token)
		if !ok {
			return
		}

		image, err := s.imageGenerator.Generate(ctx, outbound.GenerateIllustrationRequest{
			Scene:      section,
			Credential: credential,
			Model:      model,
		})
		if err == nil {
			if _, err := s.apply(domain.IllustrationSucceeded(token, index, image)); err != nil {
				s.logDiscarded(err, token, index)
				return
			}
			continue
		}

		s.logger.ErrorWithFields(err, "failed to generate illustration", map[string]interface{}{
			"token":   token,
			"section": index,
		})
		if _, err := s.apply(domain.IllustrationFailed(token, index, err)); err != nil {
			s.logDiscarded(err, token, index)
			return
		}

		if !sleepContext(ctx, s.skipDelay.For(section)) {
			return
		}

		if _, err := s.apply(domain.SectionSkipped(token, index)); err != nil {
			s.logDiscarded(err, token, index)
			return
		}
	}
}

func (s *storyOrchestrator) current(token string) (int, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine.Token() != token {
		return 0, "", false
	}
	return s.machine.Current()
}

// apply runs one transition and publishes the resulting snapshot. Publishing happens under
// the lock so subscribers observe snapshots in transition order.
func (s *storyOrchestrator) apply(ev domain.Event) (domain.StorySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.Apply(ev); err != nil {
		return s.machine.Snapshot(), err
	}

	snapshot := s.machine.Snapshot()
	s.publisher.Publish(snapshot)
	return snapshot, nil
}

func (s *storyOrchestrator) logDiscarded(err error, token string, index int) {
	s.logger.WarnWithFields("discarding illustration result", map[string]interface{}{
		"token":   token,
		"section": index,
		"reason":  err.Error(),
	})
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
