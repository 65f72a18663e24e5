package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/panjf2000/ants/v2"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakeScriptGenerator struct {
	mu       sync.Mutex
	texts    []string
	err      error
	requests []outbound.GenerateStoryScriptRequest
}

func (f *fakeScriptGenerator) Generate(_ context.Context, req outbound.GenerateStoryScriptRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	text := f.texts[0]
	if len(f.texts) > 1 {
		f.texts = f.texts[1:]
	}
	return text, nil
}

func (f *fakeScriptGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeImageGenerator struct {
	mu          sync.Mutex
	generate    func(req outbound.GenerateIllustrationRequest) (string, error)
	scenes      []string
	inFlight    int
	maxInFlight int
}

func (f *fakeImageGenerator) Generate(_ context.Context, req outbound.GenerateIllustrationRequest) (string, error) {
	f.mu.Lock()
	f.scenes = append(f.scenes, req.Scene)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.generate == nil {
		return "image:" + req.Scene, nil
	}
	return f.generate(req)
}

func (f *fakeImageGenerator) requestedScenes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.scenes...)
}

type fakeAudioGenerator struct {
	mu       sync.Mutex
	audio    string
	err      error
	requests []outbound.GenerateAudioRequest
}

func (f *fakeAudioGenerator) Generate(_ context.Context, req outbound.GenerateAudioRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.audio, f.err
}

type recordingPublisher struct {
	mu        sync.Mutex
	snapshots []domain.StorySnapshot
}

func (p *recordingPublisher) Publish(snapshot domain.StorySnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, snapshot)
}

func (p *recordingPublisher) published() []domain.StorySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.StorySnapshot(nil), p.snapshots...)
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(pool.Release)
	return pool
}

func waitForSnapshot(t *testing.T, get func() domain.StorySnapshot, cond func(domain.StorySnapshot) bool) domain.StorySnapshot {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		snapshot := get()
		if cond(snapshot) {
			return snapshot
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for snapshot, last: %+v", snapshot)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
