package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/inbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/gin-gonic/gin"
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

type fakeOrchestrator struct {
	mu            sync.Mutex
	snapshot      domain.StorySnapshot
	submitErr     error
	audio         string
	narrateErr    error
	submitted     []inbound.SubmitStoryParams
	narrateParams []inbound.NarrateStoryParams
}

func (f *fakeOrchestrator) Submit(_ context.Context, params inbound.SubmitStoryParams) (domain.StorySnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, params)
	return f.snapshot, f.submitErr
}

func (f *fakeOrchestrator) Snapshot() domain.StorySnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeOrchestrator) Narrate(_ context.Context, params inbound.NarrateStoryParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.narrateParams = append(f.narrateParams, params)
	return f.audio, f.narrateErr
}

type fakeCredentialStore struct {
	mu         sync.Mutex
	credential string
	err        error
}

func (f *fakeCredentialStore) Get(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.credential, f.err
}

func (f *fakeCredentialStore) Save(_ context.Context, credential string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.credential = credential
	return nil
}

func (f *fakeCredentialStore) Delete(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.credential = ""
	return nil
}

func testStoryConfig() *config.StoryConfig {
	return &config.StoryConfig{
		DefaultTextModel:  domain.DefaultTextModel,
		DefaultImageModel: domain.DefaultImageModel,
		MaxTokens:         0,
	}
}

type testServer struct {
	router       *gin.Engine
	orchestrator *fakeOrchestrator
	credentials  *fakeCredentialStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orchestrator := &fakeOrchestrator{}
	credentials := &fakeCredentialStore{credential: "secret"}
	events := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "event: snapshot\ndata: {}\n\n")
	})

	router := gin.New()
	NewCatalogController(testStoryConfig()).RegisterRoutes(router)
	NewCredentialController(nopLogger{}, credentials).RegisterRoutes(router)
	NewStoryController(nopLogger{}, orchestrator, credentials, testStoryConfig(), events).RegisterRoutes(router)

	return &testServer{router: router, orchestrator: orchestrator, credentials: credentials}
}

func (s *testServer) do(method string, path string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
