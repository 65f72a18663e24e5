package adapters

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]interface{}
}

// providerStub answers every request with the same status and body and records what it saw.
type providerStub struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []capturedRequest
}

func (p *providerStub) fetcher(t *testing.T) ContentFetcher {
	t.Helper()
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		p.requests = append(p.requests, capturedRequest{
			method: req.Method,
			path:   req.URL.Path,
			auth:   req.Header.Get("Authorization"),
			body:   body,
		})
		return response(p.status, p.body), nil
	})}
	return NewContentFetcher(testLogger(), client)
}

func (p *providerStub) only(t *testing.T) capturedRequest {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) != 1 {
		t.Fatalf("got %d provider requests, want 1", len(p.requests))
	}
	return p.requests[0]
}

func (p *providerStub) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func testLogger() *zerologWrapper {
	return newZerologWrapper(io.Discard, "disabled")
}

func testProviderConfig() *config.ProviderConfig {
	return &config.ProviderConfig{
		ApiUrl:      "https://provider.test/v1",
		Temperature: 0.7,
	}
}

func illustrationRequest(scene string) outbound.GenerateIllustrationRequest {
	return outbound.GenerateIllustrationRequest{Scene: scene, Credential: "k"}
}
