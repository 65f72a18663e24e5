package adapters

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/0xlimon/hyperbolic-story-creator/domain"
	"github.com/donovanhide/eventsource"
)

const (
	SnapshotChannel   = "story"
	SnapshotEventName = "snapshot"
	KeepaliveEvent    = "keepalive"
)

type snapshotEvent struct {
	id   string
	name string
	data string
}

func (e snapshotEvent) Id() string    { return e.id }
func (e snapshotEvent) Event() string { return e.name }
func (e snapshotEvent) Data() string  { return e.data }

// latestSnapshotRepository replays only the most recent snapshot, so a subscriber that joins
// mid-story starts from the current state.
type latestSnapshotRepository struct {
	mu     sync.RWMutex
	latest eventsource.Event
}

func (r *latestSnapshotRepository) Replay(_, _ string) chan eventsource.Event {
	r.mu.RLock()
	latest := r.latest
	r.mu.RUnlock()

	out := make(chan eventsource.Event, 1)
	if latest != nil {
		out <- latest
	}
	close(out)
	return out
}

func (r *latestSnapshotRepository) set(ev eventsource.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = ev
}

// SSESnapshotPublisher fans story snapshots out to Server-Sent Events subscribers.
type SSESnapshotPublisher struct {
	logger     outbound.LoggerPort
	server     *eventsource.Server
	repository *latestSnapshotRepository

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewSSESnapshotPublisher(logger outbound.LoggerPort) *SSESnapshotPublisher {
	server := eventsource.NewServer()
	server.ReplayAll = true
	repository := &latestSnapshotRepository{}
	server.Register(SnapshotChannel, repository)

	return &SSESnapshotPublisher{
		logger:     logger,
		server:     server,
		repository: repository,
		done:       make(chan struct{}),
	}
}

func (p *SSESnapshotPublisher) Publish(snapshot domain.StorySnapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		p.logger.Error(err, "Failed to marshal the story snapshot")
		return
	}

	ev := snapshotEvent{
		id:   fmt.Sprintf("%s:%d", snapshot.Token, snapshot.Version),
		name: SnapshotEventName,
		data: string(payload),
	}
	p.repository.set(ev)

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	p.server.Publish([]string{SnapshotChannel}, ev)
}

func (p *SSESnapshotPublisher) Handler() http.HandlerFunc {
	return p.server.Handler(SnapshotChannel)
}

// StartKeepalive sends a keepalive event at every interval until Close so idle connections
// are not dropped by proxies. It runs on its own goroutine so it never holds a worker that
// story generation needs.
func (p *SSESnapshotPublisher) StartKeepalive(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.done:
				return
			case t := <-ticker.C:
				p.mu.RLock()
				if !p.closed {
					p.server.Publish([]string{SnapshotChannel}, snapshotEvent{
						name: KeepaliveEvent,
						data: t.UTC().Format(time.RFC3339),
					})
				}
				p.mu.RUnlock()
			}
		}
	}()
}

func (p *SSESnapshotPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
	p.server.Close()
}
