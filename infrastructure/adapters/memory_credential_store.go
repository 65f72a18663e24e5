package adapters

import (
	"context"
	"sync"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
)

type memoryCredentialStore struct {
	mu         sync.RWMutex
	credential string
}

func NewMemoryCredentialStore() outbound.CredentialStorePort {
	return &memoryCredentialStore{}
}

func (m *memoryCredentialStore) Get(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.credential, nil
}

func (m *memoryCredentialStore) Save(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *memoryCredentialStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}
