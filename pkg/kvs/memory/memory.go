// Package memory provides an in-memory blob store for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
)

type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ interfaces.BlobStore = &Memory{}

func New() *Memory {
	return &Memory{
		blobs: make(map[string][]byte),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}

	copied := make([]byte, len(blob))
	copy(copied, blob)
	return copied, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(blob))
	copy(copied, blob)
	m.blobs[key] = copied
	return nil
}

func (m *Memory) Close() error {
	return nil
}
