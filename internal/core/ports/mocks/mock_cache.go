package mocks

import (
	"sync"

	"solview/internal/core/domain"
)

// MockGalleryCache is an in-memory mock implementation of the GalleryCache
// interface for testing.
type MockGalleryCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.ArtistGroup

	// Disabled makes every Get a miss while still recording Sets.
	Disabled bool
}

// NewMockGalleryCache creates an empty mock cache.
func NewMockGalleryCache() *MockGalleryCache {
	return &MockGalleryCache{
		entries: make(map[string][]domain.ArtistGroup),
	}
}

// Get returns the stored groups for a key.
func (m *MockGalleryCache) Get(key string) ([]domain.ArtistGroup, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Disabled {
		return nil, false
	}
	groups, ok := m.entries[key]
	return groups, ok
}

// Set stores groups under a key.
func (m *MockGalleryCache) Set(key string, groups []domain.ArtistGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = groups
	return nil
}

// Purge drops all entries.
func (m *MockGalleryCache) Purge() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.entries)
	m.entries = make(map[string][]domain.ArtistGroup)
	return n, nil
}

// Len returns the number of stored entries.
func (m *MockGalleryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
