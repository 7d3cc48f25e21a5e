package mocks

import (
	"context"
	"sync"

	"solview/internal/core/domain"
)

// MockAssetSource is a mock implementation of the AssetSource interface for
// testing.
type MockAssetSource struct {
	mu     sync.Mutex
	assets []domain.Asset
	err    error

	// Calls records the (address, view) pair of every FetchAssets call.
	Calls []FetchCall
}

// FetchCall is one recorded FetchAssets invocation.
type FetchCall struct {
	Address string
	View    domain.ViewType
}

// NewMockAssetSource creates a mock source returning the given assets.
func NewMockAssetSource(assets []domain.Asset) *MockAssetSource {
	return &MockAssetSource{assets: assets}
}

// FailWith makes every subsequent FetchAssets call return err.
func (m *MockAssetSource) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FetchAssets returns the configured assets or error.
func (m *MockAssetSource) FetchAssets(ctx context.Context, address string, view domain.ViewType) ([]domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, FetchCall{Address: address, View: view})
	if m.err != nil {
		return nil, m.err
	}
	return m.assets, nil
}

// FetchCount returns how many times FetchAssets was called.
func (m *MockAssetSource) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
