package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// mockCapacity bounds how many snapshots the in-memory archive keeps
const mockCapacity = 100

// MockRepository implements domain.DataRepository in memory for demo mode
type MockRepository struct {
	mu        sync.RWMutex
	snapshots []domain.TrafficSnapshot // oldest first
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveSnapshot keeps the snapshot, evicting the oldest beyond capacity
func (r *MockRepository) SaveSnapshot(ctx context.Context, snap domain.TrafficSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots = append(r.snapshots, snap)
	if len(r.snapshots) > mockCapacity {
		r.snapshots = r.snapshots[len(r.snapshots)-mockCapacity:]
	}
	return nil
}

// GetSnapshots returns kept snapshots within [from, to], newest first
func (r *MockRepository) GetSnapshots(ctx context.Context, from, to time.Time) ([]domain.TrafficSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []domain.TrafficSnapshot
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		s := r.snapshots[i]
		if s.RefreshedAt.Before(from) || s.RefreshedAt.After(to) {
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
