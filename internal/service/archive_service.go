package service

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// ArchiveService persists refresh snapshots in the background and serves history
type ArchiveService struct {
	repo    DataRepository
	timeout time.Duration

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewArchiveService creates a new archive service
func NewArchiveService(repo DataRepository) *ArchiveService {
	return &ArchiveService{
		repo:    repo,
		timeout: 5 * time.Second,
	}
}

// Archive saves snap asynchronously. Failures are logged, never returned:
// the live feed does not depend on the archive.
func (s *ArchiveService) Archive(snap domain.TrafficSnapshot) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.repo.SaveSnapshot(ctx, snap); err != nil {
			log.WithError(err).WithField("snapshot_id", snap.ID).Error("Failed to archive traffic snapshot")
		}
	}()
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *ArchiveService) WaitBackground() {
	s.wgBg.Wait()
}

// History returns snapshots refreshed within the last hours
func (s *ArchiveService) History(ctx context.Context, hours int) ([]domain.TrafficSnapshot, error) {
	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)
	return s.repo.GetSnapshots(ctx, from, to)
}

// Health checks archive connectivity
func (s *ArchiveService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
