package domain

import (
	"context"
	"time"
)

// DataRepository defines the interface for archiving traffic snapshots.
// The archive is write-mostly history; live state is never restored from it.
type DataRepository interface {
	// SaveSnapshot persists one refresh of segment state
	SaveSnapshot(ctx context.Context, snap TrafficSnapshot) error

	// GetSnapshots retrieves snapshots refreshed within [from, to], newest first
	GetSnapshots(ctx context.Context, from, to time.Time) ([]TrafficSnapshot, error)

	// Health checks archive connectivity
	Health(ctx context.Context) error
}
