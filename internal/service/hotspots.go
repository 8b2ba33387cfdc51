package service

import (
	"fmt"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// DeriveHotspots marks the terminal coordinate of every segment at or above the
// threshold, in segment order, followed by the fixed points of interest.
func DeriveHotspots(states []domain.SegmentState, pois []domain.Hotspot, threshold int) []domain.Hotspot {
	hotspots := make([]domain.Hotspot, 0, len(states)+len(pois))
	for _, s := range states {
		if s.Congestion < threshold {
			continue
		}
		hotspots = append(hotspots, domain.Hotspot{
			ID:         fmt.Sprintf("hs-%d", s.ID),
			Name:       s.Name,
			Coords:     s.Coords[1],
			Congestion: s.Congestion,
			ETAMin:     s.ETAMin,
		})
	}
	return append(hotspots, pois...)
}
