package service

import (
	"fmt"

	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/internal/graph"
)

// SegmentSource supplies the segment state routes are computed against
type SegmentSource interface {
	Segments() []domain.SegmentState
}

// RoutePlanner computes main (distance) and best (congestion-aware) routes.
// It holds no state between calls; graphs are rebuilt on every query.
type RoutePlanner struct {
	network *domain.Network
	source  SegmentSource
}

// NewRoutePlanner creates a planner over the network
func NewRoutePlanner(network *domain.Network, source SegmentSource) *RoutePlanner {
	return &RoutePlanner{network: network, source: source}
}

// PlanRoute never fails: unknown or unreachable endpoints yield empty routes with zero ETA
func (p *RoutePlanner) PlanRoute(start, end domain.Location) domain.RouteResult {
	dist, cong := graph.Build(p.source.Segments())
	return route(dist, cong, start, end)
}

func route(dist graph.DistanceGraph, cong graph.CongestionGraph, start, end domain.Location) domain.RouteResult {
	res := domain.RouteResult{Status: domain.RouteStatusOK}

	res.MainRoute = graph.ShortestPath(dist, start, end)
	res.MainETA, res.MainDistanceKm = graph.PathTotals(dist, res.MainRoute)

	res.BestRoute = graph.ShortestPath(cong, start, end)
	res.BestETA, res.BestDistanceKm = graph.PathTotals(cong, res.BestRoute)

	return res
}

// NearestFacilityRoute picks the reachable facility with the lowest congestion-aware ETA.
// Ties keep the facility listed first.
func (p *RoutePlanner) NearestFacilityRoute(start domain.Location, facilities []domain.Facility) (domain.FacilityRoute, error) {
	if !p.network.HasLocation(start) {
		return domain.FacilityRoute{}, fmt.Errorf("%w: %q", ErrInvalidStart, start)
	}

	dist, cong := graph.Build(p.source.Segments())

	var (
		best  domain.FacilityRoute
		found bool
	)
	for _, f := range facilities {
		if !cong.Has(f.City) {
			continue
		}
		res := route(dist, cong, start, f.City)
		if len(res.BestRoute) == 0 {
			continue
		}
		if !found || res.BestETA < best.BestETA {
			best = domain.FacilityRoute{RouteResult: res, Facility: f}
			found = true
		}
	}

	if !found {
		return domain.FacilityRoute{}, fmt.Errorf("%w from %q", ErrNoReachableFacility, start)
	}
	return best, nil
}
