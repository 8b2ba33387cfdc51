package service

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/pkg/utils"
)

// RouteService exposes route queries, facilities and locations
type RouteService struct {
	network *domain.Network
	planner *RoutePlanner
}

// NewRouteService creates a new route service
func NewRouteService(network *domain.Network, planner *RoutePlanner) *RouteService {
	return &RouteService{network: network, planner: planner}
}

// PlanRoute returns main and best routes between two locations
func (s *RouteService) PlanRoute(ctx context.Context, req domain.RouteRequest) domain.RouteResult {
	res := s.planner.PlanRoute(req.Start, req.End)

	log.WithFields(log.Fields{
		"start":     req.Start,
		"end":       req.End,
		"main_hops": hops(res.MainRoute),
		"main_eta":  res.MainETA,
		"best_hops": hops(res.BestRoute),
		"best_eta":  res.BestETA,
	}).Info("Route planned")

	return res
}

// RouteToFacility routes from start to the facility reachable soonest under current congestion
func (s *RouteService) RouteToFacility(ctx context.Context, req domain.FacilityRouteRequest) (domain.FacilityRoute, error) {
	res, err := s.planner.NearestFacilityRoute(req.Start, s.network.Facilities)
	if err != nil {
		log.WithError(err).WithField("start", req.Start).Warn("Facility route not found")
		return domain.FacilityRoute{}, err
	}

	log.WithFields(log.Fields{
		"start":    req.Start,
		"facility": res.Facility.ID,
		"best_eta": res.BestETA,
	}).Info("Facility route planned")

	return res, nil
}

// ListFacilities returns the configured facilities
func (s *RouteService) ListFacilities(ctx context.Context) []domain.Facility {
	return s.network.Facilities
}

// ListLocations returns the configured locations
func (s *RouteService) ListLocations(ctx context.Context) []domain.LocationInfo {
	return s.network.Locations
}

// NearestLocation snaps a coordinate to the closest configured location
func (s *RouteService) NearestLocation(ctx context.Context, lat, lon float64) (domain.NearestLocation, error) {
	if !utils.ValidLatLon(lat, lon) {
		return domain.NearestLocation{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, lat, lon)
	}
	if len(s.network.Locations) == 0 {
		return domain.NearestLocation{}, fmt.Errorf("%w: no locations configured", ErrInvalidCoordinate)
	}

	var nearest domain.LocationInfo
	minDistance := math.Inf(1)
	for _, l := range s.network.Locations {
		d := utils.Haversine(lat, lon, l.Coords.Lat(), l.Coords.Lon())
		if d < minDistance {
			minDistance = d
			nearest = l
		}
	}

	return domain.NearestLocation{
		Location:   nearest,
		DistanceKm: utils.RoundTo(minDistance, 2),
	}, nil
}

func hops(route []domain.Location) int {
	if len(route) == 0 {
		return 0
	}
	return len(route) - 1
}
