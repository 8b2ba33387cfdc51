package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/Adityakr425/Swiftwy/pkg/utils"
)

// TrafficParams are the static tuning values of the traffic simulation
type TrafficParams struct {
	MediumCongestion int // hotspot threshold (percent)
	HighCongestion   int // "heavy" threshold (percent)
	MinCongestion    int // lower bound of sampled congestion
	MaxCongestion    int // upper bound of sampled congestion
	MinSpeedKmph     float64
	DefaultSegmentKm float64
	DefaultSpeedKmph float64
	RefreshWindow    time.Duration
}

// DefaultTrafficParams returns the production tuning values
func DefaultTrafficParams() TrafficParams {
	return TrafficParams{
		MediumCongestion: 40,
		HighCongestion:   70,
		MinCongestion:    10,
		MaxCongestion:    85,
		MinSpeedKmph:     5.0,
		DefaultSegmentKm: 30.0,
		DefaultSpeedKmph: 40.0,
		RefreshWindow:    15 * time.Minute,
	}
}

// Network is the fixed road network: locations, segments, points of interest and facilities
type Network struct {
	Locations  []LocationInfo
	Segments   []Segment
	POIs       []Hotspot
	Facilities []Facility
	Params     TrafficParams
}

// DistanceOr returns the configured length, falling back to the default segment length
func (s Segment) DistanceOr(fallback float64) float64 {
	if s.DistanceKm <= 0 {
		return fallback
	}
	return s.DistanceKm
}

// SpeedOr returns the base speed, falling back to the given default
func (s Segment) SpeedOr(fallback float64) float64 {
	if s.BaseSpeedKmph <= 0 {
		return fallback
	}
	return s.BaseSpeedKmph
}

// Coordinate looks up where a location is
func (n *Network) Coordinate(loc Location) (Coordinate, bool) {
	for _, l := range n.Locations {
		if l.Name == loc {
			return l.Coords, true
		}
	}
	return Coordinate{}, false
}

// HasLocation reports whether loc is one of the configured locations
func (n *Network) HasLocation(loc Location) bool {
	_, ok := n.Coordinate(loc)
	return ok
}

// Validate checks the static configuration. Any error here is a startup failure.
func (n *Network) Validate() error {
	var errs []error
	p := n.Params

	if len(n.Segments) == 0 {
		errs = append(errs, errors.New("network: no segments configured"))
	}
	if p.MinCongestion < 0 || p.MaxCongestion > 100 || p.MinCongestion > p.MaxCongestion {
		errs = append(errs, fmt.Errorf("network: invalid congestion range [%d,%d]", p.MinCongestion, p.MaxCongestion))
	}
	if p.MediumCongestion > p.HighCongestion {
		errs = append(errs, fmt.Errorf("network: medium threshold %d above high threshold %d", p.MediumCongestion, p.HighCongestion))
	}
	if p.MinSpeedKmph <= 0 {
		errs = append(errs, fmt.Errorf("network: minimum speed must be positive, got %v", p.MinSpeedKmph))
	}
	if p.DefaultSegmentKm <= 0 || p.DefaultSpeedKmph <= 0 {
		errs = append(errs, errors.New("network: default segment distance and speed must be positive"))
	}
	if p.RefreshWindow <= 0 {
		errs = append(errs, fmt.Errorf("network: refresh window must be positive, got %s", p.RefreshWindow))
	}

	seenLoc := make(map[Location]bool, len(n.Locations))
	for _, l := range n.Locations {
		if l.Name == "" {
			errs = append(errs, errors.New("network: location with empty name"))
			continue
		}
		if seenLoc[l.Name] {
			errs = append(errs, fmt.Errorf("network: duplicate location %q", l.Name))
		}
		seenLoc[l.Name] = true
		if !utils.ValidLatLon(l.Coords.Lat(), l.Coords.Lon()) {
			errs = append(errs, fmt.Errorf("network: location %q has invalid coordinates %v", l.Name, l.Coords))
		}
	}

	seenSeg := make(map[int]bool, len(n.Segments))
	for _, s := range n.Segments {
		if seenSeg[s.ID] {
			errs = append(errs, fmt.Errorf("network: duplicate segment id %d", s.ID))
		}
		seenSeg[s.ID] = true

		if !seenLoc[s.Start] || !seenLoc[s.End] {
			errs = append(errs, fmt.Errorf("network: segment %d references unknown location (%q, %q)", s.ID, s.Start, s.End))
			continue
		}
		if s.Start == s.End {
			errs = append(errs, fmt.Errorf("network: segment %d is a self-loop on %q", s.ID, s.Start))
		}
		if s.DistanceKm < 0 || s.BaseSpeedKmph < 0 {
			errs = append(errs, fmt.Errorf("network: segment %d has negative distance or speed", s.ID))
		}

		// A road cannot be meaningfully shorter than the straight line between its ends.
		if s.DistanceKm > 0 {
			a, _ := n.Coordinate(s.Start)
			b, _ := n.Coordinate(s.End)
			straight := utils.Haversine(a.Lat(), a.Lon(), b.Lat(), b.Lon())
			if s.DistanceKm < 0.9*straight {
				errs = append(errs, fmt.Errorf("network: segment %d is %.1f km but its endpoints are %.1f km apart", s.ID, s.DistanceKm, straight))
			}
		}
	}

	for _, f := range n.Facilities {
		if !seenLoc[f.City] {
			errs = append(errs, fmt.Errorf("network: facility %q is in unknown city %q", f.ID, f.City))
		}
	}

	return errors.Join(errs...)
}

// DefaultNetwork returns the Uttarakhand network served in production
func DefaultNetwork() *Network {
	locations := []LocationInfo{
		{Name: "Dehradun", Coords: NewCoordinate(30.3165, 78.0322)},
		{Name: "Rishikesh", Coords: NewCoordinate(30.0869, 78.2676)},
		{Name: "Haridwar", Coords: NewCoordinate(29.9457, 78.1642)},
		{Name: "Kotdwar", Coords: NewCoordinate(29.7919, 78.5415)},
		{Name: "Haldwani", Coords: NewCoordinate(29.2183, 79.5276)},
		{Name: "Nainital", Coords: NewCoordinate(29.3919, 79.4549)},
		{Name: "Almora", Coords: NewCoordinate(29.5970, 79.6591)},
	}

	n := &Network{
		Locations: locations,
		Params:    DefaultTrafficParams(),
		POIs: []Hotspot{
			{ID: "poi-ddn", Name: "Dehradun Clock Tower", Coords: NewCoordinate(30.3256, 78.0415), Congestion: 55, ETAMin: 8},
			{ID: "poi-nai", Name: "Mall Road Nainital", Coords: NewCoordinate(29.3919, 79.4549), Congestion: 60, ETAMin: 10},
		},
		Facilities: []Facility{
			{ID: "hosp-aiims", Name: "AIIMS Rishikesh", City: "Rishikesh", Coords: NewCoordinate(30.0726, 78.2766)},
			{ID: "hosp-doon", Name: "Doon Hospital", City: "Dehradun", Coords: NewCoordinate(30.3243, 78.0418)},
			{ID: "hosp-gmc", Name: "Government Medical College Haldwani", City: "Haldwani", Coords: NewCoordinate(29.2207, 79.5130)},
			{ID: "hosp-bdp", Name: "B.D. Pandey Hospital", City: "Nainital", Coords: NewCoordinate(29.3937, 79.4568)},
			{ID: "hosp-alm", Name: "Base Hospital Almora", City: "Almora", Coords: NewCoordinate(29.6044, 79.6542)},
		},
	}

	n.Segments = []Segment{
		n.NewSegment(1, "Dehradun - Rishikesh", "Dehradun", "Rishikesh", 45, 50),
		n.NewSegment(2, "Rishikesh - Haridwar", "Rishikesh", "Haridwar", 30, 55),
		n.NewSegment(3, "Dehradun - Kotdwar", "Dehradun", "Kotdwar", 85, 50),
		n.NewSegment(4, "Kotdwar - Haldwani", "Kotdwar", "Haldwani", 120, 60),
		n.NewSegment(5, "Haridwar - Kotdwar", "Haridwar", "Kotdwar", 90, 55),
		n.NewSegment(6, "Haldwani - Nainital", "Haldwani", "Nainital", 65, 40),
		n.NewSegment(7, "Nainital - Almora", "Nainital", "Almora", 60, 40),
		n.NewSegment(8, "Dehradun - Haridwar (Direct)", "Dehradun", "Haridwar", 50, 50),
	}

	return n
}

// NewSegment builds a Segment whose display coordinates are taken from its endpoints
func (n *Network) NewSegment(id int, name string, start, end Location, km, speed float64) Segment {
	a, _ := n.Coordinate(start)
	b, _ := n.Coordinate(end)
	return Segment{
		ID:            id,
		Name:          name,
		Start:         start,
		End:           end,
		DistanceKm:    km,
		BaseSpeedKmph: speed,
		Coords:        [2]Coordinate{a, b},
	}
}
