package domain

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultNetwork_Valid(t *testing.T) {
	n := DefaultNetwork()
	if err := n.Validate(); err != nil {
		t.Fatalf("Expected default network to be valid, got %v", err)
	}

	if len(n.Locations) != 7 || len(n.Segments) != 8 || len(n.Facilities) != 5 || len(n.POIs) != 2 {
		t.Errorf("Unexpected network size: %d locations, %d segments, %d facilities, %d POIs",
			len(n.Locations), len(n.Segments), len(n.Facilities), len(n.POIs))
	}

	for _, s := range n.Segments {
		a, _ := n.Coordinate(s.Start)
		b, _ := n.Coordinate(s.End)
		if s.Coords != [2]Coordinate{a, b} {
			t.Errorf("segment %d: coordinates %v do not match its endpoints", s.ID, s.Coords)
		}
	}
}

func TestValidate_RejectsBrokenNetworks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *Network)
		wantMsg string
	}{
		{"no segments", func(n *Network) { n.Segments = nil }, "no segments"},
		{"unknown endpoint", func(n *Network) {
			n.Segments[0].End = "Mussoorie"
		}, "unknown location"},
		{"self-loop", func(n *Network) {
			n.Segments[0].End = n.Segments[0].Start
		}, "self-loop"},
		{"duplicate segment", func(n *Network) {
			n.Segments[1].ID = n.Segments[0].ID
		}, "duplicate segment"},
		{"duplicate location", func(n *Network) {
			n.Locations = append(n.Locations, n.Locations[0])
		}, "duplicate location"},
		{"invalid coordinate", func(n *Network) {
			n.Locations[6].Coords = NewCoordinate(95, 79)
		}, "invalid coordinates"},
		{"road shorter than straight line", func(n *Network) {
			n.Segments[3].DistanceKm = 10
		}, "km apart"},
		{"facility in unknown city", func(n *Network) {
			n.Facilities[0].City = "Mussoorie"
		}, "unknown city"},
		{"inverted congestion range", func(n *Network) {
			n.Params.MinCongestion, n.Params.MaxCongestion = 90, 10
		}, "congestion range"},
		{"zero refresh window", func(n *Network) {
			n.Params.RefreshWindow = 0
		}, "refresh window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := DefaultNetwork()
			tt.mutate(n)

			err := n.Validate()
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	n := DefaultNetwork()
	n.Segments[0].End = n.Segments[0].Start
	n.Params.RefreshWindow = -time.Second

	err := n.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "self-loop") || !strings.Contains(err.Error(), "refresh window") {
		t.Errorf("Expected both problems reported, got %v", err)
	}
}

func TestSegmentFallbacks(t *testing.T) {
	s := Segment{}
	if s.DistanceOr(30) != 30 || s.SpeedOr(40) != 40 {
		t.Errorf("Expected fallbacks for an unmeasured segment")
	}

	s = Segment{DistanceKm: 12, BaseSpeedKmph: 55}
	if s.DistanceOr(30) != 12 || s.SpeedOr(40) != 55 {
		t.Errorf("Expected configured values to win over fallbacks")
	}
}

func TestCoordinateOrder(t *testing.T) {
	c := NewCoordinate(30.3165, 78.0322)
	if c.Lat() != 30.3165 || c.Lon() != 78.0322 {
		t.Errorf("Expected lat/lon order, got %v", c)
	}
}
