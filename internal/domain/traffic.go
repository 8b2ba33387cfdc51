package domain

import "time"

// Location names a fixed point (city/town) in the road network
type Location string

// Coordinate is a [lat, lon] pair, serialized as a two-element array
type Coordinate [2]float64

// NewCoordinate builds a Coordinate from latitude and longitude
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{lat, lon}
}

// Lat returns the latitude in degrees
func (c Coordinate) Lat() float64 { return c[0] }

// Lon returns the longitude in degrees
func (c Coordinate) Lon() float64 { return c[1] }

// Segment is a configured road link between two locations.
// Segments are immutable; direction of Start/End carries no meaning.
type Segment struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Start         Location      `json:"start"`
	End           Location      `json:"end"`
	DistanceKm    float64       `json:"distance_km"`
	BaseSpeedKmph float64       `json:"base_speed_kmph"`
	Coords        [2]Coordinate `json:"coords"`
}

// SegmentState is the congestion-dependent view of a Segment for one refresh cycle
type SegmentState struct {
	Segment
	Congestion int     `json:"congestion"`
	SpeedKmph  float64 `json:"speed_kmph"`
	ETAMin     int     `json:"eta_min"`
	Level      string  `json:"level"` // "heavy", "moderate", "light"
}

// Congestion level labels attached to each SegmentState
const (
	LevelHeavy    = "heavy"
	LevelModerate = "moderate"
	LevelLight    = "light"
)

// Hotspot is a display marker for elevated congestion or a fixed point of interest
type Hotspot struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Coords     Coordinate `json:"coords"`
	Congestion int        `json:"congestion"`
	ETAMin     int        `json:"eta_min"`
}

// TrafficSnapshot is one full refresh of segment state
type TrafficSnapshot struct {
	ID          string         `json:"id"`
	RefreshedAt time.Time      `json:"refreshed_at"`
	Segments    []SegmentState `json:"segments"`
}

// TrafficSummary aggregates congestion across the whole network
type TrafficSummary struct {
	CongestionIndex float64 `json:"congestion_index"`
	CongestionLevel string  `json:"congestion_level"`
	AverageSpeed    float64 `json:"average_speed_kmh"`
	HeavyCount      int     `json:"heavy_segment_count"`
}

// TrafficFeed is the current segment state plus derived hotspots
type TrafficFeed struct {
	SnapshotID  string         `json:"snapshot_id"`
	RefreshedAt time.Time      `json:"refreshed_at"`
	Segments    []SegmentState `json:"roads"`
	Hotspots    []Hotspot      `json:"hotspots"`
	Summary     TrafficSummary `json:"summary"`
}

// TrafficResponse wraps traffic data with metadata
type TrafficResponse struct {
	Data    TrafficFeed `json:"data"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}
