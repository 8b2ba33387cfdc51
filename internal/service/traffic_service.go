package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/pkg/utils"
)

// TrafficService serves the live traffic feed
type TrafficService struct {
	network *domain.Network
	cache   *TrafficCache
}

// NewTrafficService creates a new traffic service
func NewTrafficService(network *domain.Network, cache *TrafficCache) *TrafficService {
	return &TrafficService{network: network, cache: cache}
}

// GetTrafficFeed returns current segment state, hotspots and a network summary
func (s *TrafficService) GetTrafficFeed(ctx context.Context) (domain.TrafficFeed, error) {
	snap := s.cache.Current()
	return domain.TrafficFeed{
		SnapshotID:  snap.ID,
		RefreshedAt: snap.RefreshedAt,
		Segments:    snap.Segments,
		Hotspots:    DeriveHotspots(snap.Segments, s.network.POIs, s.network.Params.MediumCongestion),
		Summary:     s.summarize(snap.Segments),
	}, nil
}

// FeedGeoJSON renders the current feed as a FeatureCollection:
// a LineString per segment and a Point per hotspot
func (s *TrafficService) FeedGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	feed, err := s.GetTrafficFeed(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, seg := range feed.Segments {
		line := orb.LineString{toPoint(seg.Coords[0]), toPoint(seg.Coords[1])}
		f := geojson.NewFeature(line)
		f.ID = seg.ID
		f.Properties["kind"] = "segment"
		f.Properties["name"] = seg.Name
		f.Properties["congestion"] = seg.Congestion
		f.Properties["speed_kmph"] = seg.SpeedKmph
		f.Properties["eta_min"] = seg.ETAMin
		f.Properties["level"] = seg.Level
		fc.Append(f)
	}
	for _, hs := range feed.Hotspots {
		f := geojson.NewFeature(toPoint(hs.Coords))
		f.ID = hs.ID
		f.Properties["kind"] = "hotspot"
		f.Properties["name"] = hs.Name
		f.Properties["congestion"] = hs.Congestion
		f.Properties["eta_min"] = hs.ETAMin
		fc.Append(f)
	}
	return fc, nil
}

// orb points are (lon, lat)
func toPoint(c domain.Coordinate) orb.Point {
	return orb.Point{c.Lon(), c.Lat()}
}

// summarize aggregates segment state into network-wide metrics
func (s *TrafficService) summarize(states []domain.SegmentState) domain.TrafficSummary {
	if len(states) == 0 {
		return domain.TrafficSummary{CongestionLevel: getCongestionLevel(0)}
	}

	var congestion, speed float64
	heavy := 0
	for _, st := range states {
		congestion += float64(st.Congestion)
		speed += st.SpeedKmph
		if st.Congestion >= s.network.Params.HighCongestion {
			heavy++
		}
	}
	index := congestion / float64(len(states))

	return domain.TrafficSummary{
		CongestionIndex: utils.RoundTo(index, 1),
		CongestionLevel: getCongestionLevel(index),
		AverageSpeed:    utils.RoundTo(speed/float64(len(states)), 1),
		HeavyCount:      heavy,
	}
}

// getCongestionLevel returns human-readable level
func getCongestionLevel(index float64) string {
	switch {
	case index >= 80:
		return "Severe"
	case index >= 60:
		return "Heavy"
	case index >= 40:
		return "Moderate"
	case index >= 20:
		return "Light"
	default:
		return "Free Flow"
	}
}
