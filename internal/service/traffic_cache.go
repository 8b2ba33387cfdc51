package service

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/pkg/utils"
)

// CongestionSampler draws a congestion ratio in [min, max]
type CongestionSampler interface {
	Sample(min, max int) int
}

// RandomSampler samples uniformly. Safe for concurrent use.
type RandomSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSampler creates a sampler with the given seed
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns a uniformly distributed integer in [min, max]
func (s *RandomSampler) Sample(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}

// SequenceSampler replays fixed values in order, wrapping around, clamped to [min, max]
type SequenceSampler struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequenceSampler creates a sampler that replays values
func NewSequenceSampler(values ...int) *SequenceSampler {
	return &SequenceSampler{values: values}
}

// Sample returns the next value of the sequence
func (s *SequenceSampler) Sample(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return int(utils.Clamp(float64(v), float64(min), float64(max)))
}

// GenerateSegments derives one refresh of segment state from the static segments
func GenerateSegments(segments []domain.Segment, p domain.TrafficParams, sampler CongestionSampler) []domain.SegmentState {
	states := make([]domain.SegmentState, 0, len(segments))
	for _, seg := range segments {
		congestion := sampler.Sample(p.MinCongestion, p.MaxCongestion)

		distance := seg.DistanceOr(p.DefaultSegmentKm)
		base := seg.SpeedOr(p.DefaultSpeedKmph)
		speed := math.Max(p.MinSpeedKmph, base*(1-float64(congestion)/120))
		eta := int(math.Max(1, math.Round(distance/speed*60)))

		s := seg
		s.DistanceKm = distance
		s.BaseSpeedKmph = base
		states = append(states, domain.SegmentState{
			Segment:    s,
			Congestion: congestion,
			SpeedKmph:  utils.RoundTo(speed, 1),
			ETAMin:     eta,
			Level:      congestionLevel(congestion, p),
		})
	}
	return states
}

func congestionLevel(congestion int, p domain.TrafficParams) string {
	switch {
	case congestion >= p.HighCongestion:
		return domain.LevelHeavy
	case congestion >= p.MediumCongestion:
		return domain.LevelModerate
	default:
		return domain.LevelLight
	}
}

// CacheOption configures a TrafficCache
type CacheOption func(*TrafficCache)

// WithClock replaces time.Now
func WithClock(now func() time.Time) CacheOption {
	return func(c *TrafficCache) { c.now = now }
}

// WithRefreshHook registers fn to receive every new snapshot.
// fn runs on the refreshing goroutine after the lock is released.
func WithRefreshHook(fn func(domain.TrafficSnapshot)) CacheOption {
	return func(c *TrafficCache) { c.hooks = append(c.hooks, fn) }
}

// TrafficCache holds the current segment state and regenerates it once the
// refresh window has elapsed. All reads within one window see one snapshot.
type TrafficCache struct {
	segments []domain.Segment
	params   domain.TrafficParams
	sampler  CongestionSampler
	now      func() time.Time
	hooks    []func(domain.TrafficSnapshot)

	mu       sync.Mutex
	snapshot *domain.TrafficSnapshot
}

// NewTrafficCache creates a cache over the network's segments
func NewTrafficCache(network *domain.Network, sampler CongestionSampler, opts ...CacheOption) *TrafficCache {
	c := &TrafficCache{
		segments: network.Segments,
		params:   network.Params,
		sampler:  sampler,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the cached snapshot, refreshing it first if it is missing or stale.
// The returned Segments slice is shared between callers and must not be modified.
func (c *TrafficCache) Current() domain.TrafficSnapshot {
	c.mu.Lock()
	now := c.now()
	if c.snapshot != nil && now.Sub(c.snapshot.RefreshedAt) < c.params.RefreshWindow {
		snap := *c.snapshot
		c.mu.Unlock()
		return snap
	}

	c.snapshot = &domain.TrafficSnapshot{
		ID:          uuid.New().String(),
		RefreshedAt: now,
		Segments:    GenerateSegments(c.segments, c.params, c.sampler),
	}
	snap := *c.snapshot
	c.mu.Unlock()

	log.WithFields(log.Fields{
		"snapshot_id": snap.ID,
		"segments":    len(snap.Segments),
	}).Debug("Traffic state refreshed")

	for _, hook := range c.hooks {
		hook(snap)
	}
	return snap
}

// Segments returns the current segment state
func (c *TrafficCache) Segments() []domain.SegmentState {
	return c.Current().Segments
}
