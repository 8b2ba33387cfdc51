package graph

import (
	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// Edge is the weight data for one direction of a segment
type Edge struct {
	Cost       float64 // minimized by ShortestPath
	DistanceKm float64
	ETAMin     int
}

// Adjacency maps a location to its neighbours and the edge towards each.
// A location with no incident segment is not a key.
type Adjacency map[domain.Location]map[domain.Location]Edge

// Has reports whether loc has at least one incident edge
func (a Adjacency) Has(loc domain.Location) bool {
	_, ok := a[loc]
	return ok
}

// Neighbors returns the outgoing edges of loc
func (a Adjacency) Neighbors(loc domain.Location) map[domain.Location]Edge {
	return a[loc]
}

// Edge returns the edge from u to v
func (a Adjacency) Edge(u, v domain.Location) (Edge, bool) {
	e, ok := a[u][v]
	return e, ok
}

// link inserts e in both directions
func (a Adjacency) link(u, v domain.Location, e Edge) {
	if a[u] == nil {
		a[u] = make(map[domain.Location]Edge)
	}
	if a[v] == nil {
		a[v] = make(map[domain.Location]Edge)
	}
	a[u][v] = e
	a[v][u] = e
}

// DistanceGraph weighs every edge by physical distance
type DistanceGraph struct{ Adjacency }

// CongestionGraph weighs every edge by distance inflated by current congestion
type CongestionGraph struct{ Adjacency }

// Weighted is the read side shared by both graph variants
type Weighted interface {
	Has(loc domain.Location) bool
	Neighbors(loc domain.Location) map[domain.Location]Edge
	Edge(u, v domain.Location) (Edge, bool)
}

// Build converts segment state into the distance graph and the congestion graph.
// Both graphs are symmetric and carry the segment ETA unchanged.
func Build(segments []domain.SegmentState) (DistanceGraph, CongestionGraph) {
	dist := DistanceGraph{Adjacency: make(Adjacency)}
	cong := CongestionGraph{Adjacency: make(Adjacency)}

	for _, s := range segments {
		dist.link(s.Start, s.End, Edge{
			Cost:       s.DistanceKm,
			DistanceKm: s.DistanceKm,
			ETAMin:     s.ETAMin,
		})

		penalty := s.DistanceKm * (1 + float64(s.Congestion)/100.0)
		cong.link(s.Start, s.End, Edge{
			Cost:       penalty,
			DistanceKm: s.DistanceKm,
			ETAMin:     s.ETAMin,
		})
	}

	return dist, cong
}

// PathTotals sums ETA and physical distance of consecutive edges along path.
// Paths with fewer than two nodes total zero.
func PathTotals(g Weighted, path []domain.Location) (etaMin int, distanceKm float64) {
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.Edge(path[i], path[i+1])
		if !ok {
			return 0, 0
		}
		etaMin += e.ETAMin
		distanceKm += e.DistanceKm
	}
	return etaMin, distanceKm
}
