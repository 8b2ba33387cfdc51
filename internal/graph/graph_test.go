package graph

import (
	"math"
	"testing"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

func state(id int, u, v domain.Location, km float64, congestion, eta int) domain.SegmentState {
	return domain.SegmentState{
		Segment: domain.Segment{
			ID:         id,
			Name:       string(u) + " - " + string(v),
			Start:      u,
			End:        v,
			DistanceKm: km,
		},
		Congestion: congestion,
		ETAMin:     eta,
	}
}

// equalPath compares two location sequences for equality.
func equalPath(a, b []domain.Location) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func triangle() []domain.SegmentState {
	return []domain.SegmentState{
		state(1, "Dehradun", "Rishikesh", 45, 10, 60),
		state(2, "Rishikesh", "Haridwar", 30, 10, 35),
		state(8, "Dehradun", "Haridwar", 50, 85, 120),
	}
}

func TestBuild_SymmetricEdges(t *testing.T) {
	dist, cong := Build(triangle())

	for _, g := range []Weighted{dist, cong} {
		for _, pair := range [][2]domain.Location{
			{"Dehradun", "Rishikesh"},
			{"Rishikesh", "Haridwar"},
			{"Dehradun", "Haridwar"},
		} {
			ab, ok1 := g.Edge(pair[0], pair[1])
			ba, ok2 := g.Edge(pair[1], pair[0])
			if !ok1 || !ok2 {
				t.Fatalf("expected edge in both directions for %v", pair)
			}
			if ab != ba {
				t.Errorf("asymmetric edge %v: %+v vs %+v", pair, ab, ba)
			}
		}
	}
}

func TestBuild_Weights(t *testing.T) {
	dist, cong := Build(triangle())

	e, _ := dist.Edge("Dehradun", "Haridwar")
	if e.Cost != 50 || e.ETAMin != 120 {
		t.Errorf("distance edge: expected cost 50 eta 120, got %+v", e)
	}

	e, _ = cong.Edge("Dehradun", "Haridwar")
	if math.Abs(e.Cost-92.5) > 1e-9 {
		t.Errorf("congestion edge: expected cost 92.5, got %v", e.Cost)
	}
	if e.ETAMin != 120 || e.DistanceKm != 50 {
		t.Errorf("congestion edge should keep eta and distance, got %+v", e)
	}
}

func TestBuild_IsolatedLocationAbsent(t *testing.T) {
	dist, cong := Build(triangle())
	if dist.Has("Almora") || cong.Has("Almora") {
		t.Error("location without segments must not be a key")
	}
	if len(dist.Adjacency) != 3 {
		t.Errorf("expected 3 keys, got %d", len(dist.Adjacency))
	}
}

func TestShortestPath_PrefersDirectEdge(t *testing.T) {
	dist, _ := Build(triangle())

	path := ShortestPath(dist, "Dehradun", "Haridwar")
	expected := []domain.Location{"Dehradun", "Haridwar"}
	if !equalPath(path, expected) {
		t.Errorf("expected path %v, got %v", expected, path)
	}
}

func TestShortestPath_CongestionAvoidsJammedEdge(t *testing.T) {
	_, cong := Build(triangle())

	// 45*1.1 + 30*1.1 = 82.5 beats 50*1.85 = 92.5
	path := ShortestPath(cong, "Dehradun", "Haridwar")
	expected := []domain.Location{"Dehradun", "Rishikesh", "Haridwar"}
	if !equalPath(path, expected) {
		t.Errorf("expected path %v, got %v", expected, path)
	}
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	dist, _ := Build(triangle())

	path := ShortestPath(dist, "Rishikesh", "Rishikesh")
	if !equalPath(path, []domain.Location{"Rishikesh"}) {
		t.Errorf("expected single-node path, got %v", path)
	}
	eta, km := PathTotals(dist, path)
	if eta != 0 || km != 0 {
		t.Errorf("expected zero totals, got %d min %v km", eta, km)
	}
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	dist, _ := Build(triangle())

	cases := []struct {
		name       string
		start, end domain.Location
	}{
		{"unknown start", "Nowhere", "Haridwar"},
		{"unknown end", "Dehradun", "Nowhere"},
		{"both unknown", "Nowhere", "Nowhere"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := ShortestPath(dist, tc.start, tc.end)
			if path == nil || len(path) != 0 {
				t.Errorf("expected empty non-nil path, got %#v", path)
			}
		})
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	segments := append(triangle(), state(7, "Nainital", "Almora", 60, 50, 90))
	dist, _ := Build(segments)

	if path := ShortestPath(dist, "Dehradun", "Almora"); len(path) != 0 {
		t.Errorf("expected no path across components, got %v", path)
	}
	if path := ShortestPath(dist, "Almora", "Nainital"); !equalPath(path, []domain.Location{"Almora", "Nainital"}) {
		t.Errorf("expected path within component, got %v", path)
	}
}

func TestPathTotals_SumsEdges(t *testing.T) {
	_, cong := Build(triangle())

	path := []domain.Location{"Dehradun", "Rishikesh", "Haridwar"}
	eta, km := PathTotals(cong, path)
	if eta != 95 {
		t.Errorf("expected eta 95, got %d", eta)
	}
	if km != 75 {
		t.Errorf("expected 75 km, got %v", km)
	}
}

func TestPathTotals_BrokenPath(t *testing.T) {
	dist, _ := Build(triangle())
	eta, km := PathTotals(dist, []domain.Location{"Dehradun", "Almora"})
	if eta != 0 || km != 0 {
		t.Errorf("expected zero totals for a non-path, got %d %v", eta, km)
	}
}

// floyd computes all-pairs shortest costs as a reference for ShortestPath.
func floyd(a Adjacency) map[domain.Location]map[domain.Location]float64 {
	d := make(map[domain.Location]map[domain.Location]float64)
	for u := range a {
		d[u] = make(map[domain.Location]float64)
		for v := range a {
			d[u][v] = math.Inf(1)
		}
		d[u][u] = 0
		for v, e := range a[u] {
			d[u][v] = math.Min(d[u][v], e.Cost)
		}
	}
	for k := range a {
		for i := range a {
			for j := range a {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

func TestShortestPath_OptimalOnDefaultNetwork(t *testing.T) {
	net := domain.DefaultNetwork()

	congestionSets := [][]int{
		{10, 10, 10, 10, 10, 10, 10, 10},
		{85, 85, 85, 85, 85, 85, 85, 85},
		{10, 85, 40, 70, 20, 55, 33, 85},
		{85, 10, 60, 15, 80, 25, 45, 10},
	}

	for ci, congestion := range congestionSets {
		var states []domain.SegmentState
		for i, s := range net.Segments {
			states = append(states, domain.SegmentState{Segment: s, Congestion: congestion[i], ETAMin: 10 + i})
		}
		dist, cong := Build(states)

		for gi, g := range []Adjacency{dist.Adjacency, cong.Adjacency} {
			ref := floyd(g)
			for u := range g {
				for v := range g {
					path := ShortestPath(g, u, v)
					if len(path) == 0 || path[0] != u || path[len(path)-1] != v {
						t.Fatalf("set %d graph %d: bad path %v for %s->%s", ci, gi, path, u, v)
					}
					total := 0.0
					for i := 0; i+1 < len(path); i++ {
						e, ok := g.Edge(path[i], path[i+1])
						if !ok {
							t.Fatalf("set %d graph %d: path %v uses missing edge", ci, gi, path)
						}
						total += e.Cost
					}
					if math.Abs(total-ref[u][v]) > 1e-9 {
						t.Errorf("set %d graph %d: %s->%s cost %v, optimum %v", ci, gi, u, v, total, ref[u][v])
					}
				}
			}
		}
	}
}
