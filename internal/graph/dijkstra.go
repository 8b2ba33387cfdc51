package graph

import (
	"container/heap"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// ShortestPath runs Dijkstra over edge Cost and returns the locations from start to end.
// The result is empty when either endpoint is not in the graph or no path connects them.
func ShortestPath(g Weighted, start, end domain.Location) []domain.Location {
	if !g.Has(start) || !g.Has(end) {
		return []domain.Location{}
	}

	cost := map[domain.Location]float64{start: 0}
	cameFrom := make(map[domain.Location]domain.Location)
	closed := make(map[domain.Location]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{node: start, priority: 0, seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if closed[current] {
			continue
		}
		closed[current] = true

		if current == end {
			return reconstructPath(cameFrom, start, current)
		}

		for nbr, e := range g.Neighbors(current) {
			if closed[nbr] {
				continue
			}
			tentative := cost[current] + e.Cost
			if old, ok := cost[nbr]; !ok || tentative < old {
				cost[nbr] = tentative
				cameFrom[nbr] = current
				seq++
				heap.Push(pq, &pqItem{node: nbr, priority: tentative, seq: seq})
			}
		}
	}

	return []domain.Location{}
}

func reconstructPath(cameFrom map[domain.Location]domain.Location, start, current domain.Location) []domain.Location {
	path := []domain.Location{current}
	for current != start {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem struct {
	node     domain.Location
	priority float64
	seq      int
}

// priorityQueue orders by accumulated cost, then by push order
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority == pq[j].priority {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].priority < pq[j].priority
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
