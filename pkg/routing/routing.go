// Package routing computes shortest paths over a rail network graph.
//
// The path finder runs Dijkstra's algorithm with a min-heap and the lazy
// decrease-key strategy: shorter rediscoveries push duplicate heap entries
// and stale ones are skipped when popped. Ties on distance resolve to the
// lexically smallest node id so repeated queries return identical paths.
package routing

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/fdcrail/railmanager/pkg/railnet"
)

// ErrNoPath is returned when the frontier empties before the target is reached.
var ErrNoPath = errors.New("routing: no path")

// Route is the result of a shortest-path query.
type Route struct {
	StationIDs    []string
	TotalDistance float64 // kilometers
}

// ShortestPath returns the ordered station ids and summed edge distance of
// the shortest route between two nodes. The search stops as soon as the
// target's distance is finalized.
func ShortestPath(g *railnet.NetworkGraph, from string, to string) (*Route, error) {
	if g.NodeByID(from) == nil {
		return nil, fmt.Errorf("%w: node %q", railnet.ErrNotFound, from)
	}
	if g.NodeByID(to) == nil {
		return nil, fmt.Errorf("%w: node %q", railnet.ErrNotFound, to)
	}

	dist := map[string]float64{from: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := frontier{{id: from, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		if item.id == to {
			return buildRoute(from, to, dist[to], prev), nil
		}

		for _, neighbor := range g.NeighborsOf(item.id) {
			next := neighbor.Target.ID
			if visited[next] {
				continue
			}

			candidate := dist[item.id] + neighbor.Edge.Distance

			current, reached := dist[next]
			if !reached {
				current = math.Inf(1)
			}

			if candidate < current {
				dist[next] = candidate
				prev[next] = item.id
				heap.Push(&pq, frontierItem{id: next, dist: candidate})
			}
		}
	}

	return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, from, to)
}

func buildRoute(from string, to string, total float64, prev map[string]string) *Route {
	var reversed []string
	for at := to; ; at = prev[at] {
		reversed = append(reversed, at)
		if at == from {
			break
		}
	}

	stationIDs := make([]string, len(reversed))
	for i, id := range reversed {
		stationIDs[len(reversed)-1-i] = id
	}

	return &Route{StationIDs: stationIDs, TotalDistance: total}
}

type frontierItem struct {
	id   string
	dist float64
}

// frontier is a min-heap ordered by distance, then node id. The id
// ordering is what makes equal-distance pops deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
