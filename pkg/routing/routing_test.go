package routing

import (
	"testing"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, nodes []string, edges [][3]any) *railnet.NetworkGraph {
	t.Helper()

	g := railnet.NewNetworkGraph("test")
	for _, id := range nodes {
		require.NoError(t, g.AddNode(&railnet.Node{ID: id, Name: id, Type: railnet.NodeTypeStation}))
	}
	for i, e := range edges {
		require.NoError(t, g.AddEdge(&railnet.Edge{
			ID:        string(rune('a' + i)),
			From:      e[0].(string),
			To:        e[1].(string),
			Distance:  e[2].(float64),
			TrackType: railnet.TrackTypeRegional,
			MaxSpeed:  120,
		}))
	}

	return g
}

func TestShortestPathPrefersShorterDetour(t *testing.T) {
	// A-B (1 km), B-C (1 km) and a direct A-C (3 km): the two-hop route wins.
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]any{
		{"A", "B", 1.0},
		{"B", "C", 1.0},
		{"A", "C", 3.0},
	})

	route, err := ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.StationIDs)
	assert.Equal(t, 2.0, route.TotalDistance)
}

func TestShortestPathDeterministicTieBreak(t *testing.T) {
	// Two routes of identical length; the lexically smaller intermediate
	// node must win, on every run.
	g := buildGraph(t, []string{"A", "B", "M", "Z"}, [][3]any{
		{"A", "M", 1.0},
		{"M", "Z", 1.0},
		{"A", "B", 1.0},
		{"B", "Z", 1.0},
	})

	first, err := ShortestPath(g, "A", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Z"}, first.StationIDs)

	for i := 0; i < 10; i++ {
		again, err := ShortestPath(g, "A", "Z")
		require.NoError(t, err)
		assert.Equal(t, first.StationIDs, again.StationIDs)
		assert.Equal(t, first.TotalDistance, again.TotalDistance)
	}
}

func TestShortestPathRespectsDirection(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{
		{"A", "B", 1.0},
	})

	_, err := ShortestPath(g, "B", "A")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPathNoRoute(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]any{
		{"A", "B", 1.0},
	})

	_, err := ShortestPath(g, "A", "C")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPathUnknownNode(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)

	_, err := ShortestPath(g, "A", "X")
	assert.ErrorIs(t, err, railnet.ErrNotFound)

	_, err = ShortestPath(g, "X", "A")
	assert.ErrorIs(t, err, railnet.ErrNotFound)
}

func TestShortestPathTrivial(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{{"A", "B", 4.5}})

	route, err := ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, route.StationIDs)
	assert.Equal(t, 0.0, route.TotalDistance)
}

// Cross-check against Floyd-Warshall on a denser graph: the distance the
// path finder reports must be globally minimal and equal to the summed
// edge distances of the path it returns.
func TestShortestPathCrossCheck(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "E"}
	edges := [][3]any{
		{"A", "B", 2.0}, {"B", "C", 2.0}, {"C", "D", 2.0}, {"D", "E", 2.0},
		{"A", "C", 5.0}, {"B", "D", 3.0}, {"C", "E", 5.0}, {"A", "E", 10.0},
		{"B", "A", 2.0}, {"E", "D", 1.0},
	}
	g := buildGraph(t, nodes, edges)

	const inf = 1 << 20
	index := map[string]int{}
	for i, id := range nodes {
		index[id] = i
	}

	dist := make([][]float64, len(nodes))
	for i := range dist {
		dist[i] = make([]float64, len(nodes))
		for j := range dist[i] {
			if i != j {
				dist[i][j] = inf
			}
		}
	}
	for _, e := range edges {
		i, j, d := index[e[0].(string)], index[e[1].(string)], e[2].(float64)
		if d < dist[i][j] {
			dist[i][j] = d
		}
	}
	for k := range nodes {
		for i := range nodes {
			for j := range nodes {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}

	for _, from := range nodes {
		for _, to := range nodes {
			route, err := ShortestPath(g, from, to)

			if dist[index[from]][index[to]] >= inf {
				assert.ErrorIs(t, err, ErrNoPath)
				continue
			}

			require.NoError(t, err)
			assert.Equal(t, dist[index[from]][index[to]], route.TotalDistance, "%s->%s", from, to)

			var sum float64
			for i := 0; i+1 < len(route.StationIDs); i++ {
				edge := g.ConnectingEdge(route.StationIDs[i], route.StationIDs[i+1])
				require.NotNil(t, edge)
				sum += edge.Distance
			}
			assert.Equal(t, route.TotalDistance, sum)
		}
	}
}
