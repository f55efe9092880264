package railnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testNetwork(t *testing.T) *NetworkGraph {
	t.Helper()

	g := NewNetworkGraph("test")
	require.NoError(t, g.AddNode(&Node{ID: "A", Name: "Arezzo", Type: NodeTypeStation}))
	require.NoError(t, g.AddNode(&Node{ID: "B", Name: "Bologna", Type: NodeTypeInterchange, PlatformCapacity: intPtr(4)}))
	require.NoError(t, g.AddNode(&Node{ID: "C", Name: "Chiusi", Type: NodeTypeStation}))
	require.NoError(t, g.AddEdge(&Edge{ID: "e1", From: "A", To: "B", Distance: 1, TrackType: TrackTypeRegional, MaxSpeed: 120}))
	require.NoError(t, g.AddEdge(&Edge{ID: "e2", From: "B", To: "C", Distance: 1, TrackType: TrackTypeRegional, MaxSpeed: 120}))

	return g
}

func TestAddNodeDuplicate(t *testing.T) {
	g := testNetwork(t)

	err := g.AddNode(&Node{ID: "A", Name: "Again", Type: NodeTypeStation})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, g.Nodes, 3)
}

func TestAddEdgeUnknownEndpoint(t *testing.T) {
	g := testNetwork(t)

	err := g.AddEdge(&Edge{ID: "e3", From: "A", To: "Z", Distance: 5, TrackType: TrackTypeSingle, MaxSpeed: 80})
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
	assert.Len(t, g.Edges, 2)
	assert.Nil(t, g.EdgeByID("e3"))
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g := testNetwork(t)

	err := g.AddEdge(&Edge{ID: "e3", From: "A", To: "A", Distance: 5, TrackType: TrackTypeSingle, MaxSpeed: 80})
	assert.ErrorIs(t, err, ErrInvalidEdge)
}

func TestRemoveNodeWithIncidentEdgeFails(t *testing.T) {
	g := testNetwork(t)

	err := g.RemoveNode("B")
	assert.ErrorIs(t, err, ErrDanglingEdge)

	// Graph must be left unchanged.
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
	assert.NotNil(t, g.NodeByID("B"))
}

func TestRemoveNodeCascade(t *testing.T) {
	g := testNetwork(t)

	require.NoError(t, g.RemoveNodeCascade("B"))

	assert.Nil(t, g.NodeByID("B"))
	assert.Len(t, g.Edges, 0)
	assert.Nil(t, g.EdgeByID("e1"))
	assert.Nil(t, g.EdgeByID("e2"))
}

func TestRemoveEdgeThenNode(t *testing.T) {
	g := testNetwork(t)

	require.NoError(t, g.RemoveEdge("e2"))
	assert.NoError(t, g.RemoveNode("C"))
	assert.Nil(t, g.NodeByID("C"))
}

func TestNeighborsOf(t *testing.T) {
	g := testNetwork(t)

	neighbors := g.NeighborsOf("A")
	require.Len(t, neighbors, 1)
	assert.Equal(t, "e1", neighbors[0].Edge.ID)
	assert.Equal(t, "B", neighbors[0].Target.ID)

	assert.Empty(t, g.NeighborsOf("C"))
}

func TestConnectingEdgePicksLowestID(t *testing.T) {
	g := testNetwork(t)
	require.NoError(t, g.AddEdge(&Edge{ID: "e0", From: "A", To: "B", Distance: 2, TrackType: TrackTypeDouble, MaxSpeed: 100}))

	edge := g.ConnectingEdge("A", "B")
	require.NotNil(t, edge)
	assert.Equal(t, "e0", edge.ID)

	assert.Nil(t, g.ConnectingEdge("A", "C"))
}

func TestEffectiveCapacityDefaults(t *testing.T) {
	assert.Equal(t, 1, (&Edge{TrackType: TrackTypeSingle}).EffectiveCapacity())
	assert.Equal(t, 2, (&Edge{TrackType: TrackTypeDouble}).EffectiveCapacity())
	assert.Equal(t, 2, (&Edge{TrackType: TrackTypeRegional}).EffectiveCapacity())
	assert.Equal(t, 2, (&Edge{TrackType: TrackTypeHighSpeed}).EffectiveCapacity())
	assert.Equal(t, 3, (&Edge{TrackType: TrackTypeSingle, Capacity: intPtr(3)}).EffectiveCapacity())
}

func TestDwellTimes(t *testing.T) {
	assert.Equal(t, 5, NodeTypeInterchange.MinDwellTime())
	assert.Equal(t, 3, NodeTypeStation.MinDwellTime())
	assert.Equal(t, 3, NodeTypeDepot.MinDwellTime())
}

func TestReindex(t *testing.T) {
	g := testNetwork(t)

	// Simulate a decoded graph: slices only, no indexes.
	decoded := &NetworkGraph{Name: g.Name, Nodes: g.Nodes, Edges: g.Edges}
	decoded.Reindex()

	assert.Equal(t, "Bologna", decoded.NodeByID("B").Name)
	assert.Equal(t, "e2", decoded.EdgeByID("e2").ID)
}
