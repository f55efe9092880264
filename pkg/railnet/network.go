package railnet

import "fmt"

// NetworkGraph owns the nodes and edges of a rail network. Node and edge
// order is preserved as inserted; id lookups go through indexes kept in
// step with the slices. Mutations fail fast and leave the graph unchanged
// on error.
type NetworkGraph struct {
	Name  string  `yaml:"name" groups:"basic"`
	Nodes []*Node `yaml:"nodes" groups:"basic"`
	Edges []*Edge `yaml:"edges" groups:"basic"`

	nodeIndex map[string]*Node
	edgeIndex map[string]*Edge
}

// Neighbor pairs an outgoing edge with the node it leads to.
type Neighbor struct {
	Edge   *Edge
	Target *Node
}

func NewNetworkGraph(name string) *NetworkGraph {
	return &NetworkGraph{
		Name:      name,
		nodeIndex: map[string]*Node{},
		edgeIndex: map[string]*Edge{},
	}
}

// Reindex rebuilds the id indexes from the Nodes/Edges slices. Needed
// after decoding a graph from a document or a database record, where only
// the slices survive.
func (g *NetworkGraph) Reindex() {
	g.nodeIndex = make(map[string]*Node, len(g.Nodes))
	for _, node := range g.Nodes {
		g.nodeIndex[node.ID] = node
	}

	g.edgeIndex = make(map[string]*Edge, len(g.Edges))
	for _, edge := range g.Edges {
		g.edgeIndex[edge.ID] = edge
	}
}

func (g *NetworkGraph) NodeByID(id string) *Node {
	return g.nodeIndex[id]
}

func (g *NetworkGraph) EdgeByID(id string) *Edge {
	return g.edgeIndex[id]
}

func (g *NetworkGraph) AddNode(node *Node) error {
	if g.nodeIndex[node.ID] != nil {
		return fmt.Errorf("%w: node %q", ErrDuplicateID, node.ID)
	}

	g.Nodes = append(g.Nodes, node)
	g.nodeIndex[node.ID] = node

	return nil
}

// RemoveNode deletes a node. It refuses to orphan track segments; remove
// the incident edges first or use RemoveNodeCascade.
func (g *NetworkGraph) RemoveNode(id string) error {
	if g.nodeIndex[id] == nil {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}

	for _, edge := range g.Edges {
		if edge.From == id || edge.To == id {
			return fmt.Errorf("%w: node %q used by edge %q", ErrDanglingEdge, id, edge.ID)
		}
	}

	g.deleteNode(id)

	return nil
}

// RemoveNodeCascade deletes a node along with every incident edge.
func (g *NetworkGraph) RemoveNodeCascade(id string) error {
	if g.nodeIndex[id] == nil {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}

	remaining := g.Edges[:0]
	for _, edge := range g.Edges {
		if edge.From == id || edge.To == id {
			delete(g.edgeIndex, edge.ID)
		} else {
			remaining = append(remaining, edge)
		}
	}
	g.Edges = remaining

	g.deleteNode(id)

	return nil
}

func (g *NetworkGraph) deleteNode(id string) {
	for i, node := range g.Nodes {
		if node.ID == id {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			break
		}
	}
	delete(g.nodeIndex, id)
}

func (g *NetworkGraph) AddEdge(edge *Edge) error {
	if g.edgeIndex[edge.ID] != nil {
		return fmt.Errorf("%w: edge %q", ErrDuplicateID, edge.ID)
	}
	if edge.From == edge.To {
		return fmt.Errorf("%w: edge %q is a self-loop", ErrInvalidEdge, edge.ID)
	}
	if edge.Distance <= 0 || edge.MaxSpeed <= 0 {
		return fmt.Errorf("%w: edge %q needs positive distance and speed", ErrInvalidEdge, edge.ID)
	}
	if g.nodeIndex[edge.From] == nil {
		return fmt.Errorf("%w: edge %q from %q", ErrUnknownEndpoint, edge.ID, edge.From)
	}
	if g.nodeIndex[edge.To] == nil {
		return fmt.Errorf("%w: edge %q to %q", ErrUnknownEndpoint, edge.ID, edge.To)
	}

	g.Edges = append(g.Edges, edge)
	g.edgeIndex[edge.ID] = edge

	return nil
}

func (g *NetworkGraph) RemoveEdge(id string) error {
	if g.edgeIndex[id] == nil {
		return fmt.Errorf("%w: edge %q", ErrNotFound, id)
	}

	for i, edge := range g.Edges {
		if edge.ID == id {
			g.Edges = append(g.Edges[:i], g.Edges[i+1:]...)
			break
		}
	}
	delete(g.edgeIndex, id)

	return nil
}

// NeighborsOf returns the outgoing (edge, target node) pairs of a node in
// edge insertion order.
func (g *NetworkGraph) NeighborsOf(nodeID string) []Neighbor {
	var neighbors []Neighbor

	for _, edge := range g.Edges {
		if edge.From != nodeID {
			continue
		}

		if target := g.nodeIndex[edge.To]; target != nil {
			neighbors = append(neighbors, Neighbor{Edge: edge, Target: target})
		}
	}

	return neighbors
}

// Adjacent reports whether at least one edge joins from directly to to.
func (g *NetworkGraph) Adjacent(from string, to string) bool {
	for _, edge := range g.Edges {
		if edge.From == from && edge.To == to {
			return true
		}
	}

	return false
}

// ConnectingEdge picks the edge joining two adjacent nodes. Parallel
// edges are disambiguated by lexically smallest edge id so repeated runs
// agree on the segment a train occupies.
func (g *NetworkGraph) ConnectingEdge(from string, to string) *Edge {
	var chosen *Edge

	for _, edge := range g.Edges {
		if edge.From != from || edge.To != to {
			continue
		}

		if chosen == nil || edge.ID < chosen.ID {
			chosen = edge
		}
	}

	return chosen
}
