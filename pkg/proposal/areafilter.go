package proposal

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fdcrail/railmanager/pkg/railnet"
)

// AreaFilter selects the node subset a synthesizer works over. The
// expression runs against one node at a time, e.g.
//
//	Type == "interchange"
//	Location != nil && Location.Latitude < 43.9
type AreaFilter struct {
	program *vm.Program
}

type filterEnv struct {
	ID               string
	Name             string
	Type             string
	Location         *railnet.Location
	PlatformCapacity *int
	Capacity         *int
}

func CompileAreaFilter(expression string) (*AreaFilter, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	return &AreaFilter{program: program}, nil
}

// Select returns the matching nodes in graph order.
func (f *AreaFilter) Select(g *railnet.NetworkGraph) ([]*railnet.Node, error) {
	var selected []*railnet.Node

	for _, node := range g.Nodes {
		result, err := expr.Run(f.program, filterEnv{
			ID:               node.ID,
			Name:             node.Name,
			Type:             string(node.Type),
			Location:         node.Location,
			PlatformCapacity: node.PlatformCapacity,
			Capacity:         node.Capacity,
		})
		if err != nil {
			return nil, err
		}

		if result.(bool) {
			selected = append(selected, node)
		}
	}

	return selected, nil
}
