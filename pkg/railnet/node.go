package railnet

type NodeType string

const (
	NodeTypeStation     NodeType = "station"
	NodeTypeInterchange NodeType = "interchange"
	NodeTypeDepot       NodeType = "depot"
)

// MinDwellTime is the minutes a train spends stopped at a node of this
// type before departing. Fixed at line instantiation, never recomputed.
func (t NodeType) MinDwellTime() int {
	if t == NodeTypeInterchange {
		return 5
	}

	return 3
}

type Location struct {
	Latitude  float64 `yaml:"latitude" groups:"basic"`
	Longitude float64 `yaml:"longitude" groups:"basic"`
}

type Node struct {
	ID   string   `yaml:"id" groups:"basic"`
	Name string   `yaml:"name" groups:"basic"`
	Type NodeType `yaml:"type" groups:"basic"`

	Location *Location `yaml:"location,omitempty" groups:"detailed" json:",omitempty" bson:",omitempty"`

	// PlatformCapacity bounds how many trains can dwell at the node at
	// once. Nil means the node has no platform constraint.
	PlatformCapacity *int `yaml:"platformcapacity,omitempty" groups:"detailed" json:",omitempty" bson:",omitempty"`
	Capacity         *int `yaml:"capacity,omitempty" groups:"detailed" json:",omitempty" bson:",omitempty"`
}
