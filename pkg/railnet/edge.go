package railnet

type TrackType string

const (
	TrackTypeHighSpeed TrackType = "highSpeed"
	TrackTypeRegional  TrackType = "regional"
	TrackTypeSingle    TrackType = "single"
	TrackTypeDouble    TrackType = "double"
)

// DefaultCapacity is the maximum number of simultaneous trains a segment
// of this track type carries when the edge has no explicit capacity.
func (t TrackType) DefaultCapacity() int {
	if t == TrackTypeSingle {
		return 1
	}

	return 2
}

// Edge is a directed track segment between two nodes.
type Edge struct {
	ID   string `yaml:"id" groups:"basic"`
	From string `yaml:"from" groups:"basic"`
	To   string `yaml:"to" groups:"basic"`

	Distance  float64   `yaml:"distance" groups:"basic"` // kilometers
	TrackType TrackType `yaml:"tracktype" groups:"basic"`
	MaxSpeed  int       `yaml:"maxspeed" groups:"basic"` // km/h

	Capacity *int `yaml:"capacity,omitempty" groups:"detailed" json:",omitempty" bson:",omitempty"`
}

// EffectiveCapacity resolves the explicit capacity, falling back to the
// track type default.
func (e *Edge) EffectiveCapacity() int {
	if e.Capacity != nil {
		return *e.Capacity
	}

	return e.TrackType.DefaultCapacity()
}
