package timetable

// Train is a scheduled service. Stops are a snapshot of the owning line's
// stops taken at creation time; later edits to the line do not reach
// existing trains. LineID is a weak reference: deleting a line orphans
// its trains until the collaborator runs the orphan sweep.
type Train struct {
	ID     string `yaml:"id" groups:"basic"`
	Number int    `yaml:"number" groups:"basic"`
	Name   string `yaml:"name" groups:"basic"`
	Type   string `yaml:"type" groups:"basic"` // e.g. "Regionale"

	MaxSpeed int `yaml:"maxspeed" groups:"basic"` // km/h
	Priority int `yaml:"priority" groups:"basic"` // higher dispatches first

	LineID string `yaml:"lineid" groups:"basic"`

	DepartureTime DayTime        `yaml:"departure" groups:"basic"`
	Stops         []RelationStop `yaml:"stops" groups:"detailed"`
}
