package timetable

// RelationStop is a station reference plus the minutes a train dwells
// there within a specific line.
type RelationStop struct {
	StationID    string `yaml:"stationid" groups:"basic"`
	MinDwellTime int    `yaml:"mindwelltime" groups:"basic"` // minutes
}

// RailwayLine is an accepted, persistent line. Stops hold at least two
// entries; origin and destination mirror the first and last stop.
type RailwayLine struct {
	ID     string `yaml:"id" groups:"basic"`
	Name   string `yaml:"name" groups:"basic"`
	Colour string `yaml:"colour" groups:"basic"`

	OriginID      string `yaml:"originid" groups:"basic"`
	DestinationID string `yaml:"destinationid" groups:"basic"`

	FrequencyMinutes int `yaml:"frequencyminutes" groups:"basic"`

	Stops []RelationStop `yaml:"stops" groups:"detailed"`
}
