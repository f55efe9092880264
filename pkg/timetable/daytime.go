package timetable

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DayTime is a time-of-day instant with minute precision. Departure times
// and operating windows are day times; no date is attached.
type DayTime struct {
	Hour   int `bson:"hour"`
	Minute int `bson:"minute"`
}

func NewDayTime(hour int, minute int) DayTime {
	return DayTime{Hour: hour, Minute: minute}
}

// Minutes is the offset from midnight, the unit the occupancy sweeps
// operate in.
func (d DayTime) Minutes() float64 {
	return float64(d.Hour*60 + d.Minute)
}

func (d DayTime) Before(other DayTime) bool {
	return d.Minutes() < other.Minutes()
}

func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

func ParseDayTime(value string) (DayTime, error) {
	var d DayTime
	if _, err := fmt.Sscanf(value, "%d:%d", &d.Hour, &d.Minute); err != nil {
		return DayTime{}, fmt.Errorf("timetable: invalid day time %q: %w", value, err)
	}
	if d.Hour < 0 || d.Hour > 23 || d.Minute < 0 || d.Minute > 59 {
		return DayTime{}, fmt.Errorf("timetable: day time %q out of range", value)
	}

	return d, nil
}

func (d DayTime) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *DayTime) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseDayTime(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d DayTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DayTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDayTime(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
