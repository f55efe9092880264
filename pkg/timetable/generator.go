package timetable

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/fdcrail/railmanager/pkg/proposal"
)

// OperatingWindow is the half-open [Start, End) day-time range trains are
// generated over.
type OperatingWindow struct {
	Start DayTime
	End   DayTime
}

// DefaultOperatingWindow covers the standard service day.
var DefaultOperatingWindow = OperatingWindow{
	Start: DayTime{Hour: 6},
	End:   DayTime{Hour: 22},
}

// Generator synthesizes trains along a line. Numbers come from the train
// collection's monotonic counter, so repeated generations within a
// session never collide.
type Generator struct {
	Trains *TrainCollection

	TrainType     string // defaults to "Regionale"
	TrainMaxSpeed int    // defaults to 160 km/h
	TrainPriority int
}

// Generate emits one train per frequency slot: for every hour of the
// half-open window and every minute offset in [0,60) stepped by the
// frequency. Frequency <= 0 falls back to 60. Each train owns a deep
// snapshot of the line's stops.
func (g *Generator) Generate(line *RailwayLine, frequencyMinutes int, window OperatingWindow) ([]*Train, error) {
	if frequencyMinutes <= 0 {
		frequencyMinutes = proposal.DefaultFrequencyMinutes
	}

	trainType := g.TrainType
	if trainType == "" {
		trainType = "Regionale"
	}
	maxSpeed := g.TrainMaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = 160
	}

	var generated []*Train

	for hour := window.Start.Hour; hour <= window.End.Hour && hour < 24; hour++ {
		for minute := 0; minute < 60; minute += frequencyMinutes {
			departure := DayTime{Hour: hour, Minute: minute}
			if departure.Before(window.Start) || !departure.Before(window.End) {
				continue
			}

			number := g.Trains.NextNumber()

			train := &Train{
				ID:            uuid.NewString(),
				Number:        number,
				Name:          fmt.Sprintf("%s %d", trainType, number),
				Type:          trainType,
				MaxSpeed:      maxSpeed,
				Priority:      g.TrainPriority,
				LineID:        line.ID,
				DepartureTime: departure,
			}

			if err := copier.CopyWithOption(&train.Stops, &line.Stops, copier.Option{DeepCopy: true}); err != nil {
				return nil, err
			}

			if err := g.Trains.Add(train); err != nil {
				return nil, err
			}

			generated = append(generated, train)
		}
	}

	log.Debug().
		Str("line", line.Name).
		Int("frequency", frequencyMinutes).
		Int("trains", len(generated)).
		Msg("Generated trains for line")

	return generated, nil
}
