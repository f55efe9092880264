package timetable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fdcrail/railmanager/pkg/proposal"
	"github.com/fdcrail/railmanager/pkg/railnet"
)

// Instantiator converts accepted proposals into persistent railway lines
// appended to the owned collection.
type Instantiator struct {
	Graph *railnet.NetworkGraph
	Lines *LineCollection
}

// Instantiate maps each station of a validated proposal to a RelationStop
// with its dwell time fixed by node type (5 minutes at interchanges,
// 3 elsewhere), assigns a fresh line id, and appends the line exactly
// once. Proposals in a batch share no mutable state.
func (i *Instantiator) Instantiate(p proposal.ProposedLine) (*RailwayLine, error) {
	if err := proposal.Validate(i.Graph, p); err != nil {
		return nil, err
	}

	stops := make([]RelationStop, 0, len(p.StationIDs))
	for _, stationID := range p.StationIDs {
		node := i.Graph.NodeByID(stationID)
		if node == nil {
			return nil, fmt.Errorf("%w: station %q", railnet.ErrNotFound, stationID)
		}

		stops = append(stops, RelationStop{
			StationID:    stationID,
			MinDwellTime: node.Type.MinDwellTime(),
		})
	}

	line := &RailwayLine{
		ID:               uuid.NewString(),
		Name:             p.Name,
		Colour:           p.Colour,
		OriginID:         stops[0].StationID,
		DestinationID:    stops[len(stops)-1].StationID,
		FrequencyMinutes: p.FrequencyMinutes,
		Stops:            stops,
	}

	if err := i.Lines.Add(line); err != nil {
		return nil, err
	}

	return line, nil
}
