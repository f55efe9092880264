// Package validator scans a train set against the network and reports
// capacity conflicts on track segments and station platforms.
//
// For every train the occupancy of each leg is derived from its departure
// time plus the cumulative dwell and travel time to reach the leg. Per
// edge (and per node with a platform capacity) the intervals go through a
// sweep with a running occupancy counter; every maximal window where the
// counter strictly exceeds the capacity becomes one Conflict covering the
// trains active in that window. The validator mutates nothing and never
// fails on valid input: empty trains or edges yield an empty report.
package validator

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/timetable"
)

type occupancy struct {
	trainID string
	window  Window
}

// Validate recomputes the full conflict report. Output order is stable:
// segment conflicts by edge id then window start, followed by platform
// conflicts by node id then window start.
func Validate(trains []*timetable.Train, g *railnet.NetworkGraph) []Conflict {
	edgeOccupancy := map[string][]occupancy{}
	nodeOccupancy := map[string][]occupancy{}

	for _, train := range trains {
		collectOccupancies(train, g, edgeOccupancy, nodeOccupancy)
	}

	var conflicts []Conflict

	for _, edgeID := range sortedKeys(edgeOccupancy) {
		edge := g.EdgeByID(edgeID)
		if edge == nil {
			continue
		}

		conflicts = append(conflicts, sweep(
			ConflictKindSegmentCapacity, edgeID, edgeOccupancy[edgeID], edge.EffectiveCapacity(),
		)...)
	}

	for _, nodeID := range sortedKeys(nodeOccupancy) {
		node := g.NodeByID(nodeID)
		if node == nil || node.PlatformCapacity == nil {
			// No platform constraint, nothing to exceed.
			continue
		}

		conflicts = append(conflicts, sweep(
			ConflictKindPlatformCapacity, nodeID, nodeOccupancy[nodeID], *node.PlatformCapacity,
		)...)
	}

	return conflicts
}

// collectOccupancies walks a train along its stop sequence, accumulating
// the edge interval of every leg and the platform interval of every
// dwell. A train occupies its origin platform for the dwell time ahead of
// departure, and each later platform from arrival until it departs again.
func collectOccupancies(train *timetable.Train, g *railnet.NetworkGraph, edges map[string][]occupancy, nodes map[string][]occupancy) {
	if len(train.Stops) < 2 {
		return
	}

	cursor := train.DepartureTime.Minutes()

	origin := train.Stops[0]
	nodes[origin.StationID] = append(nodes[origin.StationID], occupancy{
		trainID: train.ID,
		window:  Window{Start: cursor - float64(origin.MinDwellTime), End: cursor},
	})

	for i := 0; i+1 < len(train.Stops); i++ {
		from, to := train.Stops[i], train.Stops[i+1]

		edge := g.ConnectingEdge(from.StationID, to.StationID)
		if edge == nil {
			// The graph changed underneath the line; this leg can no
			// longer be placed on a segment.
			log.Debug().
				Str("train", train.ID).
				Str("from", from.StationID).
				Str("to", to.StationID).
				Msg("No connecting edge for train leg")

			return
		}

		speed := edge.MaxSpeed
		if train.MaxSpeed > 0 && train.MaxSpeed < speed {
			speed = train.MaxSpeed
		}
		travel := edge.Distance / float64(speed) * 60

		entry := cursor
		exit := entry + travel

		edges[edge.ID] = append(edges[edge.ID], occupancy{
			trainID: train.ID,
			window:  Window{Start: entry, End: exit},
		})

		nodes[to.StationID] = append(nodes[to.StationID], occupancy{
			trainID: train.ID,
			window:  Window{Start: exit, End: exit + float64(to.MinDwellTime)},
		})

		cursor = exit + float64(to.MinDwellTime)
	}
}

type sweepEvent struct {
	time    float64
	delta   int
	trainID string
}

// sweep runs the interval sweep over one resource. Events sort by time
// with departures ahead of arrivals, so back-to-back intervals never
// count as overlapping.
func sweep(kind ConflictKind, resourceID string, occupancies []occupancy, capacity int) []Conflict {
	events := make([]sweepEvent, 0, len(occupancies)*2)
	for _, o := range occupancies {
		events = append(events, sweepEvent{time: o.window.Start, delta: +1, trainID: o.trainID})
		events = append(events, sweepEvent{time: o.window.End, delta: -1, trainID: o.trainID})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].time != events[j].time {
			return events[i].time < events[j].time
		}

		return events[i].delta < events[j].delta
	})

	var conflicts []Conflict

	count := 0
	inConflict := false
	var windowStart float64
	involved := map[string]bool{}
	active := map[string]int{}

	for _, event := range events {
		count += event.delta

		if event.delta > 0 {
			active[event.trainID]++
		} else if active[event.trainID]--; active[event.trainID] == 0 {
			delete(active, event.trainID)
		}

		if !inConflict && count > capacity {
			inConflict = true
			windowStart = event.time
			for trainID := range active {
				involved[trainID] = true
			}
		} else if inConflict && event.delta > 0 {
			involved[event.trainID] = true
		} else if inConflict && count <= capacity {
			inConflict = false
			conflicts = append(conflicts, Conflict{
				Kind:       kind,
				ResourceID: resourceID,
				TrainIDs:   sortedKeys(involved),
				Window:     Window{Start: windowStart, End: event.time},
			})
			involved = map[string]bool{}
		}
	}

	return conflicts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
