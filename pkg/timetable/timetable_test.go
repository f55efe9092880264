package timetable

import (
	"testing"

	"github.com/fdcrail/railmanager/pkg/proposal"
	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineNetwork(t *testing.T) *railnet.NetworkGraph {
	t.Helper()

	g := railnet.NewNetworkGraph("test")
	require.NoError(t, g.AddNode(&railnet.Node{ID: "A", Name: "Arezzo", Type: railnet.NodeTypeStation}))
	require.NoError(t, g.AddNode(&railnet.Node{ID: "B", Name: "Bologna", Type: railnet.NodeTypeInterchange}))
	require.NoError(t, g.AddNode(&railnet.Node{ID: "C", Name: "Chiusi", Type: railnet.NodeTypeStation}))
	require.NoError(t, g.AddEdge(&railnet.Edge{ID: "e1", From: "A", To: "B", Distance: 30, TrackType: railnet.TrackTypeDouble, MaxSpeed: 140}))
	require.NoError(t, g.AddEdge(&railnet.Edge{ID: "e2", From: "B", To: "C", Distance: 25, TrackType: railnet.TrackTypeRegional, MaxSpeed: 120}))

	return g
}

func TestInstantiateDwellTimes(t *testing.T) {
	g := lineNetwork(t)
	lines := NewLineCollection()
	instantiator := &Instantiator{Graph: g, Lines: lines}

	line, err := instantiator.Instantiate(proposal.ProposedLine{
		Name:       "R10",
		Colour:     "#C8102E",
		StationIDs: []string{"A", "B", "C"},
	})
	require.NoError(t, err)

	require.Len(t, line.Stops, 3)
	assert.Equal(t, RelationStop{StationID: "A", MinDwellTime: 3}, line.Stops[0])
	assert.Equal(t, RelationStop{StationID: "B", MinDwellTime: 5}, line.Stops[1])
	assert.Equal(t, RelationStop{StationID: "C", MinDwellTime: 3}, line.Stops[2])

	assert.Equal(t, "A", line.OriginID)
	assert.Equal(t, "C", line.DestinationID)
	assert.NotEmpty(t, line.ID)

	// Exactly-once append.
	assert.Equal(t, 1, lines.Count())
	assert.Same(t, line, lines.ByID(line.ID))
}

func TestInstantiateRejectsInvalidProposal(t *testing.T) {
	g := lineNetwork(t)
	lines := NewLineCollection()
	instantiator := &Instantiator{Graph: g, Lines: lines}

	_, err := instantiator.Instantiate(proposal.ProposedLine{Name: "bad", StationIDs: []string{"A", "C"}})
	assert.ErrorIs(t, err, proposal.ErrInvalidProposal)
	assert.Equal(t, 0, lines.Count())
}

func TestInstantiateBatchSharesNoState(t *testing.T) {
	g := lineNetwork(t)
	lines := NewLineCollection()
	instantiator := &Instantiator{Graph: g, Lines: lines}

	first, err := instantiator.Instantiate(proposal.ProposedLine{Name: "R1", StationIDs: []string{"A", "B"}})
	require.NoError(t, err)
	second, err := instantiator.Instantiate(proposal.ProposedLine{Name: "R2", StationIDs: []string{"B", "C"}})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	first.Stops[0].MinDwellTime = 99
	assert.Equal(t, 5, second.Stops[0].MinDwellTime)
}

func makeLine(t *testing.T) (*railnet.NetworkGraph, *RailwayLine) {
	t.Helper()

	g := lineNetwork(t)
	lines := NewLineCollection()
	line, err := (&Instantiator{Graph: g, Lines: lines}).Instantiate(proposal.ProposedLine{
		Name:       "R10",
		StationIDs: []string{"A", "B", "C"},
	})
	require.NoError(t, err)

	return g, line
}

func TestGenerateHourlyCount(t *testing.T) {
	_, line := makeLine(t)
	trains := NewTrainCollection()
	generator := &Generator{Trains: trains}

	generated, err := generator.Generate(line, 60, DefaultOperatingWindow)
	require.NoError(t, err)

	// One train per hour over [06:00, 22:00).
	assert.Len(t, generated, 16)
	assert.Equal(t, DayTime{Hour: 6}, generated[0].DepartureTime)
	assert.Equal(t, DayTime{Hour: 21}, generated[len(generated)-1].DepartureTime)
}

func TestGenerateFrequencySteps(t *testing.T) {
	_, line := makeLine(t)
	trains := NewTrainCollection()
	generator := &Generator{Trains: trains}

	generated, err := generator.Generate(line, 25, DefaultOperatingWindow)
	require.NoError(t, err)

	// Minute offsets 0, 25, 50 per hour, restarting each hour.
	assert.Len(t, generated, 16*3)

	previous := DayTime{}
	hourStart := 0
	for i, train := range generated {
		if train.DepartureTime.Minute == 0 {
			hourStart = i
		}
		if i > hourStart {
			assert.True(t, previous.Before(train.DepartureTime), "departures within an hour must strictly increase")
		}
		previous = train.DepartureTime
	}
}

func TestGenerateZeroFrequencyDefaultsToHourly(t *testing.T) {
	_, line := makeLine(t)
	trains := NewTrainCollection()
	generator := &Generator{Trains: trains}

	generated, err := generator.Generate(line, 0, DefaultOperatingWindow)
	require.NoError(t, err)
	assert.Len(t, generated, 16)
}

func TestGenerateNumbersNeverCollide(t *testing.T) {
	_, line := makeLine(t)
	trains := NewTrainCollection()
	generator := &Generator{Trains: trains}

	first, err := generator.Generate(line, 30, DefaultOperatingWindow)
	require.NoError(t, err)
	second, err := generator.Generate(line, 30, DefaultOperatingWindow)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, train := range append(first, second...) {
		assert.False(t, seen[train.Number], "train number %d issued twice", train.Number)
		seen[train.Number] = true
		assert.GreaterOrEqual(t, train.Number, 1000)
	}
}

func TestGenerateStopsAreSnapshots(t *testing.T) {
	_, line := makeLine(t)
	trains := NewTrainCollection()
	generator := &Generator{Trains: trains}

	generated, err := generator.Generate(line, 60, DefaultOperatingWindow)
	require.NoError(t, err)

	line.Stops[1].MinDwellTime = 42
	assert.Equal(t, 5, generated[0].Stops[1].MinDwellTime, "trains own a snapshot, not the line's stops")
}

func TestManagerAcceptProposals(t *testing.T) {
	g := lineNetwork(t)
	m := NewManager(g)

	summary, err := m.AcceptProposals([]proposal.ProposedLine{
		{Name: "R1", StationIDs: []string{"A", "B"}, FrequencyMinutes: 30},
		{Name: "R2", StationIDs: []string{"B", "C"}},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "2 lines added, with sample trains", summary)
	assert.Equal(t, 2, m.Lines.Count())
	// R1 every 30 minutes, R2 hourly (frequency 0 -> 60).
	assert.Equal(t, 16*2+16, m.Trains.Count())
}

func TestManagerAcceptProposalsWithoutTrains(t *testing.T) {
	g := lineNetwork(t)
	m := NewManager(g)

	summary, err := m.AcceptProposals([]proposal.ProposedLine{
		{Name: "R1", StationIDs: []string{"A", "B"}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "1 lines added", summary)
	assert.Equal(t, 0, m.Trains.Count())
}

func TestManagerOrphanSweep(t *testing.T) {
	g := lineNetwork(t)
	m := NewManager(g)

	_, err := m.AcceptProposals([]proposal.ProposedLine{
		{Name: "R1", StationIDs: []string{"A", "B"}},
		{Name: "R2", StationIDs: []string{"B", "C"}},
	}, true)
	require.NoError(t, err)

	lineID := m.Lines.All()[0].ID
	require.NoError(t, m.RemoveLine(lineID))

	// Trains survive line removal until the explicit sweep.
	assert.Equal(t, 32, m.Trains.Count())

	removed := m.SweepOrphanTrains()
	assert.Equal(t, 16, removed)
	assert.Equal(t, 16, m.Trains.Count())

	for _, train := range m.Trains.All() {
		assert.NotNil(t, m.Lines.ByID(train.LineID))
	}
}

func TestDayTimeParsing(t *testing.T) {
	parsed, err := ParseDayTime("06:30")
	require.NoError(t, err)
	assert.Equal(t, DayTime{Hour: 6, Minute: 30}, parsed)
	assert.Equal(t, "06:30", parsed.String())
	assert.Equal(t, 390.0, parsed.Minutes())

	_, err = ParseDayTime("25:00")
	assert.Error(t, err)
	_, err = ParseDayTime("nonsense")
	assert.Error(t, err)
}

func TestTrainCollectionDuplicate(t *testing.T) {
	trains := NewTrainCollection()
	require.NoError(t, trains.Add(&Train{ID: "t1", Number: 1000}))

	err := trains.Add(&Train{ID: "t1", Number: 1001})
	assert.ErrorIs(t, err, railnet.ErrDuplicateID)
	assert.Equal(t, 1, trains.Count())

	// Externally numbered trains push the counter past them.
	require.NoError(t, trains.Add(&Train{ID: "t2", Number: 2500}))
	assert.Equal(t, 2501, trains.NextNumber())
}
