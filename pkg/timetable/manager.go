package timetable

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fdcrail/railmanager/pkg/proposal"
	"github.com/fdcrail/railmanager/pkg/railnet"
)

// Manager is the orchestration surface the UI collaborator drives. It
// owns the line and train collections; the core components stay pure and
// the manager persists their results back into shared state.
type Manager struct {
	Graph  *railnet.NetworkGraph
	Lines  *LineCollection
	Trains *TrainCollection
}

func NewManager(graph *railnet.NetworkGraph) *Manager {
	return &Manager{
		Graph:  graph,
		Lines:  NewLineCollection(),
		Trains: NewTrainCollection(),
	}
}

// AcceptProposals instantiates every accepted proposal and, when asked,
// generates sample trains at each line's frequency over the default
// operating window. It returns the plain summary string shown to the
// operator. The batch fails fast: on error the already-created lines of
// this call stay (each append was exactly-once), the failing proposal and
// the rest are not applied.
func (m *Manager) AcceptProposals(proposals []proposal.ProposedLine, withSampleTrains bool) (string, error) {
	instantiator := &Instantiator{Graph: m.Graph, Lines: m.Lines}
	generator := &Generator{Trains: m.Trains}

	added := 0
	for _, p := range proposals {
		line, err := instantiator.Instantiate(p)
		if err != nil {
			return "", err
		}
		added++

		if !withSampleTrains {
			continue
		}

		if _, err := generator.Generate(line, line.FrequencyMinutes, DefaultOperatingWindow); err != nil {
			return "", err
		}
	}

	summary := fmt.Sprintf("%d lines added", added)
	if withSampleTrains {
		summary += ", with sample trains"
	}

	log.Info().Int("lines", added).Bool("sampletrains", withSampleTrains).Msg("Accepted line proposals")

	return summary, nil
}

// RemoveLine deletes a line. Trains keep their weak reference; call
// SweepOrphanTrains afterwards to drop them.
func (m *Manager) RemoveLine(id string) error {
	return m.Lines.Remove(id)
}

// SweepOrphanTrains removes trains referencing lines that no longer
// exist and returns how many were dropped.
func (m *Manager) SweepOrphanTrains() int {
	removed := m.Trains.SweepOrphans(m.Lines)
	if len(removed) > 0 {
		log.Info().Int("trains", len(removed)).Msg("Swept orphaned trains")
	}

	return len(removed)
}
