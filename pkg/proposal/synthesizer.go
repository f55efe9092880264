package proposal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/routing"
)

// Proposer produces raw line candidates over a node subset. External
// heuristics (the remote optimisation service) implement this; their
// output is treated as untrusted and validated like any other candidate.
type Proposer interface {
	Propose(g *railnet.NetworkGraph, nodes []*railnet.Node) ([]ProposedLine, error)
}

// Synthesizer filters the network down to an area of interest, asks a
// Proposer for candidates, and keeps only the valid, normalized ones.
type Synthesizer struct {
	Graph    *railnet.NetworkGraph
	Proposer Proposer
}

// Candidates runs the full pipeline. Invalid candidates are dropped with
// a log line rather than failing the batch; a proposer is expected to
// misfire occasionally.
func (s *Synthesizer) Candidates(filter *AreaFilter) ([]ProposedLine, error) {
	nodes := s.Graph.Nodes
	if filter != nil {
		var err error
		nodes, err = filter.Select(s.Graph)
		if err != nil {
			return nil, err
		}
	}

	raw, err := s.Proposer.Propose(s.Graph, nodes)
	if err != nil {
		return nil, err
	}

	var candidates []ProposedLine
	for _, p := range raw {
		if err := Validate(s.Graph, p); err != nil {
			log.Debug().Err(err).Str("proposal", p.Name).Msg("Dropping invalid line candidate")
			continue
		}

		candidates = append(candidates, Normalize(p, len(candidates)))
	}

	return candidates, nil
}

// PathProposer is the built-in deterministic candidate source: for every
// ordered pair of filtered nodes it proposes the shortest path between
// them. MaxCandidates caps the batch; 0 means no cap.
type PathProposer struct {
	FrequencyMinutes int
	MaxCandidates    int
}

func (p PathProposer) Propose(g *railnet.NetworkGraph, nodes []*railnet.Node) ([]ProposedLine, error) {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}
	sort.Strings(ids)

	var proposals []ProposedLine
	for _, from := range ids {
		for _, to := range ids {
			if from == to {
				continue
			}
			if p.MaxCandidates > 0 && len(proposals) >= p.MaxCandidates {
				return proposals, nil
			}

			route, err := routing.ShortestPath(g, from, to)
			if errors.Is(err, routing.ErrNoPath) {
				continue
			} else if err != nil {
				return nil, err
			}

			if len(route.StationIDs) < 2 {
				continue
			}

			proposals = append(proposals, ProposedLine{
				Name:             fmt.Sprintf("%s - %s", g.NodeByID(from).Name, g.NodeByID(to).Name),
				StationIDs:       route.StationIDs,
				FrequencyMinutes: p.FrequencyMinutes,
			})
		}
	}

	return proposals, nil
}
