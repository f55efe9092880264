// Package proposal holds candidate railway lines and the rules that turn
// untrusted candidates into instantiable ones. Candidate selection itself
// is pluggable: proposals may come from a remote optimisation service or
// from the built-in deterministic path proposer, and in both cases pass
// through the same validation before acceptance.
package proposal

import (
	"errors"
	"fmt"

	"github.com/fdcrail/railmanager/pkg/railnet"
)

// ErrInvalidProposal is returned for candidates whose station sequence is
// too short or not graph-adjacent.
var ErrInvalidProposal = errors.New("proposal: invalid candidate")

// DefaultFrequencyMinutes applies when a proposal carries frequency <= 0.
// The fallback happens at instantiation/generation time, never here.
const DefaultFrequencyMinutes = 60

// ProposedLine is an ephemeral line candidate. It is consumed on
// acceptance and never mutated after creation.
type ProposedLine struct {
	Name       string   `yaml:"name" json:"name"`
	StationIDs []string `yaml:"stationids" json:"stationids"`

	Colour           string `yaml:"colour,omitempty" json:"colour,omitempty"`
	FrequencyMinutes int    `yaml:"frequencyminutes" json:"frequencyminutes"`
}

// defaultPalette cycles over proposals with no explicit colour.
var defaultPalette = []string{"#C8102E", "#0057B8", "#00843D", "#FFB81C", "#6E2585"}

// Validate rejects candidates whose consecutive stations are not joined
// by at least one edge, or whose sequence is shorter than two stations.
func Validate(g *railnet.NetworkGraph, p ProposedLine) error {
	if len(p.StationIDs) < 2 {
		return fmt.Errorf("%w: %q has %d stations", ErrInvalidProposal, p.Name, len(p.StationIDs))
	}

	for i := 0; i+1 < len(p.StationIDs); i++ {
		from, to := p.StationIDs[i], p.StationIDs[i+1]

		if g.NodeByID(from) == nil {
			return fmt.Errorf("%w: %q references unknown station %q", ErrInvalidProposal, p.Name, from)
		}

		adjacent := false
		for _, neighbor := range g.NeighborsOf(from) {
			if neighbor.Target.ID == to {
				adjacent = true
				break
			}
		}

		if !adjacent {
			return fmt.Errorf("%w: %q stations %q and %q are not adjacent", ErrInvalidProposal, p.Name, from, to)
		}
	}

	return nil
}

// Normalize fills defaults on a validated candidate: a palette colour when
// none was given. The index keeps colours distinct within a batch.
func Normalize(p ProposedLine, index int) ProposedLine {
	if p.Colour == "" {
		p.Colour = defaultPalette[index%len(defaultPalette)]
	}

	return p
}
