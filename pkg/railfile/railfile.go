// Package railfile reads and writes .rail documents: the field-keyed,
// human-readable YAML encoding a network and its schedule round-trip
// through. Optional attributes stay explicitly absent when unset; decode
// never fills defaults silently.
package railfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/timetable"
)

var ErrMalformedDocument = errors.New("railfile: malformed document")

// Document is one .rail file: a network plus the schedule built over it.
// Lines and trains are optional; plain network files carry only the graph.
type Document struct {
	Network *railnet.NetworkGraph    `yaml:"network"`
	Lines   []*timetable.RailwayLine `yaml:"lines,omitempty"`
	Trains  []*timetable.Train       `yaml:"trains,omitempty"`
}

func Encode(w io.Writer, doc *Document) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	return encoder.Encode(doc)
}

// Decode parses a document and replays the network through the graph
// mutation operations, so every structural invariant (unique ids, known
// endpoints, positive distances) holds on the result.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, err)
	}

	if doc.Network == nil {
		return nil, fmt.Errorf("%w: missing network", ErrMalformedDocument)
	}

	graph := railnet.NewNetworkGraph(doc.Network.Name)
	for _, node := range doc.Network.Nodes {
		if err := graph.AddNode(node); err != nil {
			return nil, err
		}
	}
	for _, edge := range doc.Network.Edges {
		if err := graph.AddEdge(edge); err != nil {
			return nil, err
		}
	}
	doc.Network = graph

	for _, line := range doc.Lines {
		if err := checkLine(line); err != nil {
			return nil, err
		}
	}
	for _, train := range doc.Trains {
		if train.ID == "" {
			return nil, fmt.Errorf("%w: train without id", ErrMalformedDocument)
		}
	}

	return &doc, nil
}

func checkLine(line *timetable.RailwayLine) error {
	if len(line.Stops) < 2 {
		return fmt.Errorf("%w: line %q has %d stops", ErrMalformedDocument, line.ID, len(line.Stops))
	}
	if line.OriginID != line.Stops[0].StationID || line.DestinationID != line.Stops[len(line.Stops)-1].StationID {
		return fmt.Errorf("%w: line %q endpoints disagree with stops", ErrMalformedDocument, line.ID)
	}

	return nil
}
