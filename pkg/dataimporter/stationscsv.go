package dataimporter

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/fdcrail/railmanager/pkg/railnet"
)

// stationRecord is one row of a stations CSV export (the shape produced
// by the OpenStreetMap fetch tooling).
type stationRecord struct {
	ID               string  `csv:"id"`
	Name             string  `csv:"name"`
	Type             string  `csv:"type"`
	Latitude         float64 `csv:"lat"`
	Longitude        float64 `csv:"lon"`
	PlatformCapacity int     `csv:"platforms"` // 0 means unknown
}

// ImportStationsCSV adds the stations of a CSV stream to a network.
// Unknown type values fail rather than defaulting.
func ImportStationsCSV(network *railnet.NetworkGraph, r io.Reader) (int, error) {
	var records []stationRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return 0, err
	}

	for _, record := range records {
		nodeType := railnet.NodeType(record.Type)
		switch nodeType {
		case railnet.NodeTypeStation, railnet.NodeTypeInterchange, railnet.NodeTypeDepot:
		default:
			return 0, fmt.Errorf("dataimporter: unknown node type %q for station %q", record.Type, record.ID)
		}

		node := &railnet.Node{
			ID:       record.ID,
			Name:     record.Name,
			Type:     nodeType,
			Location: &railnet.Location{Latitude: record.Latitude, Longitude: record.Longitude},
		}
		if record.PlatformCapacity > 0 {
			capacity := record.PlatformCapacity
			node.PlatformCapacity = &capacity
		}

		if err := network.AddNode(node); err != nil {
			return 0, err
		}
	}

	return len(records), nil
}
