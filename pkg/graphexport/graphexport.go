// Package graphexport mirrors a rail network into neo4j so the topology
// can be explored with graph queries: one Station node per network node,
// one SEGMENT relationship per track segment.
package graphexport

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/util"
)

func connect(ctx context.Context) (neo4j.DriverWithContext, error) {
	uri := "neo4j://localhost"
	user := "neo4j"
	password := "neo4j"

	env := util.GetEnvironmentVariables()
	if env["RAILMANAGER_NEO4J_URI"] != "" {
		uri = env["RAILMANAGER_NEO4J_URI"]
	}
	if env["RAILMANAGER_NEO4J_USER"] != "" {
		user = env["RAILMANAGER_NEO4J_USER"]
	}
	if env["RAILMANAGER_NEO4J_PASSWORD"] != "" {
		password = env["RAILMANAGER_NEO4J_PASSWORD"]
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}

// Export replaces the neo4j graph contents with the given network.
func Export(ctx context.Context, network *railnet.NetworkGraph) error {
	driver, err := connect(ctx)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: "neo4j"})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, "MATCH (a) DETACH DELETE a", map[string]any{}); err != nil {
		return err
	}

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, node := range network.Nodes {
			_, err := tx.Run(
				ctx,
				"CREATE (s:Station {id: $id, name: $name, type: $type})",
				map[string]any{
					"id":   node.ID,
					"name": node.Name,
					"type": string(node.Type),
				})
			if err != nil {
				return nil, err
			}
		}

		for _, edge := range network.Edges {
			_, err := tx.Run(
				ctx, `
				MATCH (from:Station {id: $from})
				MATCH (to:Station {id: $to})
				CREATE (from)-[:SEGMENT {id: $id, distance: $distance, tracktype: $tracktype, maxspeed: $maxspeed, capacity: $capacity}]->(to)
				`, map[string]any{
					"id":        edge.ID,
					"from":      edge.From,
					"to":        edge.To,
					"distance":  edge.Distance,
					"tracktype": string(edge.TrackType),
					"maxspeed":  edge.MaxSpeed,
					"capacity":  edge.EffectiveCapacity(),
				})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("network", network.Name).
		Int("stations", len(network.Nodes)).
		Int("segments", len(network.Edges)).
		Msg("Exported network to neo4j")

	return nil
}
