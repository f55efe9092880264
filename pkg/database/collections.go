package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createNetworksIndexes()
	createScheduleIndexes()
}

func createNetworksIndexes() {
	networksCollection := GetCollection("networks")
	networksIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "nodes.id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "edges.id", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := networksCollection.Indexes().CreateMany(context.Background(), networksIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createScheduleIndexes() {
	linesCollection := GetCollection("railway_lines")
	linesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "originid", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "destinationid", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := linesCollection.Indexes().CreateMany(context.Background(), linesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	trainsCollection := GetCollection("trains")
	trainsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "number", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "lineid", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = trainsCollection.Indexes().CreateMany(context.Background(), trainsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
