package database

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/timetable"
)

// UpsertNetwork stores a network document keyed by name.
func UpsertNetwork(ctx context.Context, network *railnet.NetworkGraph) error {
	collection := GetCollection("networks")

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"name": network.Name}, network, opts)

	return err
}

// GetNetwork loads a network by name and rebuilds its id indexes.
func GetNetwork(ctx context.Context, name string) (*railnet.NetworkGraph, error) {
	collection := GetCollection("networks")

	var network railnet.NetworkGraph
	if err := collection.FindOne(ctx, bson.M{"name": name}).Decode(&network); err != nil {
		return nil, err
	}

	network.Reindex()

	return &network, nil
}

// UpsertLines writes each line keyed by id, fanning the writes out on a
// bounded pool.
func UpsertLines(ctx context.Context, lines []*timetable.RailwayLine) error {
	collection := GetCollection("railway_lines")

	p := pool.New().WithErrors().WithMaxGoroutines(16)
	for _, line := range lines {
		p.Go(func() error {
			opts := options.Replace().SetUpsert(true)
			_, err := collection.ReplaceOne(ctx, bson.M{"id": line.ID}, line, opts)

			return err
		})
	}

	return p.Wait()
}

// UpsertTrains writes each train keyed by id, same fan-out as lines.
func UpsertTrains(ctx context.Context, trains []*timetable.Train) error {
	collection := GetCollection("trains")

	p := pool.New().WithErrors().WithMaxGoroutines(16)
	for _, train := range trains {
		p.Go(func() error {
			opts := options.Replace().SetUpsert(true)
			_, err := collection.ReplaceOne(ctx, bson.M{"id": train.ID}, train, opts)

			return err
		})
	}

	return p.Wait()
}

// GetLines loads every stored railway line.
func GetLines(ctx context.Context) ([]*timetable.RailwayLine, error) {
	collection := GetCollection("railway_lines")

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var lines []*timetable.RailwayLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

// GetTrains loads every stored train.
func GetTrains(ctx context.Context) ([]*timetable.Train, error) {
	collection := GetCollection("trains")

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var trains []*timetable.Train
	if err := cursor.All(ctx, &trains); err != nil {
		return nil, err
	}

	return trains, nil
}
