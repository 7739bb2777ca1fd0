package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createStationsIndexes()
	createRoutesIndexes()
	createSchedulesIndexes()
	createAvailabilityIndexes()
}

func createStationsIndexes() {
	stationsCollection := GetCollection("stations")
	stationsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := stationsCollection.Indexes().CreateMany(context.Background(), stationsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createRoutesIndexes() {
	routesCollection := GetCollection("routes")
	routesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "sourcestationref", Value: 1},
				{Key: "destinationstationref", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "transporttype", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := routesCollection.Indexes().CreateMany(context.Background(), routesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createSchedulesIndexes() {
	schedulesCollection := GetCollection("schedules")
	schedulesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "routeref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "departuretime", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := schedulesCollection.Indexes().CreateMany(context.Background(), schedulesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createAvailabilityIndexes() {
	availabilityCollection := GetCollection("availability")
	availabilityIndex := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "scheduleref", Value: 1},
				{Key: "date", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := availabilityCollection.Indexes().CreateMany(context.Background(), availabilityIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
