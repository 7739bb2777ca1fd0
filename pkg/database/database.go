package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sawaari/sawaari/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "sawaari"

func Connect() error {
	env := util.GetEnvironmentVariables()

	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	if env["SAWAARI_MONGODB_CONNECTION"] != "" {
		connectionString = env["SAWAARI_MONGODB_CONNECTION"]
	}

	if env["SAWAARI_MONGODB_DATABASE"] != "" {
		dbName = env["SAWAARI_MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	// Mongo may still be starting up alongside us, so give the first
	// ping a little patience
	pingBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	err = backoff.Retry(func() error {
		return client.Ping(context.Background(), nil)
	}, pingBackoff)
	if err != nil {
		return err
	}

	createIndexes()

	return nil
}

func Healthcheck() error {
	return MongoGlobalInstance.Client.Ping(context.Background(), nil)
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
