package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

/*
* Connect to the given uri and ping the primary
* Keep client and database for OpenCollections
 */
func Connect(ctx context.Context, uri string, database string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	Client = client
	DB = client.Database(database)
	log.Info().Str("database", database).Msg("Database connected")
	return DB, nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	err := Client.Disconnect(ctx)
	Client, DB = nil, nil
	return err
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}, opts ...*options.FindOneOptions) error {
	return coll.FindOne(ctx, filter, opts...).Decode(result)
}

// FindAll decodes every match into a non-nil slice.
func FindAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func CreateOne(ctx context.Context, coll *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, document)
}

func FindOneAndUpdate(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}, result interface{}, opts ...*options.FindOneAndUpdateOptions) error {
	return coll.FindOneAndUpdate(ctx, filter, update, opts...).Decode(result)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
