package repository

import (
	"context"

	"MediBook/config/db"
	"MediBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository hands out named sequences. Each Next is a single
// server-side $inc, so concurrent callers never observe the same value.
type CounterRepository struct {
	coll *mongo.Collection
}

func NewCounterRepository(coll *mongo.Collection) *CounterRepository {
	return &CounterRepository{coll: coll}
}

/*
* Increment seq of the named counter and fetch the new value in one command
* The counter document is created on first use, so the first value is 1
* Two first-use upserts can race on _id; the loser retries once
 */
func (r *CounterRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}

	var counter models.Counter
	err := db.FindOneAndUpdate(ctx, r.coll, bson.M{"_id": name}, update, &counter, opts)
	if mongo.IsDuplicateKeyError(err) {
		err = db.FindOneAndUpdate(ctx, r.coll, bson.M{"_id": name}, update, &counter, opts)
	}
	if err != nil {
		return 0, mapError(err)
	}
	return counter.Seq, nil
}

// SeedAtLeast raises the counter to value if it is lower. It never lowers it.
func (r *CounterRepository) SeedAtLeast(ctx context.Context, name string, value int64) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$max": bson.M{"seq": value}}, opts)
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.coll.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$max": bson.M{"seq": value}}, opts)
	}
	return mapError(err)
}
