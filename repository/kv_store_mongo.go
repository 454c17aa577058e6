package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoStore struct {
	DB       *mongo.Client
	Database string
}

func NewMongoStore(db *mongo.Client, database string) *MongoStore {
	if database == "" {
		database = "transportledger"
	}
	return &MongoStore{DB: db, Database: database}
}

func (r *MongoStore) collection() *mongo.Collection {
	return r.DB.Database(r.Database).Collection("kv_store")
}

func (r *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.Value, true, nil
}

func (r *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := r.collection().ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()},
		options.Replace().SetUpsert(true),
	)
	return err
}
