package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordCollection = "records"

type record struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore keeps each key as a single document in a records collection,
// with the JSON-encoded collection value as an opaque string. Whole-value
// reads and writes keep the same last-writer-wins semantics as the file
// backend.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore connects to the given URI and returns a store over the named
// database.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &MongoStore{coll: client.Database(dbName).Collection(recordCollection)}, nil
}

// Get reads the value stored under key into v.
func (m *MongoStore) Get(ctx context.Context, key string, v interface{}) error {
	var rec record
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(rec.Value), v)
}

// Put replaces the value stored under key, inserting the document if needed.
func (m *MongoStore) Put(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	opts := options.Replace().SetUpsert(true)
	_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": key}, record{ID: key, Value: string(b)}, opts)
	return err
}

// Delete removes the value stored under key.
func (m *MongoStore) Delete(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
