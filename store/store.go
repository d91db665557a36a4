// Package store wraps the MongoDB driver behind the small set of document
// operations the API needs: insert one, list, count, and a few
// connectivity probes for the diagnostic endpoint.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConfigured is returned by every data operation when no connection
// string was provided at startup.
var ErrNotConfigured = errors.New("no database configured")

const connectTimeout = 10 * time.Second

// Store is the long-lived database handle shared by all requests.
type Store struct {
	uri    string
	dbName string
	client *mongo.Client
	db     *mongo.Database
}

// New builds an unconnected store. It never touches the network; call
// Connect before use. An empty uri yields a degraded store whose data
// operations return ErrNotConfigured.
func New(uri, dbName string) *Store {
	return &Store{uri: uri, dbName: dbName}
}

// Connect dials the database and verifies the connection with a ping.
func (s *Store) Connect(ctx context.Context) error {
	if s.uri == "" {
		return ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}
	s.client = client
	s.db = client.Database(s.dbName)
	return nil
}

// Close releases the underlying client, if any.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Configured reports whether a connection string was provided.
func (s *Store) Configured() bool {
	return s.uri != ""
}

// Connected reports whether Connect succeeded.
func (s *Store) Connected() bool {
	return s.db != nil
}

// DatabaseName returns the name of the database this store writes to.
func (s *Store) DatabaseName() string {
	return s.dbName
}

// Ping verifies the server is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotConfigured
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Create inserts a single document and returns its generated ID.
func (s *Store) Create(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// List returns up to limit raw documents from a collection in backend
// order. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, collection string, limit int64) ([]bson.Raw, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []bson.Raw
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of documents matching filter. A nil filter
// counts everything.
func (s *Store) Count(ctx context.Context, collection string, filter any) (int64, error) {
	if s.db == nil {
		return 0, ErrNotConfigured
	}
	if filter == nil {
		filter = bson.D{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

// Collections lists the collection names present in the database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	return s.db.ListCollectionNames(ctx, bson.D{})
}
