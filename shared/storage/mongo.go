// Package storage is the MongoDB persistence layer for users, content
// requests, and creator applications.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"holokit/shared/config"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

const (
	usersCollection        = "users"
	requestsCollection     = "content_requests"
	applicationsCollection = "creator_applications"
)

// Store wraps the Mongo client and database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	log.Println("Connecting to MongoDB...")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	log.Println("MongoDB connected successfully")
	return &Store{client: client, db: client.Database(cfg.Name)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	log.Println("Closing MongoDB connection...")
	return s.client.Disconnect(ctx)
}

func (s *Store) users() *mongo.Collection        { return s.db.Collection(usersCollection) }
func (s *Store) requests() *mongo.Collection     { return s.db.Collection(requestsCollection) }
func (s *Store) applications() *mongo.Collection { return s.db.Collection(applicationsCollection) }
