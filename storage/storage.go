// Package storage owns the connection to the document store and the shared
// persistence error vocabulary used by every resource module.
package storage

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultURI      = "mongodb://localhost:27017"
	defaultDatabase = "storeadmin"
)

// Config holds document store connection settings.
type Config struct {
	URI      string
	Database string
}

// LoadConfig reads store settings from the environment, falling back to
// local defaults.
func LoadConfig() Config {
	cfg := Config{
		URI:      defaultURI,
		Database: defaultDatabase,
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.URI = uri
	}
	if db := os.Getenv("MONGO_DB"); db != "" {
		cfg.Database = db
	}

	return cfg
}

// Connect dials the document store and verifies the connection with a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Disconnect with a fresh context; ctx may already be done.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("document store ping failed: %w", err)
	}

	return client, nil
}
