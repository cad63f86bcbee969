package database

import (
	"context"
	"fmt"
	"time"

	"github.com/silfira/realty/api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the MongoDB client and the database handle the adapters use.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// OpenMongo connects to MongoDB and verifies connectivity with a ping
// against the primary.
func OpenMongo(ctx context.Context, cfg config.DatabaseConfig) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURL).
		SetConnectTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.MongoDBName),
	}, nil
}

// Ping checks if the MongoDB connection is alive.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
