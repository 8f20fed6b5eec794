// Package database owns the document store connection lifecycle.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

// ConnectMongo creates the client and checks it with a ping. An unreachable
// server is logged as a warning: the driver reconnects lazily, so user writes
// simply fail until the server is back.
func ConnectMongo(ctx context.Context, uri, dbName string, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	logger.Info("Connecting to document store", zap.String("database", dbName))

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("Document store ping failed, continuing", zap.Error(err))
	} else {
		logger.Info("Successfully connected to document store")
	}

	return client, client.Database(dbName), nil
}

// CloseMongo disconnects the client. Safe to call with nil.
func CloseMongo(ctx context.Context, client *mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect document store", zap.Error(err))
		return
	}
	logger.Info("Document store connection closed")
}
