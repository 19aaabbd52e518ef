// Package testutil holds shared fixtures for tests that run against a live
// local MongoDB. Tests skip themselves when no server is reachable.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to the test MongoDB, skipping the test when the
// server is unreachable. The client is disconnected on cleanup.
func NewMongoClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", uri, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not reachable at %s: %v", uri, err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client
}

// NewTestDatabase returns a uniquely named database that is dropped on
// cleanup, so parallel test runs never see each other's rows.
func NewTestDatabase(t *testing.T, client *mongo.Client) *mongo.Database {
	t.Helper()

	name := fmt.Sprintf("cloudcache_test_%s", uuid.NewString()[:8])
	db := client.Database(name)

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
	})

	return db
}
