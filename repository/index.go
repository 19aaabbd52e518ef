package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes every uniqueness invariant rests on.
// check-then-insert sequences in the usecases are only advisory; these
// unique indexes are what actually serializes racing creates.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("unique_username").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
	}

	tokenIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "access_token", Value: 1}},
			Options: options.Index().
				SetName("token_value_index"),
		},
		// Purge scans delete on expiry; keep it indexed.
		{
			Keys: bson.D{{Key: "expires_on", Value: 1}},
			Options: options.Index().
				SetName("token_expiry_index"),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("token_user_index"),
		},
	}

	notebookIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("unique_user_notebook_name").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_on", Value: 1},
			},
			Options: options.Index().
				SetName("user_notebooks_date"),
		},
	}

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "notebook_id", Value: 1},
				{Key: "key", Value: 1},
			},
			Options: options.Index().
				SetName("unique_notebook_note_key").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "notebook_id", Value: 1},
				{Key: "created_on", Value: 1},
			},
			Options: options.Index().
				SetName("notebook_notes_date"),
		},
	}

	collections := []struct {
		name    string
		indexes []mongo.IndexModel
	}{
		{"users", userIndexes},
		{"access_tokens", tokenIndexes},
		{"notebooks", notebookIndexes},
		{"notes", noteIndexes},
	}

	for _, c := range collections {
		if _, err := db.Collection(c.name).Indexes().CreateMany(ctx, c.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", c.name, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
