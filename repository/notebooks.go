package repository

import (
	"context"
	"fmt"
	"os"

	"cloudcache/model"
	"cloudcache/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotebookRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotebookRepo(client *mongo.Client) *NotebookRepo {
	return &NotebookRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notebooks"),
	}
}

func (r *NotebookRepo) AddNotebook(ctx context.Context, notebook *model.Notebook) error {
	timer := utils.TrackDBOperation("insert", "notebooks")
	defer timer.ObserveDuration()

	if notebook.UserID == "" || notebook.Name == "" {
		utils.TrackError("database", "invalid_notebook_data")
		return fmt.Errorf("invalid notebook data: missing required fields")
	}

	_, err := r.MongoCollection.InsertOne(ctx, notebook)
	if err != nil {
		utils.TrackError("database", "notebook_creation_failed")
		return fmt.Errorf("failed to add notebook: %w", mapWriteError(err))
	}

	return nil
}

// FindNotebook filters on both notebook ID and owner in one query, so a
// notebook that exists but belongs to someone else looks exactly like one
// that does not exist. Returns (nil, nil) when nothing matches.
func (r *NotebookRepo) FindNotebook(ctx context.Context, notebookID, userID string) (*model.Notebook, error) {
	timer := utils.TrackDBOperation("find", "notebooks")
	defer timer.ObserveDuration()

	var notebook model.Notebook
	filter := bson.D{
		{Key: "notebook_id", Value: notebookID},
		{Key: "user_id", Value: userID},
	}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&notebook)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "notebook_lookup_error")
		return nil, err
	}

	return &notebook, nil
}

// ListByUser returns a user's notebooks in creation order.
func (r *NotebookRepo) ListByUser(ctx context.Context, userID string) ([]*model.Notebook, error) {
	timer := utils.TrackDBOperation("find", "notebooks")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "user_id", Value: userID}}
	// created_on stores millisecond precision; _id breaks same-millisecond
	// ties in insertion order.
	opts := options.Find().SetSort(bson.D{
		{Key: "created_on", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "notebook_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	var notebooks []*model.Notebook
	if err := cursor.All(ctx, &notebooks); err != nil {
		utils.TrackError("database", "notebook_decode_error")
		return nil, err
	}

	return notebooks, nil
}

func (r *NotebookRepo) DeleteNotebook(ctx context.Context, notebookID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notebooks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.D{{Key: "notebook_id", Value: notebookID}})
	if err != nil {
		utils.TrackError("database", "notebook_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}

// DeleteByUser removes every notebook belonging to a user, part of the
// user-deletion cascade. Callers delete the child notes first.
func (r *NotebookRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notebooks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx,
		bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		utils.TrackError("database", "notebook_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
