package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloudcache/model"
	"cloudcache/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func GetNoteRepo(client *mongo.Client) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

func (r *NoteRepo) AddNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.NotebookID == "" || note.Key == "" {
		utils.TrackError("database", "invalid_note_data")
		return fmt.Errorf("invalid note data: missing required fields")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("failed to add note: %w", mapWriteError(err))
	}

	return nil
}

// FindNote looks a note up by ID alone; ownership is checked one level up
// through the owning notebook. Returns (nil, nil) when no note matches.
func (r *NoteRepo) FindNote(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	filter := bson.D{{Key: "note_id", Value: noteID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}

	return &note, nil
}

// ListByNotebook returns a notebook's notes in creation order.
func (r *NoteRepo) ListByNotebook(ctx context.Context, notebookID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "notebook_id", Value: notebookID}}
	// created_on stores millisecond precision; _id breaks same-millisecond
	// ties in insertion order.
	opts := options.Find().SetSort(bson.D{
		{Key: "created_on", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_decode_error")
		return nil, err
	}

	return notes, nil
}

// UpdateValue replaces a note's value and refreshes its last_updated stamp.
func (r *NoteRepo) UpdateValue(ctx context.Context, noteID, value string, now time.Time) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "note_id", Value: noteID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "value", Value: value},
			{Key: "last_updated", Value: now},
		}},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (r *NoteRepo) DeleteNote(ctx context.Context, noteID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.D{{Key: "note_id", Value: noteID}})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}

// DeleteByNotebooks removes every note in the given notebooks, part of the
// notebook and user deletion cascades.
func (r *NoteRepo) DeleteByNotebooks(ctx context.Context, notebookIDs []string) (int64, error) {
	if len(notebookIDs) == 0 {
		return 0, nil
	}

	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "notebook_id", Value: bson.D{{Key: "$in", Value: notebookIDs}}}}

	result, err := r.MongoCollection.DeleteMany(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
