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
)

type TokenRepo struct {
	MongoCollection *mongo.Collection
}

func GetTokenRepo(client *mongo.Client) *TokenRepo {
	return &TokenRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("access_tokens"),
	}
}

func (r *TokenRepo) AddToken(ctx context.Context, token *model.UserAccessToken) error {
	timer := utils.TrackDBOperation("insert", "access_tokens")
	defer timer.ObserveDuration()

	if token.UserID == "" || token.AccessToken == "" {
		utils.TrackError("database", "invalid_token_data")
		return fmt.Errorf("invalid token data: missing required fields")
	}

	_, err := r.MongoCollection.InsertOne(ctx, token)
	if err != nil {
		utils.TrackError("database", "token_creation_failed")
		return fmt.Errorf("failed to store access token: %w", err)
	}

	return nil
}

// FindByValue returns the token row matching the given value, expired or not.
// Returns (nil, nil) when no token matches.
func (r *TokenRepo) FindByValue(ctx context.Context, value string) (*model.UserAccessToken, error) {
	timer := utils.TrackDBOperation("find", "access_tokens")
	defer timer.ObserveDuration()

	var token model.UserAccessToken
	filter := bson.D{{Key: "access_token", Value: value}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "token_lookup_error")
		return nil, err
	}

	return &token, nil
}

// PurgeExpired deletes every token whose expiry has passed. Concurrent
// callers may race on individual rows; delete-if-present makes that safe.
func (r *TokenRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	timer := utils.TrackDBOperation("delete", "access_tokens")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "expires_on", Value: bson.D{{Key: "$lte", Value: now}}}}

	result, err := r.MongoCollection.DeleteMany(ctx, filter)
	if err != nil {
		utils.TrackError("database", "token_purge_failed")
		return 0, fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	utils.TrackTokensPurged(result.DeletedCount)
	return result.DeletedCount, nil
}

// DeleteByUser removes every token belonging to a user, part of the
// user-deletion cascade.
func (r *TokenRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "access_tokens")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx,
		bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		utils.TrackError("database", "token_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
