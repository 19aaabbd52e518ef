package usecase

import (
	"context"
	"fmt"
	"time"

	"cloudcache/model"
	"cloudcache/repository"
	"cloudcache/services"
	"cloudcache/utils"
)

// TokenService turns a verified (username, API key) pair into a time-limited
// access token and resolves presented tokens back to their owning user.
type TokenService struct {
	TokensRepo *repository.TokenRepo
	UsersRepo  *repository.UserRepo
	TokenTTL   time.Duration
}

func NewTokenService(tokensRepo *repository.TokenRepo, usersRepo *repository.UserRepo, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		TokensRepo: tokensRepo,
		UsersRepo:  usersRepo,
		TokenTTL:   ttl,
	}
}

// Issue verifies the API key and stores a fresh token expiring TokenTTL from
// now. Issuance performs no purge; that is a read-time concern of Resolve.
// Nothing revokes earlier tokens, so several can be valid at once.
func (s *TokenService) Issue(ctx context.Context, username, apiKey string) (*model.UserAccessToken, error) {
	user, err := s.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "issue")
		return nil, fmt.Errorf("the user %q: %w", username, ErrUserNotFound)
	}

	if user.APIKey != apiKey {
		utils.TrackAuthAttempt("failure", "issue")
		return nil, fmt.Errorf("the API key provided for user %q: %w", username, ErrInvalidAPIKey)
	}

	value, err := services.GenerateTokenValue()
	if err != nil {
		return nil, err
	}

	token := &model.UserAccessToken{
		TokenID:     utils.GenerateID(),
		UserID:      user.UserID,
		AccessToken: value,
		ExpiresOn:   time.Now().Add(s.TokenTTL),
	}

	if err := s.TokensRepo.AddToken(ctx, token); err != nil {
		return nil, err
	}

	utils.TrackAuthAttempt("success", "issue")
	utils.TrackTokenIssued()
	return token, nil
}

// Resolve is the single authorization primitive. It purges expired tokens,
// then matches the presented value against what survived. Every failure is
// the same ErrUnauthorized so callers cannot probe which part was wrong.
// Expiry is never extended and no access is counted.
func (s *TokenService) Resolve(ctx context.Context, tokenValue string) (*model.User, error) {
	now := time.Now()

	if _, err := s.TokensRepo.PurgeExpired(ctx, now); err != nil {
		return nil, err
	}

	token, err := s.TokensRepo.FindByValue(ctx, tokenValue)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Expired(now) {
		utils.TrackAuthAttempt("failure", "resolve")
		return nil, ErrUnauthorized
	}

	user, err := s.UsersRepo.FindUser(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "resolve")
		return nil, ErrUnauthorized
	}

	utils.TrackAuthAttempt("success", "resolve")
	return user, nil
}
