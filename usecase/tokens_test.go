package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestTokenService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.registerUser(t, "token-owner")
	tokens := f.tokenService(time.Hour)

	t.Run("IssueUnknownUser", func(t *testing.T) {
		_, err := tokens.Issue(ctx, "ghost", user.APIKey)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("IssueWrongAPIKey", func(t *testing.T) {
		_, err := tokens.Issue(ctx, user.Username, "00000000000000000000000000000000")
		if !errors.Is(err, ErrInvalidAPIKey) {
			t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
		}
	})

	t.Run("IssueAndResolve", func(t *testing.T) {
		before := time.Now()
		token, err := tokens.Issue(ctx, user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}

		if !regexp.MustCompile(`^[0-9A-F]{32}$`).MatchString(token.AccessToken) {
			t.Fatalf("expected 32 uppercase hex token, got %q", token.AccessToken)
		}

		// absolute expiry, one hour out
		ttl := token.ExpiresOn.Sub(before)
		if ttl < 59*time.Minute || ttl > 61*time.Minute {
			t.Fatalf("expected ~1h expiry, got %s", ttl)
		}

		resolved, err := tokens.Resolve(ctx, token.AccessToken)
		if err != nil {
			t.Fatal("resolve failed", err)
		}
		if resolved.UserID != user.UserID {
			t.Fatalf("resolved wrong user: %s", resolved.UserID)
		}
	})

	t.Run("MultipleValidTokensPerUser", func(t *testing.T) {
		first, err := tokens.Issue(ctx, user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}
		second, err := tokens.Issue(ctx, user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}

		// issuing never revokes earlier tokens
		for _, value := range []string{first.AccessToken, second.AccessToken} {
			if _, err := tokens.Resolve(ctx, value); err != nil {
				t.Fatalf("token %q no longer resolves: %v", value, err)
			}
		}
	})

	t.Run("ResolveUnknownToken", func(t *testing.T) {
		_, err := tokens.Resolve(ctx, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("ResolveExpiredTokenPurges", func(t *testing.T) {
		short := f.tokenService(20 * time.Millisecond)
		token, err := short.Issue(ctx, user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}

		time.Sleep(50 * time.Millisecond)

		_, err = short.Resolve(ctx, token.AccessToken)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized after expiry, got %v", err)
		}

		// the resolution attempt must also have purged the row
		row, err := f.tokenRepo.FindByValue(ctx, token.AccessToken)
		if err != nil {
			t.Fatal("find token failed", err)
		}
		if row != nil {
			t.Fatal("expired token row survived resolution")
		}

		// a second resolve is the same failure, idempotently
		_, err = short.Resolve(ctx, token.AccessToken)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized on repeat, got %v", err)
		}
	})

	t.Run("PurgeLeavesLiveTokens", func(t *testing.T) {
		live, err := tokens.Issue(ctx, user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}

		if _, err := f.tokenRepo.PurgeExpired(ctx, time.Now()); err != nil {
			t.Fatal("purge failed", err)
		}

		if _, err := tokens.Resolve(ctx, live.AccessToken); err != nil {
			t.Fatalf("live token purged: %v", err)
		}
	})
}
