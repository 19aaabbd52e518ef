package services

import (
	"context"
	"log"
	"time"

	"cloudcache/repository"
)

// TokenSweeper deletes expired access tokens on a timer. Resolution already
// purges inline, so the sweeper only bounds how long expired rows linger
// when nobody is resolving; running both never conflicts because purging is
// delete-if-present.
type TokenSweeper struct {
	TokenRepo *repository.TokenRepo
	Interval  time.Duration
}

func NewTokenSweeper(tokenRepo *repository.TokenRepo, interval time.Duration) *TokenSweeper {
	return &TokenSweeper{
		TokenRepo: tokenRepo,
		Interval:  interval,
	}
}

// Run sweeps until ctx is cancelled. Call from its own goroutine.
func (s *TokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := s.TokenRepo.PurgeExpired(ctx, time.Now())
			if err != nil {
				log.Printf("Token sweep failed: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Token sweep removed %d expired tokens", purged)
			}
		}
	}
}
