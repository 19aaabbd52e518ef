package config

import (
	"time"

	"cloudcache/utils"
)

type AuthConfig struct {
	TokenTTL      time.Duration // lifetime of an access token, absolute from issuance
	SweepInterval time.Duration // background purge cadence; 0 disables the sweeper
	RedisURL      string        // rate limiter backend; empty disables limiting
	RateLimit     int           // attempts per window on credential endpoints
	RateWindow    time.Duration
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		TokenTTL:      utils.GetEnvAsDuration("ACCESS_TOKEN_TTL", time.Hour),
		SweepInterval: utils.GetEnvAsDuration("TOKEN_SWEEP_INTERVAL", 0),
		RedisURL:      utils.GetEnvAsString("REDIS_URL", ""),
		RateLimit:     utils.GetEnvAsInt("AUTH_RATE_LIMIT", 30),
		RateWindow:    utils.GetEnvAsDuration("AUTH_RATE_WINDOW", time.Minute),
	}
}
