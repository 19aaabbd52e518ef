package model

import "time"

// UserAccessToken is a short-lived credential obtained with a user's API key.
// Expiry is absolute (issuance + 1 hour), never sliding; expired rows are
// purged lazily on resolution or by the background sweeper.
type UserAccessToken struct {
	TokenID     string    `bson:"token_id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	AccessToken string    `bson:"access_token" json:"access_token"`
	ExpiresOn   time.Time `bson:"expires_on" json:"expires_on"`
}

// Expired reports whether the token is no longer valid at the given instant.
func (t *UserAccessToken) Expired(now time.Time) bool {
	return !t.ExpiresOn.After(now)
}
