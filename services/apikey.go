package services

import (
	"crypto/rand"
	"fmt"
)

// GenerateAPIKey returns 128 random bits rendered as 32 uppercase hex
// characters. API keys and access token values share this scheme; collisions
// are astronomically unlikely, so no collision check is performed.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return fmt.Sprintf("%X", buf), nil
}

// GenerateTokenValue returns a fresh access token value.
func GenerateTokenValue() (string, error) {
	return GenerateAPIKey()
}
