package services

import (
	"regexp"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestGenerateAPIKey(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		key, err := GenerateAPIKey()
		if err != nil {
			t.Fatal("generate api key failed", err)
		}
		if !keyPattern.MatchString(key) {
			t.Fatalf("expected 32 uppercase hex chars, got %q", key)
		}
	})

	t.Run("Distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			key, err := GenerateAPIKey()
			if err != nil {
				t.Fatal("generate api key failed", err)
			}
			if seen[key] {
				t.Fatalf("duplicate key generated: %q", key)
			}
			seen[key] = true
		}
	})

	t.Run("TokenValueSameScheme", func(t *testing.T) {
		value, err := GenerateTokenValue()
		if err != nil {
			t.Fatal("generate token value failed", err)
		}
		if !keyPattern.MatchString(value) {
			t.Fatalf("expected 32 uppercase hex chars, got %q", value)
		}
	})
}
