package utils

import (
	"log"

	"github.com/google/uuid"
)

// GenerateID returns a unique ID for users, notebooks, notes and tokens.
func GenerateID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		log.Fatal("Failed to generate a unique ID", err)
	}
	return id.String()
}
