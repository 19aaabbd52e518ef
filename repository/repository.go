package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey is returned when an insert violates a unique index. The
// indexes in SetupIndexes are the authority for every uniqueness invariant,
// so racing identical creates surface exactly one success and one of these.
var ErrDuplicateKey = errors.New("duplicate key")

func mapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}
