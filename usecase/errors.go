package usecase

import "errors"

// Caller-facing failures. Handlers map these to response statuses with
// errors.Is; anything else is a store fault and propagates unchanged.
var (
	// ErrUsernameTaken - username already registered
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrUserNotFound - token issuance or lookup for an unknown username
	ErrUserNotFound = errors.New("user does not exist")
	// ErrInvalidAPIKey - API key mismatch during token issuance
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrUnauthorized - token missing, unknown or expired. Deliberately a
	// single kind: callers must not learn which part of the credential failed.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotebookExists - notebook name already used by this user
	ErrNotebookExists = errors.New("notebook already exists")
	// ErrNotebookNotFound - notebook missing or owned by someone else
	ErrNotebookNotFound = errors.New("notebook does not exist")
	// ErrNoteExists - note key already used in this notebook
	ErrNoteExists = errors.New("note already exists")
	// ErrNoteNotFound - note missing or owned by someone else
	ErrNoteNotFound = errors.New("note does not exist")
)
