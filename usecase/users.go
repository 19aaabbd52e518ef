package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudcache/model"
	"cloudcache/repository"
	"cloudcache/services"
	"cloudcache/utils"
)

// UserService owns user records and the username uniqueness invariant, and
// issues each user's API key once at registration.
type UserService struct {
	UsersRepo     *repository.UserRepo
	NotebooksRepo *repository.NotebookRepo
	NotesRepo     *repository.NoteRepo
	TokensRepo    *repository.TokenRepo
}

// Register creates a user with a fresh API key. The pre-insert lookup gives
// a friendly duplicate message; the unique index is what actually rejects a
// racing create.
func (s *UserService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.UsersRepo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("the username %q: %w", user.Username, ErrUsernameTaken)
	}

	apiKey, err := services.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	user.UserID = utils.GenerateID()
	user.APIKey = apiKey
	user.DateJoined = time.Now()

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("the username %q: %w", user.Username, ErrUsernameTaken)
		}
		return nil, err
	}

	return user, nil
}

// Lookup finds a user by exact username.
func (s *UserService) Lookup(ctx context.Context, username string) (*model.User, error) {
	user, err := s.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("the user %q: %w", username, ErrUserNotFound)
	}
	return user, nil
}

// Delete removes a user and cascades to every owned notebook, every note in
// those notebooks, and every outstanding access token. Children go first so
// no orphan can survive a partial failure.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	notebooks, err := s.NotebooksRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	notebookIDs := make([]string, 0, len(notebooks))
	for _, notebook := range notebooks {
		notebookIDs = append(notebookIDs, notebook.NotebookID)
	}

	if _, err := s.NotesRepo.DeleteByNotebooks(ctx, notebookIDs); err != nil {
		return err
	}
	if _, err := s.NotebooksRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.TokensRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}

	deleted, err := s.UsersRepo.DeleteUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}

	return nil
}
