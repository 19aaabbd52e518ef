package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudcache/model"
	"cloudcache/repository"
	"cloudcache/utils"
)

// NotebookService owns notebook records, the per-user name uniqueness
// invariant, and the notebook half of the ownership tree.
type NotebookService struct {
	NotebooksRepo *repository.NotebookRepo
	NotesRepo     *repository.NoteRepo
}

// CreateNotebook persists a notebook for the owner. Name uniqueness is per
// user; the same name under a different user is fine.
func (s *NotebookService) CreateNotebook(ctx context.Context, name string, owner *model.User) (*model.Notebook, error) {
	notebook := &model.Notebook{
		NotebookID: utils.GenerateID(),
		UserID:     owner.UserID,
		Name:       name,
		CreatedOn:  time.Now(),
	}

	if err := s.NotebooksRepo.AddNotebook(ctx, notebook); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("a notebook named %q for user %q: %w",
				name, owner.Username, ErrNotebookExists)
		}
		return nil, err
	}

	return notebook, nil
}

// GetNotebook returns the caller's notebook. A notebook that exists but
// belongs to someone else is reported exactly like a missing one.
func (s *NotebookService) GetNotebook(ctx context.Context, notebookID string, caller *model.User) (*model.Notebook, error) {
	notebook, err := s.NotebooksRepo.FindNotebook(ctx, notebookID, caller.UserID)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, fmt.Errorf("notebook with ID %q for user %q: %w",
			notebookID, caller.Username, ErrNotebookNotFound)
	}
	return notebook, nil
}

// ListNotebooks returns the caller's notebooks in creation order.
func (s *NotebookService) ListNotebooks(ctx context.Context, caller *model.User) ([]*model.Notebook, error) {
	return s.NotebooksRepo.ListByUser(ctx, caller.UserID)
}

// DeleteNotebook removes the caller's notebook and all of its notes.
func (s *NotebookService) DeleteNotebook(ctx context.Context, notebookID string, caller *model.User) error {
	notebook, err := s.GetNotebook(ctx, notebookID, caller)
	if err != nil {
		return err
	}

	if _, err := s.NotesRepo.DeleteByNotebooks(ctx, []string{notebook.NotebookID}); err != nil {
		return err
	}

	if _, err := s.NotebooksRepo.DeleteNotebook(ctx, notebook.NotebookID); err != nil {
		return err
	}

	return nil
}
