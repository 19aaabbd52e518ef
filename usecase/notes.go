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

// NoteService owns note records, the per-notebook key uniqueness invariant,
// and the transitive note -> notebook -> user ownership check.
type NoteService struct {
	NotesRepo     *repository.NoteRepo
	NotebooksRepo *repository.NotebookRepo
}

// CreateNote persists a note in the given notebook. The caller has already
// been established as the notebook's owner by GetNotebook.
func (s *NoteService) CreateNote(ctx context.Context, key, value string, notebook *model.Notebook) (*model.Note, error) {
	now := time.Now()
	note := &model.Note{
		NoteID:      utils.GenerateID(),
		NotebookID:  notebook.NotebookID,
		Key:         key,
		Value:       value,
		CreatedOn:   now,
		LastUpdated: now,
	}

	if err := s.NotesRepo.AddNote(ctx, note); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("a note with the key %q in notebook %q: %w",
				key, notebook.Name, ErrNoteExists)
		}
		return nil, err
	}

	return note, nil
}

// GetNote returns a note only when its notebook belongs to the caller.
// Missing notes and other users' notes are indistinguishable.
func (s *NoteService) GetNote(ctx context.Context, noteID string, caller *model.User) (*model.Note, error) {
	note, err := s.NotesRepo.FindNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note with ID %q: %w", noteID, ErrNoteNotFound)
	}

	notebook, err := s.NotebooksRepo.FindNotebook(ctx, note.NotebookID, caller.UserID)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, fmt.Errorf("note with ID %q: %w", noteID, ErrNoteNotFound)
	}

	return note, nil
}

// ListNotes returns the notes of the caller's notebook in creation order.
func (s *NoteService) ListNotes(ctx context.Context, notebookID string, caller *model.User) ([]*model.Note, error) {
	notebook, err := s.NotebooksRepo.FindNotebook(ctx, notebookID, caller.UserID)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, fmt.Errorf("notebook with ID %q for user %q: %w",
			notebookID, caller.Username, ErrNotebookNotFound)
	}

	return s.NotesRepo.ListByNotebook(ctx, notebook.NotebookID)
}

// UpdateNote replaces a note's value and refreshes last_updated, after the
// same ownership check as GetNote.
func (s *NoteService) UpdateNote(ctx context.Context, noteID, value string, caller *model.User) (*model.Note, error) {
	note, err := s.GetNote(ctx, noteID, caller)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if _, err := s.NotesRepo.UpdateValue(ctx, note.NoteID, value, now); err != nil {
		return nil, err
	}

	note.Value = value
	note.LastUpdated = now
	return note, nil
}

// DeleteNote permanently removes the caller's note.
func (s *NoteService) DeleteNote(ctx context.Context, noteID string, caller *model.User) error {
	note, err := s.GetNote(ctx, noteID, caller)
	if err != nil {
		return err
	}

	if _, err := s.NotesRepo.DeleteNote(ctx, note.NoteID); err != nil {
		return err
	}

	return nil
}
