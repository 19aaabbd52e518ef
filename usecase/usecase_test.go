package usecase

import (
	"context"
	"testing"
	"time"

	"cloudcache/model"
	"cloudcache/repository"
	"cloudcache/testutil"
)

// fixture wires the services against a throwaway database with real unique
// indexes, so duplicate tests exercise the same path production does.
type fixture struct {
	userRepo     *repository.UserRepo
	tokenRepo    *repository.TokenRepo
	notebookRepo *repository.NotebookRepo
	noteRepo     *repository.NoteRepo

	users     *UserService
	notebooks *NotebookService
	notes     *NoteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := testutil.NewMongoClient(t)
	db := testutil.NewTestDatabase(t, client)

	if err := repository.SetupIndexes(db); err != nil {
		t.Fatal("setup indexes failed", err)
	}

	f := &fixture{
		userRepo:     &repository.UserRepo{MongoCollection: db.Collection("users")},
		tokenRepo:    &repository.TokenRepo{MongoCollection: db.Collection("access_tokens")},
		notebookRepo: &repository.NotebookRepo{MongoCollection: db.Collection("notebooks")},
		noteRepo:     &repository.NoteRepo{MongoCollection: db.Collection("notes")},
	}

	f.users = &UserService{
		UsersRepo:     f.userRepo,
		NotebooksRepo: f.notebookRepo,
		NotesRepo:     f.noteRepo,
		TokensRepo:    f.tokenRepo,
	}
	f.notebooks = &NotebookService{
		NotebooksRepo: f.notebookRepo,
		NotesRepo:     f.noteRepo,
	}
	f.notes = &NoteService{
		NotesRepo:     f.noteRepo,
		NotebooksRepo: f.notebookRepo,
	}

	return f
}

func (f *fixture) tokenService(ttl time.Duration) *TokenService {
	return NewTokenService(f.tokenRepo, f.userRepo, ttl)
}

func (f *fixture) registerUser(t *testing.T, username string) *model.User {
	t.Helper()

	user, err := f.users.Register(context.Background(), &model.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
	})
	if err != nil {
		t.Fatal("register user failed", err)
	}
	return user
}
