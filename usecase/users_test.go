package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cloudcache/model"
)

func TestUserService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("RegisterIssuesAPIKey", func(t *testing.T) {
		user := f.registerUser(t, "alice")

		if user.UserID == "" {
			t.Fatal("expected a user ID")
		}
		if !regexp.MustCompile(`^[0-9A-F]{32}$`).MatchString(user.APIKey) {
			t.Fatalf("expected 32 uppercase hex api key, got %q", user.APIKey)
		}
		if user.DateJoined.IsZero() {
			t.Fatal("expected date_joined to be set")
		}
	})

	t.Run("RegisterDuplicateUsername", func(t *testing.T) {
		_, err := f.users.Register(ctx, &model.User{Username: "alice"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}

		// the failed create must not leave a second row
		again, err := f.users.Lookup(ctx, "alice")
		if err != nil {
			t.Fatal("lookup failed", err)
		}
		if again == nil {
			t.Fatal("original user disappeared")
		}
	})

	t.Run("UsernameIsCaseSensitive", func(t *testing.T) {
		if _, err := f.users.Register(ctx, &model.User{Username: "Alice"}); err != nil {
			t.Fatalf("expected distinct-cased username to register, got %v", err)
		}
	})

	t.Run("LookupUnknownUser", func(t *testing.T) {
		_, err := f.users.Lookup(ctx, "nobody")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		owner := f.registerUser(t, "cascade-owner")

		nb1, err := f.notebooks.CreateNotebook(ctx, "First", owner)
		if err != nil {
			t.Fatal("create notebook failed", err)
		}
		nb2, err := f.notebooks.CreateNotebook(ctx, "Second", owner)
		if err != nil {
			t.Fatal("create notebook failed", err)
		}
		if _, err := f.notes.CreateNote(ctx, "k1", "v1", nb1); err != nil {
			t.Fatal("create note failed", err)
		}
		if _, err := f.notes.CreateNote(ctx, "k2", "v2", nb2); err != nil {
			t.Fatal("create note failed", err)
		}

		tokens := f.tokenService(0)
		if _, err := tokens.Issue(ctx, owner.Username, owner.APIKey); err != nil {
			t.Fatal("issue token failed", err)
		}

		if err := f.users.Delete(ctx, owner.UserID); err != nil {
			t.Fatal("delete user failed", err)
		}

		if user, _ := f.userRepo.FindUser(ctx, owner.UserID); user != nil {
			t.Fatal("user row survived deletion")
		}
		notebooks, err := f.notebookRepo.ListByUser(ctx, owner.UserID)
		if err != nil {
			t.Fatal("list notebooks failed", err)
		}
		if len(notebooks) != 0 {
			t.Fatalf("expected no notebooks after cascade, got %d", len(notebooks))
		}
		for _, nb := range []string{nb1.NotebookID, nb2.NotebookID} {
			notes, err := f.noteRepo.ListByNotebook(ctx, nb)
			if err != nil {
				t.Fatal("list notes failed", err)
			}
			if len(notes) != 0 {
				t.Fatalf("expected no notes after cascade, got %d", len(notes))
			}
		}
	})

	t.Run("DeleteUnknownUser", func(t *testing.T) {
		err := f.users.Delete(ctx, "no-such-user")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
