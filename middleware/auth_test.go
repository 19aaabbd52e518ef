package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloudcache/model"
	"cloudcache/repository"
	"cloudcache/testutil"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := testutil.NewMongoClient(t)
	db := testutil.NewTestDatabase(t, client)

	userRepo := &repository.UserRepo{MongoCollection: db.Collection("users")}
	tokenRepo := &repository.TokenRepo{MongoCollection: db.Collection("access_tokens")}

	userService := &usecase.UserService{
		UsersRepo:     userRepo,
		NotebooksRepo: &repository.NotebookRepo{MongoCollection: db.Collection("notebooks")},
		NotesRepo:     &repository.NoteRepo{MongoCollection: db.Collection("notes")},
		TokensRepo:    tokenRepo,
	}
	tokenService := usecase.NewTokenService(tokenRepo, userRepo, time.Hour)

	user, err := userService.Register(context.Background(), &model.User{Username: "gate-user"})
	if err != nil {
		t.Fatal("register failed", err)
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokenService), func(c *gin.Context) {
		caller, ok := CurrentUser(c)
		if !ok {
			t.Error("current user missing from context")
			c.Status(http.StatusInternalServerError)
			return
		}
		utils.Success(c, gin.H{"username": caller.Username})
	})

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	errorMessage := func(t *testing.T, w *httptest.ResponseRecorder) string {
		t.Helper()
		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		message, _ := response["error"].(string)
		return message
	}

	var failureMessages []string

	t.Run("MissingToken", func(t *testing.T) {
		w := do("")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		failureMessages = append(failureMessages, errorMessage(t, w))
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		w := do("Token abc")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		failureMessages = append(failureMessages, errorMessage(t, w))
	})

	t.Run("UnknownToken", func(t *testing.T) {
		w := do("Bearer FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		failureMessages = append(failureMessages, errorMessage(t, w))
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		short := usecase.NewTokenService(tokenRepo, userRepo, 20*time.Millisecond)
		token, err := short.Issue(context.Background(), user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}
		time.Sleep(50 * time.Millisecond)

		w := do("Bearer " + token.AccessToken)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		failureMessages = append(failureMessages, errorMessage(t, w))
	})

	t.Run("FailureMessagesDoNotDifferentiate", func(t *testing.T) {
		for i := 1; i < len(failureMessages); i++ {
			if failureMessages[i] != failureMessages[0] {
				t.Fatalf("failure messages leak the failing part: %q vs %q",
					failureMessages[0], failureMessages[i])
			}
		}
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokenService.Issue(context.Background(), user.Username, user.APIKey)
		if err != nil {
			t.Fatal("issue failed", err)
		}

		w := do("Bearer " + token.AccessToken)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		data, _ := response["data"].(map[string]interface{})
		if data["username"] != user.Username {
			t.Fatalf("expected caller identity in context, got %v", response)
		}
	})
}
