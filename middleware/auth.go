package middleware

import (
	"errors"
	"strings"

	"cloudcache/model"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

// One message for every authorization failure. Bad token, expired token and
// unknown user must be indistinguishable to the caller.
const unauthorizedMessage = "You are not authorized for this action. " +
	"Please check that you have supplied an access token, and that it is valid and has not expired."

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer token to a user and threads the
// identity through the request context. Resolution purges expired tokens as
// a side effect and is the only authorization primitive.
func AuthMiddleware(tokenService *usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		tokenValue := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := tokenService.Resolve(c.Request.Context(), tokenValue)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				utils.Unauthorized(c, unauthorizedMessage)
			} else {
				utils.TrackError("auth", "resolve_store_fault")
				utils.InternalError(c, "Authorization is temporarily unavailable")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set("user_id", user.UserID)

		c.Next()
	}
}

// CurrentUser returns the identity AuthMiddleware established for this
// request.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
