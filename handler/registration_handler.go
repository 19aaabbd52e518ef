package handler

import (
	"cloudcache/model"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

type registrationRequest struct {
	Username  string `json:"username" binding:"required,username"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// RegistrationHandler creates a user and hands back the one-time view of
// their API key. The key is never rotated; losing it means a new account.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body. Must include username, first and last names, and email.")
		return
	}

	user := &model.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	created, err := userService.Register(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{
		"user_id": created.UserID,
		"api_key": created.APIKey,
	})
}
