package handler

import (
	"cloudcache/dto"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// TokenHandler exchanges a username and API key for a 1-hour access token.
func TokenHandler(c *gin.Context, tokenService *usecase.TokenService) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body. Must include username and api_key.")
		return
	}

	token, err := tokenService.Issue(c.Request.Context(), req.Username, req.APIKey)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{
		"access_token": dto.TokenDocument(token),
	})
}
