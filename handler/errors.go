package handler

import (
	"errors"
	"log"

	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase error taxonomy onto the response envelope.
// Store faults deliberately carry no detail to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrNotebookExists),
		errors.Is(err, usecase.ErrNoteExists):
		utils.Conflict(c, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrNotebookNotFound),
		errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrInvalidAPIKey),
		errors.Is(err, usecase.ErrUnauthorized):
		utils.Unauthorized(c, err.Error())
	default:
		log.Printf("Unhandled error: %v", err)
		utils.TrackError("handler", "store_fault")
		utils.InternalError(c, "Something went wrong, try again later")
	}
}
