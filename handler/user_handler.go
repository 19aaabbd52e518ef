package handler

import (
	"fmt"

	"cloudcache/dto"
	"cloudcache/middleware"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

// GetUserHandler returns the caller's own record as a recursive ordered
// document: the user embedding its notebooks, each embedding its notes, all
// in creation order. Asking for any other username is reported as not found
// so usernames cannot be probed.
func GetUserHandler(c *gin.Context, notebookService *usecase.NotebookService, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	username := c.Param("username")
	if username != caller.Username {
		utils.NotFound(c, fmt.Sprintf("The user %q does not exist.", username))
		return
	}

	notebooks, err := notebookService.ListNotebooks(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	notebookDocs := make([]dto.Document, 0, len(notebooks))
	for _, notebook := range notebooks {
		notes, err := noteService.ListNotes(c.Request.Context(), notebook.NotebookID, caller)
		if err != nil {
			respondError(c, err)
			return
		}
		notebookDocs = append(notebookDocs, dto.NotebookDocument(notebook, notes))
	}

	utils.Success(c, gin.H{
		"user": dto.UserDocument(caller, notebookDocs),
	})
}

// DeleteUserHandler removes the caller and cascades to every notebook, note
// and access token they own.
func DeleteUserHandler(c *gin.Context, userService *usecase.UserService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	if err := userService.Delete(c.Request.Context(), caller.UserID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Account deleted"})
}
