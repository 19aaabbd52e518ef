package handler

import (
	"cloudcache/dto"
	"cloudcache/middleware"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

type createNotebookRequest struct {
	Name string `json:"notebook_name" binding:"required,max=255"`
}

func CreateNotebookHandler(c *gin.Context, notebookService *usecase.NotebookService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	var req createNotebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body. Must include notebook_name.")
		return
	}

	notebook, err := notebookService.CreateNotebook(c.Request.Context(), req.Name, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{"notebook_id": notebook.NotebookID})
}

func ListNotebooksHandler(c *gin.Context, notebookService *usecase.NotebookService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	notebooks, err := notebookService.ListNotebooks(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]gin.H, 0, len(notebooks))
	for _, notebook := range notebooks {
		summaries = append(summaries, gin.H{
			"id":   notebook.NotebookID,
			"name": notebook.Name,
		})
	}

	utils.Success(c, gin.H{"notebooks": summaries})
}

// GetNotebookHandler returns the caller's notebook with its notes embedded
// in creation order.
func GetNotebookHandler(c *gin.Context, notebookService *usecase.NotebookService, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	notebookID := c.Param("id")

	notebook, err := notebookService.GetNotebook(c.Request.Context(), notebookID, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	notes, err := noteService.ListNotes(c.Request.Context(), notebook.NotebookID, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"notebook": dto.NotebookDocument(notebook, notes),
	})
}

func DeleteNotebookHandler(c *gin.Context, notebookService *usecase.NotebookService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	if err := notebookService.DeleteNotebook(c.Request.Context(), c.Param("id"), caller); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Notebook deleted"})
}
