package handler

import (
	"cloudcache/dto"
	"cloudcache/middleware"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

type createNoteRequest struct {
	Key   string `json:"note_key" binding:"required,max=255"`
	Value string `json:"note_value" binding:"required"`
}

type updateNoteRequest struct {
	Value string `json:"note_value" binding:"required"`
}

// CreateNoteHandler adds a note to the caller's notebook. The notebook
// lookup doubles as the ownership check.
func CreateNoteHandler(c *gin.Context, notebookService *usecase.NotebookService, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body. Must include note_key and note_value.")
		return
	}

	notebook, err := notebookService.GetNotebook(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	note, err := noteService.CreateNote(c.Request.Context(), req.Key, req.Value, notebook)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{"note_id": note.NoteID})
}

func GetNoteHandler(c *gin.Context, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	note, err := noteService.GetNote(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"note": dto.NoteDocument(note)})
}

func UpdateNoteHandler(c *gin.Context, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body. Must include note_value.")
		return
	}

	note, err := noteService.UpdateNote(c.Request.Context(), c.Param("id"), req.Value, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"note": dto.NoteDocument(note)})
}

func DeleteNoteHandler(c *gin.Context, noteService *usecase.NoteService) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "You are not authorized for this action.")
		return
	}

	if err := noteService.DeleteNote(c.Request.Context(), c.Param("id"), caller); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}
