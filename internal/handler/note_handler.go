package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/service"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// GetNote returns the note for a problem
// GET /api/notes?problemId=<uuid>
func (h *NoteHandler) GetNote(c *gin.Context) {
	problemIDStr := c.Query("problemId")
	problemID, err := uuid.Parse(problemIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing problemId parameter",
		})
		return
	}

	note, err := h.noteService.GetByProblemID(c.Request.Context(), problemID)
	if err != nil {
		// A problem without a note is a normal state, not an error.
		if err == domain.ErrNoteNotFound {
			c.JSON(http.StatusOK, gin.H{
				"note": nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve note",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": note,
	})
}

// SaveNote creates or updates the note for a problem
// POST /api/notes
func (h *NoteHandler) SaveNote(c *gin.Context) {
	var req domain.UpsertNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	note, err := h.noteService.Upsert(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case domain.ErrBadRequest:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid problem ID",
			})
		case domain.ErrProblemNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Problem not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to save note",
			})
		}
		return
	}

	c.JSON(http.StatusOK, note)
}
