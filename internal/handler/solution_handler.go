package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/service"
)

// SolutionHandler handles solution-related HTTP requests
type SolutionHandler struct {
	solutionService *service.SolutionService
}

// NewSolutionHandler creates a new solution handler
func NewSolutionHandler(solutionService *service.SolutionService) *SolutionHandler {
	return &SolutionHandler{
		solutionService: solutionService,
	}
}

// GetSolutions returns all solutions for a problem
// GET /api/solutions?problemId=<uuid>
func (h *SolutionHandler) GetSolutions(c *gin.Context) {
	problemIDStr := c.Query("problemId")
	problemID, err := uuid.Parse(problemIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing problemId parameter",
		})
		return
	}

	solutions, err := h.solutionService.GetSolutionsForProblem(c.Request.Context(), problemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve solutions",
		})
		return
	}

	responses := make([]domain.SolutionResponse, len(solutions))
	for i, solution := range solutions {
		responses[i] = solution.ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"solutions": responses,
		"count":     len(responses),
	})
}

// GetProblemSolutions returns all solutions for a problem by path param
// GET /api/problems/:id/solutions
func (h *SolutionHandler) GetProblemSolutions(c *gin.Context) {
	idStr := c.Param("id")
	problemID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid problem ID",
		})
		return
	}

	solutions, err := h.solutionService.GetSolutionsForProblem(c.Request.Context(), problemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve solutions",
		})
		return
	}

	responses := make([]domain.SolutionResponse, len(solutions))
	for i, solution := range solutions {
		responses[i] = solution.ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"solutions": responses,
		"count":     len(responses),
	})
}

// CreateSolution records a new solution for a problem
// POST /api/solutions
func (h *SolutionHandler) CreateSolution(c *gin.Context) {
	var req domain.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	solution, err := h.solutionService.Create(c.Request.Context(), &req)
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
				"error": "Failed to record solution",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, solution.ToResponse())
}

// UpdateSolution edits an existing solution
// PUT /api/solutions/:id
func (h *SolutionHandler) UpdateSolution(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid solution ID",
		})
		return
	}

	var req domain.UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	solution, err := h.solutionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case domain.ErrSolutionNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Solution not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update solution",
			})
		}
		return
	}

	c.JSON(http.StatusOK, solution.ToResponse())
}

// DeleteSolution removes a solution
// DELETE /api/solutions/:id
func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid solution ID",
		})
		return
	}

	if err := h.solutionService.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case domain.ErrSolutionNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Solution not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete solution",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Solution deleted",
	})
}
