package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/service"
)

// ProgressHandler serves the derived views: solved set, activity
// heatmap, roadmap, and revision listing
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// GetProgress returns the ids of all solved problems
// GET /api/progress
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	ids, err := h.progressService.GetSolvedProblemIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute progress",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"solved_problem_ids": ids,
		"count":              len(ids),
	})
}

// GetActivity returns the trailing-year activity map
// GET /api/activity
func (h *ProgressHandler) GetActivity(c *gin.Context) {
	activity, err := h.progressService.GetActivity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute activity",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity": activity,
	})
}

// GetActivityGrid returns the current year's heatmap grid
// GET /api/activity/grid
func (h *ProgressHandler) GetActivityGrid(c *gin.Context) {
	grid, err := h.progressService.GetActivityGrid(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute activity grid",
		})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// GetRoadmap returns the topic graph with per-node progress
// GET /api/roadmap
func (h *ProgressHandler) GetRoadmap(c *gin.Context) {
	view, err := h.progressService.GetRoadmap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute roadmap",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetCategoryDetail returns one category's problems with solved flags
// GET /api/roadmap/:category
func (h *ProgressHandler) GetCategoryDetail(c *gin.Context) {
	category := c.Param("category")

	problems, err := h.progressService.GetCategoryDetail(c.Request.Context(), category)
	if err != nil {
		switch err {
		case domain.ErrUnknownCategory:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown category",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to compute category detail",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"problems": problems,
	})
}

// GetRevision returns the filtered revision listing
// GET /api/revision
func (h *ProgressHandler) GetRevision(c *gin.Context) {
	records, err := h.progressService.GetRevision(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute revision view",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}
