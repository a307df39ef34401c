package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/service"
)

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	problemService *service.ProblemService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(problemService *service.ProblemService) *CollectionHandler {
	return &CollectionHandler{
		problemService: problemService,
	}
}

// GetCollections returns all curated collections
// GET /api/collections
func (h *CollectionHandler) GetCollections(c *gin.Context) {
	collections, err := h.problemService.GetCollections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve collections",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
	})
}

// GetCollection returns a specific collection by slug
// GET /api/collections/:slug
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	slug := c.Param("slug")

	collection, err := h.problemService.GetCollectionBySlug(c.Request.Context(), slug)
	if err != nil {
		switch err {
		case domain.ErrCollectionNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Collection not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to retrieve collection",
			})
		}
		return
	}

	c.JSON(http.StatusOK, collection)
}

// GetCollectionProblems returns the problems of a collection in curated order
// GET /api/collections/:slug/problems
func (h *CollectionHandler) GetCollectionProblems(c *gin.Context) {
	slug := c.Param("slug")

	problems, err := h.problemService.GetProblemsByCollection(c.Request.Context(), slug)
	if err != nil {
		switch err {
		case domain.ErrCollectionNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Collection not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to retrieve problems",
			})
		}
		return
	}

	responses := make([]domain.ProblemResponse, len(problems))
	for i, problem := range problems {
		responses[i] = problem.ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"problems": responses,
		"count":    len(responses),
	})
}
