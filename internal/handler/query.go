package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/service"
)

type QueryHandler struct {
	Queries *service.QueryService
}

type CreateQueryRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Query     string `json:"query" binding:"required"`
}

// CreateQuery handles the public contact form. Always creates.
func (h *QueryHandler) CreateQuery(c *gin.Context) {
	var req CreateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := h.Queries.Create(c.Request.Context(), service.QueryInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Query:     req.Query,
	})
	if err != nil {
		writeError(c, err, "Failed to submit query")
		return
	}
	c.JSON(http.StatusCreated, q)
}

// ListQueries handles GET /queries?page=&limit=&search= for the admin area.
func (h *QueryHandler) ListQueries(c *gin.Context) {
	queries, total, err := h.Queries.List(c.Request.Context(), listOptions(c))
	if err != nil {
		writeError(c, err, "Failed to fetch queries")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": queries,
		"total": total,
	})
}

// DeleteQuery handles DELETE /queries?id=. A missing id is a client error;
// an unknown id is a store failure, not silent success.
func (h *QueryHandler) DeleteQuery(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.Queries.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Query deleted successfully"})
}
