package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/schema"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/service"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

type EntityHandler struct {
	Content *service.ContentService
}

// writeError maps service failures onto the API error envelope. Store and
// payload problems the client caused come back descriptive; everything else
// is logged server-side and surfaced as a generic 500.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, schema.ErrUnknownKind), errors.Is(err, service.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func listOptions(c *gin.Context) store.ListOptions {
	opts := store.ListOptions{Page: 1, Limit: 10, Search: c.Query("search")}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		opts.Page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		opts.Limit = l
	}
	return opts
}

// ListEntities handles GET /entities?type=&page=&limit=&search=.
func (h *EntityHandler) ListEntities(c *gin.Context) {
	kind := c.Query("type")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}
	result, err := h.Content.List(c.Request.Context(), kind, listOptions(c))
	if err != nil {
		writeError(c, err, "Failed to fetch entities")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEntity handles GET /entities/:id?type=. Archived brands are invisible
// here even though they still show up in listings.
func (h *EntityHandler) GetEntity(c *gin.Context) {
	kind := c.Query("type")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}
	rec, err := h.Content.GetDefault(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch entity")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpsertEntity handles POST /entities with body {type, id?, ...fields}.
// 201 on create, 200 on update.
func (h *EntityHandler) UpsertEntity(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, _ := payload["type"].(string)
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}
	rec, created, err := h.Content.Upsert(c.Request.Context(), kind, payload)
	if err != nil {
		writeError(c, err, "Failed to save entity")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, rec)
}
