package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookhive/internal/http-api/dto"
	"bookhive/internal/http-api/middleware"
	"bookhive/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RelationHandler struct {
	svc service.RelationService
}

func NewRelationHandler(svc service.RelationService) *RelationHandler {
	return &RelationHandler{svc: svc}
}

// RegisterRoutes registers relation routes. Every route needs an
// authenticated caller, the relation row is keyed by (caller, book).
func (h *RelationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:book_id", h.Get)
	rg.PATCH("/:book_id", h.Patch)
	rg.DELETE("/:book_id", h.Delete)
}

// Patch handles PATCH /api/book-relation/:book_id. Upserts the (caller, book)
// row and applies only the fields present in the body.
func (h *RelationHandler) Patch(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var in dto.UpdateRelationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rel, err := h.svc.Patch(ctx, caller.ID, bookID, in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rel)
}

// Get handles GET /api/book-relation/:book_id and returns the caller's own
// relation state for the book.
func (h *RelationHandler) Get(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rel, err := h.svc.Get(ctx, caller.ID, bookID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rel)
}

// Delete handles DELETE /api/book-relation/:book_id and drops the caller's
// relation row for the book.
func (h *RelationHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, caller.ID, bookID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RelationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
	case errors.Is(err, service.ErrRelationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "relation not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
