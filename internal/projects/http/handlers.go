package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/procoat-sa/site-backend/internal/db"
	"github.com/procoat-sa/site-backend/internal/projects/domain"
	"github.com/procoat-sa/site-backend/internal/revalidate"
)

type Handler struct {
	store Store
	cache revalidate.Invalidator
}

func NewHandler(store Store, cache revalidate.Invalidator) *Handler {
	return &Handler{store: store, cache: cache}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dbErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	images := req.Images
	if len(images) == 0 && strings.TrimSpace(req.Image) != "" {
		images = []string{req.Image}
	}

	if strings.TrimSpace(req.Title) == "" || len(images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and images are required"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), domain.NewProject{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Images:      images,
		Category:    req.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dbErrorMessage(err)})
		return
	}

	h.invalidate(c, "/admin", "/projects")
	c.JSON(http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	images := req.Images
	if images == nil && req.Image != nil {
		images = []string{*req.Image}
	}

	p, err := h.store.Update(c.Request.Context(), id, domain.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Images:      images,
		Category:    req.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	h.invalidate(c, "/admin", "/projects", "/projects/"+id)
	c.JSON(http.StatusOK, gin.H{"project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	h.invalidate(c, "/admin", "/projects")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// invalidate signals the rendering layer; a failed invalidation never fails
// the write that triggered it.
func (h *Handler) invalidate(c *gin.Context, paths ...string) {
	if err := h.cache.Invalidate(c.Request.Context(), paths...); err != nil {
		log.Printf("project cache invalidation failed: %v", err)
	}
}

func dbErrorMessage(err error) string {
	if errors.Is(err, db.ErrUnavailable) {
		return "Database error: database not configured"
	}
	return "Database error: " + err.Error()
}
