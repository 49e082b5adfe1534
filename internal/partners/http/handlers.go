package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/procoat-sa/site-backend/internal/db"
	"github.com/procoat-sa/site-backend/internal/partners/domain"
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
	c.JSON(http.StatusOK, gin.H{"partners": items})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.LogoURL == "" || req.Certificate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, logo and certificate are required"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), domain.NewPartner{
		Name:        strings.TrimSpace(req.Name),
		LogoURL:     req.LogoURL,
		Website:     req.Website,
		Certificate: req.Certificate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dbErrorMessage(err)})
		return
	}

	h.invalidate(c, "/admin", "/")
	c.JSON(http.StatusCreated, gin.H{"partner": p})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.store.Update(c.Request.Context(), id, domain.PartnerUpdate{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Website:     req.Website,
		Certificate: req.Certificate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}

	h.invalidate(c, "/admin", "/")
	c.JSON(http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}

	h.invalidate(c, "/admin", "/")
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}

func (h *Handler) invalidate(c *gin.Context, paths ...string) {
	if err := h.cache.Invalidate(c.Request.Context(), paths...); err != nil {
		log.Printf("partner cache invalidation failed: %v", err)
	}
}

func dbErrorMessage(err error) string {
	if errors.Is(err, db.ErrUnavailable) {
		return "Database error: database not configured"
	}
	return "Database error: " + err.Error()
}
