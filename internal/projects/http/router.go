package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Listing is
// public; mutations run behind the supplied middleware (auth gate, rate limit).
func (h *Handler) Register(rg *gin.RouterGroup, mutating ...gin.HandlerFunc) {
	rg.GET("", h.list)

	mut := rg.Group("", mutating...)
	mut.POST("", h.create)
	mut.PUT("/:id", h.update)
	mut.DELETE("/:id", h.delete)
}
