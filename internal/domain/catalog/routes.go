package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the product browse endpoints.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
	}
}
