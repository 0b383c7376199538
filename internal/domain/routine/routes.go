package routine

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the routine delivery endpoints. The group is
// expected to sit behind the auth middleware.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rt := r.Group("/routine")
	{
		rt.GET("", h.List)
		rt.POST("", h.Create)
		rt.GET("/suggestions", h.Suggestions)
		rt.GET("/analytics", h.Analytics)
		rt.PUT("/:id", h.Update)
		rt.DELETE("/:id", h.Delete)
		rt.POST("/:id/toggle", h.TogglePause)
		rt.POST("/:id/skip-next", h.SkipNext)
		rt.POST("/:id/lock-price", h.LockPrice)
	}
}
