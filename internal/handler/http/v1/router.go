package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Registration and login
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	// Hotspot risk analysis (public, read-only reference data)
	analysis := api.Group("/analysis")
	{
		analysis.GET("/top_hotspots", h.topHotspots)
		analysis.GET("/nearby_hotspots", h.nearbyHotspots)
	}

	// Hazard report CRUD, owner-scoped via the bearer token
	reports := api.Group("/reports")
	reports.Use(JWTAuthMiddleware(h.cfg, h.logger))
	{
		reports.POST("", h.createReport)
		reports.GET("/:user_id", h.listReports)
		reports.PUT("/:report_id", h.updateReport)
		reports.DELETE("/:report_id", h.deleteReport)
	}

	// Health-check route
	api.GET("/system/health", h.healthCheck)
}
