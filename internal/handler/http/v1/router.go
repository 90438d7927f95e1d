package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Справочник районов (CRUD), только по API-ключу
	areas := api.Group("/areas", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		areas.POST("", h.createArea)
		areas.GET("", h.listAreas)
		areas.GET("/stats", h.getStats)
		areas.GET("/:id", h.getArea)
		areas.PUT("/:id", h.updateArea)
		areas.DELETE("/:id", h.deleteArea)
	}

	api.GET("/location/areas", h.findAreas)

	// Верификация жителя, по токену сессии
	verification := api.Group("/verification", IdentityMiddleware(h.identity, h.logger))
	{
		verification.POST("/checkin", RateLimitMiddleware(h.limiter, h.logger), h.checkin)
		verification.GET("/status", h.verificationStatus)
		verification.PUT("/area", h.selectArea)
	}

	api.GET("/users/:id/verification", h.residentBadge)

	api.GET("/system/health", h.healthCheck)
}
