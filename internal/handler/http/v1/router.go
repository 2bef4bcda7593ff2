package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/geoprice/internal/metrics"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geoprice/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует маршруты API
func (h *Handler) RegisterRoutes(root *gin.RouterGroup) {
	landAreas := root.Group("/api/land-areas")
	{
		landAreas.GET("", h.listLandAreas)
		landAreas.GET("/:id", h.getLandArea)
		landAreas.GET("/type/:type", h.getLandAreasByType)
		landAreas.GET("/search/:query", h.searchLandAreas)
		landAreas.POST("/add-location", h.addLocation)
		landAreas.POST("/refresh", h.refreshLandAreas)
	}

	// Маршрут Health-check
	root.GET("/health", h.healthCheck)
}

// NewRouter собирает gin.Engine со всеми middleware и служебными маршрутами
func NewRouter(h *Handler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	// Маршрутизация по сырому пути: %2F в поисковом запросе не должен дробить сегмент
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(RequestID(), RequestLogger(log), metrics.Middleware(), Recovery(log))

	h.RegisterRoutes(&router.RouterGroup)

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(NotFound)
	return router
}
