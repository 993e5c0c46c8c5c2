package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts the public catalog routes under /api/public and the guarded
// ones under /api/admin.
func NewRouter(categories *CategoryHandler, products *ProductHandler, jwtSecret string, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := router.Group("/api")
	public := api.Group("/public")
	admin := api.Group("/admin")
	admin.Use(AdminGuard(jwtSecret, logger))

	categories.RegisterRoutes(public, admin)
	products.RegisterRoutes(public, admin)

	return router
}
