// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadfit/internal/http/handlers"
	"roadfit/internal/http/middleware"
	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/recommend"
)

func NewRouter(recommendSvc *recommend.Service, inventorySvc *inventory.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	recommendHandler := handlers.NewRecommendHandler(recommendSvc)
	r.POST("/api/recommendation", recommendHandler.Evaluate)

	if inventorySvc != nil {
		vehicleHandler := handlers.NewVehicleHandler(inventorySvc)
		r.GET("/api/bookings/:id/vehicles", vehicleHandler.List)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
