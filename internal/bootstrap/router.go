package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/Domenick1991/kiosk/api"
	healthapi "github.com/Domenick1991/kiosk/internal/api/health_service_api"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/Domenick1991/kiosk/internal/service/kiosk"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps are the services behind the HTTP API.
type RouterDeps struct {
	Flights      flights.FlightUseCase
	Catalog      catalog.Source
	Seed         []domain.Destination
	Kiosks       *kiosk.Registry
	Health       *healthapi.Server
	Gatherer     prometheus.Gatherer
	SwaggerDir   string
	PublicOrigin string
	Logger       *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiGroup := router.Group("/api")
	api.NewFlightHandler(deps.Flights).Register(apiGroup.Group("/flights"))
	api.NewDestinationHandler(deps.Catalog, deps.Seed, deps.Logger).Register(apiGroup.Group("/destinations"))
	api.NewKioskHandler(deps.Kiosks, deps.PublicOrigin).Register(apiGroup.Group("/kiosks"))

	router.GET("/healthz", func(c *gin.Context) {
		if deps.Health != nil && !deps.Health.Healthy(c.Request.Context()) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	if deps.SwaggerDir != "" {
		router.Static("/swagger", deps.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/kiosk.swagger.json"))))
	}

	return router
}
