package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	healthapi "github.com/Domenick1991/kiosk/internal/api/health_service_api"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/Domenick1991/kiosk/internal/service/interaction"
	"github.com/Domenick1991/kiosk/internal/service/kiosk"
	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type pinger struct{ up bool }

func (p pinger) Configured() bool          { return true }
func (p pinger) Ping(context.Context) bool { return p.up }

type seedSource struct{}

func (seedSource) List(context.Context) ([]domain.Destination, error) {
	return catalog.Seed(), nil
}

func newTestRouter(t *testing.T, dbUp bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewNop()
	reg := prometheus.NewRegistry()
	metrics := interaction.NewMetrics(reg)
	flightService := flights.NewFlightService(flights.Flights())
	registry := kiosk.NewRegistry(storage.MemoryFactory(), kiosk.Deps{
		CatalogSource: seedSource{},
		Seed:          catalog.Seed(),
		Sink:          interaction.NewLogSink(logger),
		Metrics:       metrics,
		Flights:       flightService,
		Logger:        logger,
	})
	t.Cleanup(registry.Close)

	return NewRouter(RouterDeps{
		Flights:  flightService,
		Catalog:  seedSource{},
		Seed:     catalog.Seed(),
		Kiosks:   registry,
		Health:   healthapi.NewServer(pinger{up: dbUp}),
		Gatherer: reg,
		Logger:   logger,
	})
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestRouter_Healthz(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(newTestRouter(t, true), "/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(newTestRouter(t, false), "/healthz").Code)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, true)

	assert.Equal(t, http.StatusOK, get(router, "/api/flights?origin=JNB").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/flights/1").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/flights/options").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/flights/999").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/destinations").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/kiosks/lobby").Code)
}

func TestRouter_MetricsAfterInteraction(t *testing.T) {
	router := newTestRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/kiosks/lobby/mount", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, resp.Code)
}
