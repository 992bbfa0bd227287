package api

import (
	"log/slog"
	"net/http"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	source catalog.Source
	seed   []domain.Destination
	logger *slog.Logger
}

func NewDestinationHandler(source catalog.Source, seed []domain.Destination, logger *slog.Logger) *DestinationHandler {
	return &DestinationHandler{source: source, seed: seed, logger: logger}
}

func (h *DestinationHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

// list serves the remote catalog, or the bundled destinations when the
// catalog is unavailable or empty.
func (h *DestinationHandler) list(c *gin.Context) {
	if h.source != nil {
		list, err := h.source.List(c.Request.Context())
		if err == nil && len(list) > 0 {
			c.JSON(http.StatusOK, list)
			return
		}
		if err != nil {
			h.logger.Warn("serving bundled destinations", "error", err)
		}
	}
	c.JSON(http.StatusOK, h.seed)
}
