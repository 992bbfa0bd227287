package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/Domenick1991/kiosk/internal/service/kiosk"
	"github.com/Domenick1991/kiosk/internal/service/navigator"
	"github.com/gin-gonic/gin"
)

type KioskHandler struct {
	registry     *kiosk.Registry
	publicOrigin string
}

type mountRequest struct {
	InitialView   domain.View `json:"initial_view"`
	DestinationID string      `json:"destination_id"`
}

type navigateRequest struct {
	Action        string `json:"action" binding:"required,oneof=select back flights route"`
	DestinationID string `json:"destination_id"`
}

type routeRequest struct {
	DestinationID string `json:"destination_id"`
}

type emailRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type qrRequest struct {
	Origin string `json:"origin" binding:"omitempty,url"`
}

type bookingRequest struct {
	FlightNumber string `json:"flight_number" binding:"required"`
}

// NewKioskHandler serves the per-device kiosk API. publicOrigin is the base
// of generated share links; when empty the request host is used.
func NewKioskHandler(registry *kiosk.Registry, publicOrigin string) *KioskHandler {
	return &KioskHandler{registry: registry, publicOrigin: publicOrigin}
}

func (h *KioskHandler) Register(router *gin.RouterGroup) {
	router.POST("/:device/mount", h.mount)
	router.GET("/:device", h.get)
	router.DELETE("/:device", h.unmount)
	router.GET("/:device/destinations", h.destinations)
	router.POST("/:device/navigate", h.navigate)
	router.POST("/:device/route", h.addToRoute)
	router.DELETE("/:device/route/:id", h.removeFromRoute)
	router.POST("/:device/email", h.email)
	router.POST("/:device/qr", h.qr)
	router.POST("/:device/flights/search", h.searchFlights)
	router.POST("/:device/bookings", h.requestBooking)
}

func (h *KioskHandler) mount(c *gin.Context) {
	var req mountRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	if req.InitialView != "" && !req.InitialView.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid initial_view"})
		return
	}

	k := h.registry.Get(c.Param("device"))
	resp, err := k.Mount(c.Request.Context(), kiosk.InitialView{View: req.InitialView, DestinationID: req.DestinationID})
	h.respond(c, resp, err)
}

func (h *KioskHandler) get(c *gin.Context) {
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": k.Snapshot()})
}

func (h *KioskHandler) unmount(c *gin.Context) {
	if !h.registry.Remove(c.Param("device")) {
		c.JSON(http.StatusNotFound, gin.H{"error": kiosk.ErrNotMounted.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KioskHandler) destinations(c *gin.Context) {
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, k.Destinations())
}

func (h *KioskHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.Navigate(c.Request.Context(), req.Action, req.DestinationID)
	h.respond(c, resp, err)
}

func (h *KioskHandler) addToRoute(c *gin.Context) {
	var req routeRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.AddToRoute(c.Request.Context(), req.DestinationID)
	h.respond(c, resp, err)
}

func (h *KioskHandler) removeFromRoute(c *gin.Context) {
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.RemoveFromRoute(c.Request.Context(), c.Param("id"))
	h.respond(c, resp, err)
}

func (h *KioskHandler) email(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.SendEmail(c.Request.Context(), req.Email)
	h.respond(c, resp, err)
}

func (h *KioskHandler) qr(c *gin.Context) {
	var req qrRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	origin := req.Origin
	if origin == "" {
		origin = h.origin(c)
	}
	resp, err := k.GenerateQR(c.Request.Context(), origin)
	h.respond(c, resp, err)
}

func (h *KioskHandler) searchFlights(c *gin.Context) {
	var criteria flights.Criteria
	if !bindOptionalJSON(c, &criteria) {
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.SearchFlights(c.Request.Context(), criteria)
	h.respond(c, resp, err)
}

func (h *KioskHandler) requestBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	k, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := k.RequestBooking(c.Request.Context(), req.FlightNumber)
	h.respond(c, resp, err)
}

func (h *KioskHandler) lookup(c *gin.Context) (*kiosk.Kiosk, bool) {
	k, ok := h.registry.Lookup(c.Param("device"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": kiosk.ErrNotMounted.Error()})
		return nil, false
	}
	return k, true
}

func (h *KioskHandler) origin(c *gin.Context) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func (h *KioskHandler) respond(c *gin.Context, resp kiosk.Response, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, kiosk.ErrNotMounted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, navigator.ErrTransitionRejected):
		status = http.StatusConflict
	case errors.Is(err, kiosk.ErrNoDestination):
		status = http.StatusBadRequest
	case errors.Is(err, kiosk.ErrUnknownDestination), errors.Is(err, flights.ErrFlightNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "notice": resp.Notice, "state": resp.Snapshot})
}

// bindOptionalJSON binds a JSON body when one is present.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
