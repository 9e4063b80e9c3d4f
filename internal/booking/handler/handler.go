package handler

import (
	"net/http"

	"careportal_backend/internal/booking/service"
	"careportal_backend/internal/booking/transport"
	"careportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the public booking flow.
type Handler struct {
	svc *service.Service
}

// New creates a booking handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public booking routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking/dates", h.Dates)
	rg.GET("/booking/slots", h.Slots)
	rg.POST("/bookings", h.Submit)
}

// Dates handles GET /api/v1/public/booking/dates.
func (h *Handler) Dates(c *gin.Context) {
	httpkit.OK(c, h.svc.Dates())
}

// Slots handles GET /api/v1/public/booking/slots.
func (h *Handler) Slots(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Query("partnerId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid partner id", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		httpkit.Error(c, http.StatusBadRequest, "date is required", nil)
		return
	}

	result, svcErr := h.svc.Slots(c.Request.Context(), partnerID, date)
	if httpkit.HandleError(c, svcErr) {
		return
	}

	httpkit.OK(c, result)
}

// Submit handles POST /api/v1/public/bookings.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.BookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, result)
}
