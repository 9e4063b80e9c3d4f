package handler

import (
	"net/http"

	"careportal_backend/internal/appointments/service"
	"careportal_backend/internal/appointments/transport"
	"careportal_backend/platform/httpkit"
	"careportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid appointment id"
)

// Handler handles HTTP requests for appointments.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new appointments handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the appointment routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/availability/dates", h.AvailableDates)
	rg.GET("/availability/slots", h.Availability)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.POST("/:id/cancel", h.Cancel)
	rg.GET("/:id/attachments", h.ListAttachments)
	rg.POST("/:id/attachments", h.CreateAttachment)
	rg.GET("/:id/attachments/:attachmentId/url", h.AttachmentURL)
	rg.DELETE("/:id/attachments/:attachmentId", h.DeleteAttachment)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}

// scope returns the partner the caller is restricted to. Operator accounts
// carry no partner claim and see the whole collection.
func scope(c *gin.Context) *uuid.UUID {
	if pid := httpkit.GetIdentity(c).PartnerID(); pid != uuid.Nil {
		return &pid
	}
	return nil
}

// List handles GET /api/v1/appointments.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListAppointmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.List(c.Request.Context(), scope(c), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// Stats handles GET /api/v1/appointments/stats.
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.svc.Stats(c.Request.Context(), scope(c))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// AvailableDates handles GET /api/v1/appointments/availability/dates.
func (h *Handler) AvailableDates(c *gin.Context) {
	httpkit.OK(c, h.svc.AvailableDates())
}

// Availability handles GET /api/v1/appointments/availability/slots.
// Partner-bound callers always see their own schedule; operators may name
// a partner through the query string or omit it to see occupancy across
// all partners.
func (h *Handler) Availability(c *gin.Context) {
	partnerID := scope(c)
	if partnerID == nil {
		if raw := c.Query("partnerId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				httpkit.Error(c, http.StatusBadRequest, "invalid partner id", nil)
				return
			}
			partnerID = &id
		}
	}
	date := c.Query("date")
	if date == "" {
		httpkit.Error(c, http.StatusBadRequest, "date is required", nil)
		return
	}

	result, svcErr := h.svc.Availability(c.Request.Context(), partnerID, date)
	if httpkit.HandleError(c, svcErr) {
		return
	}

	httpkit.OK(c, result)
}

// GetByID handles GET /api/v1/appointments/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), scope(c), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// UpdateStatus handles PATCH /api/v1/appointments/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req transport.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.UpdateStatus(c.Request.Context(), scope(c), id, req.Status, req.Notes)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// Cancel handles POST /api/v1/appointments/:id/cancel.
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req transport.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Cancel(c.Request.Context(), scope(c), id, req.Reason)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// ListAttachments handles GET /api/v1/appointments/:id/attachments.
func (h *Handler) ListAttachments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.ListAttachments(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// CreateAttachment handles POST /api/v1/appointments/:id/attachments.
func (h *Handler) CreateAttachment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read file", nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, svcErr := h.svc.AddAttachment(c.Request.Context(), id, fileHeader.Filename, contentType, fileHeader.Size, file)
	if httpkit.HandleError(c, svcErr) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, result)
}

// AttachmentURL handles GET /api/v1/appointments/:id/attachments/:attachmentId/url.
func (h *Handler) AttachmentURL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attachmentID, err := uuid.Parse(c.Param("attachmentId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid attachment id", nil)
		return
	}

	url, svcErr := h.svc.AttachmentURL(c.Request.Context(), id, attachmentID)
	if httpkit.HandleError(c, svcErr) {
		return
	}

	httpkit.OK(c, gin.H{"url": url})
}

// DeleteAttachment handles DELETE /api/v1/appointments/:id/attachments/:attachmentId.
func (h *Handler) DeleteAttachment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attachmentID, err := uuid.Parse(c.Param("attachmentId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid attachment id", nil)
		return
	}

	if svcErr := h.svc.RemoveAttachment(c.Request.Context(), id, attachmentID); httpkit.HandleError(c, svcErr) {
		return
	}

	httpkit.OK(c, gin.H{"deleted": true})
}
