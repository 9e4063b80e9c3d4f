package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careportal_backend/internal/services/service"
	"careportal_backend/internal/services/transport"
	"careportal_backend/platform/httpkit"
	"careportal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid care service ID"
)

// Handler handles HTTP requests for care services.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new care services handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListActive retrieves the bookable care services.
// GET /api/v1/public/services
func (h *Handler) ListActive(c *gin.Context) {
	result, err := h.svc.ListActive(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// List retrieves all care services (admin only).
// GET /api/v1/admin/services
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetByID retrieves a care service by ID.
// GET /api/v1/admin/services/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, svcErr) {
		return
	}
	httpkit.OK(c, result)
}

// Create adds a new care service (admin only).
// POST /api/v1/admin/services
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateCareServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// Update modifies a care service (admin only).
// PUT /api/v1/admin/services/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateCareServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, svcErr) {
		return
	}
	httpkit.OK(c, result)
}

// ToggleActive flips whether a care service can be booked (admin only).
// PATCH /api/v1/admin/services/:id/toggle-active
func (h *Handler) ToggleActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	current, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, svcErr) {
		return
	}

	if err := h.svc.SetActive(c.Request.Context(), id, !current.IsActive); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"isActive": !current.IsActive})
}
