package handler

import (
	"careportal_backend/internal/partners/service"
	"careportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated partner listing used by the
// booking flow.
type PublicHandler struct {
	svc *service.Service
}

// NewPublicHandler creates a new public partners handler.
func NewPublicHandler(svc *service.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// RegisterRoutes mounts the public partner routes (no auth middleware).
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListPublic)
}

// ListPublic returns the partners currently accepting bookings.
// GET /api/v1/public/partners
func (h *PublicHandler) ListPublic(c *gin.Context) {
	result, err := h.svc.ListPublic(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
