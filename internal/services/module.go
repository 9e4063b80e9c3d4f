// Package services provides the care services bounded context: the catalog
// of bookable services with their durations and prices.
package services

import (
	apphttp "careportal_backend/internal/http"
	"careportal_backend/internal/services/handler"
	"careportal_backend/internal/services/repository"
	"careportal_backend/internal/services/service"
	"careportal_backend/platform/logger"
	"careportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the care services bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the services module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "services"
}

// Service returns the service layer for cross-module adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts care service routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public catalog for the booking flow
	ctx.Public.GET("/services", m.handler.ListActive)

	// Admin-only management endpoints
	adminGroup := ctx.Admin.Group("/services")
	adminGroup.GET("", m.handler.List)
	adminGroup.POST("", m.handler.Create)
	adminGroup.GET("/:id", m.handler.GetByID)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.PATCH("/:id/toggle-active", m.handler.ToggleActive)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
