// Package booking provides the public booking bounded context: the
// unauthenticated flow clients use to pick a date, a slot and submit the
// booking form.
package booking

import (
	"careportal_backend/internal/booking/handler"
	"careportal_backend/internal/booking/service"
	apphttp "careportal_backend/internal/http"
	"careportal_backend/platform/logger"
)

// Module is the booking bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the booking module. The booker,
// catalog and partner dependencies come from cross-module adapters wired
// in the composition root.
func NewModule(booker service.Booker, catalog service.CatalogReader, partners service.PartnerDirectory, log *logger.Logger) *Module {
	svc := service.New(booker, catalog, partners, log)
	h := handler.New(svc)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "booking"
}

// RegisterRoutes mounts the public booking routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Public)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
