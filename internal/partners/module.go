// Package partners provides the partners bounded context: the
// professionals who take appointments through the platform.
package partners

import (
	apphttp "careportal_backend/internal/http"
	"careportal_backend/internal/partners/handler"
	"careportal_backend/internal/partners/repository"
	"careportal_backend/internal/partners/service"
	"careportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the partners bounded context module implementing http.Module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the partners module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc, val)
	ph := handler.NewPublicHandler(svc)

	return &Module{handler: h, publicHandler: ph, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "partners"
}

// Service returns the service layer for cross-module adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts partner routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	partnersGroup := ctx.Protected.Group("/partners")
	m.handler.RegisterRoutes(partnersGroup)

	// Public listing for the booking flow (no auth middleware)
	publicGroup := ctx.Public.Group("/partners")
	m.publicHandler.RegisterRoutes(publicGroup)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
