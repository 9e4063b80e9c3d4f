// Package appointments provides the appointments domain module: the
// partner-facing schedule, availability slots, and the appointment
// lifecycle.
package appointments

import (
	"time"

	"careportal_backend/internal/appointments/handler"
	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/service"
	"careportal_backend/internal/events"
	apphttp "careportal_backend/internal/http"
	"careportal_backend/platform/logger"
	"careportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the appointments domain module.
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new appointments module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, files service.FileStore, eventBus events.Bus, reminders service.ReminderScheduler, reminderLead time.Duration, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, files, eventBus, reminders, reminderLead, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "appointments"
}

// RegisterRoutes registers the module's routes under /api/v1/appointments.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	appointments := ctx.Protected.Group("/appointments")
	m.handler.RegisterRoutes(appointments)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
