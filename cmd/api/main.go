package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careportal_backend/internal/adapters"
	"careportal_backend/internal/adapters/storage"
	"careportal_backend/internal/appointments"
	appointmentservice "careportal_backend/internal/appointments/service"
	"careportal_backend/internal/booking"
	"careportal_backend/internal/email"
	"careportal_backend/internal/events"
	apphttp "careportal_backend/internal/http"
	"careportal_backend/internal/http/router"
	"careportal_backend/internal/notification"
	"careportal_backend/internal/partners"
	"careportal_backend/internal/scheduler"
	"careportal_backend/internal/services"
	"careportal_backend/platform/config"
	"careportal_backend/platform/db"
	"careportal_backend/platform/logger"
	"careportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	reminderScheduler := scheduler.NewClient(cfg)
	defer func() { _ = reminderScheduler.Close() }()

	sender := email.NewSender(cfg)
	if !cfg.EmailEnabled {
		log.Warn("email delivery disabled; transactional emails are dropped")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// Storage for appointment attachments (MinIO); optional
	var attachmentFiles appointmentservice.FileStore
	if cfg.IsMinIOEnabled() {
		storageSvc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		bucket := cfg.GetMinioBucketAppointmentAttachments()
		if err := withRetry(ctx, log, "ensure attachments bucket", 5, 2*time.Second, func() error {
			return storageSvc.EnsureBucketExists(ctx, bucket)
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		attachmentFiles = adapters.NewAppointmentFilesAdapter(storageSvc, bucket)
		log.Info("storage service initialized", "attachmentsBucket", bucket)
	} else {
		log.Warn("MinIO not configured; appointment attachments disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.NewModule(log, sender)
	notificationModule.RegisterHandlers(eventBus)

	appointmentsModule := appointments.NewModule(pool, val, attachmentFiles, eventBus, reminderScheduler, cfg.ReminderLeadTime, log)
	servicesModule := services.NewModule(pool, val, log)
	partnersModule := partners.NewModule(pool, val)

	// Public booking flow depends on the other modules through its own ports
	catalogReader := adapters.NewBookingCatalogAdapter(servicesModule.Service())
	partnerDirectory := adapters.NewBookingPartnersAdapter(partnersModule.Service())
	bookingModule := booking.NewModule(appointmentsModule.Service, catalogReader, partnerDirectory, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			appointmentsModule,
			servicesModule,
			partnersModule,
			bookingModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
