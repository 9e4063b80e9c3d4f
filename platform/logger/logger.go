// Package logger provides structured logging for the application.
// It belongs to the platform layer and carries no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const (
	// RequestIDKey is the context key for the per-request correlation ID.
	RequestIDKey contextKey = "request_id"
	// PartnerIDKey is the context key for the authenticated partner ID.
	PartnerIDKey contextKey = "partner_id"
)

// Logger wraps slog.Logger with helpers for common log events.
type Logger struct {
	*slog.Logger
}

// New creates a logger for the given environment. Development logs as
// human-readable text at debug level; everything else logs JSON at info.
func New(env string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// WithContext returns a logger enriched with request-scoped values.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	out := l
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		out = out.WithRequestID(requestID)
	}
	if partnerID, ok := ctx.Value(PartnerIDKey).(string); ok && partnerID != "" {
		out = out.WithPartnerID(partnerID)
	}
	return out
}

// WithRequestID returns a logger with the request ID attached.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With(slog.String("request_id", requestID))}
}

// WithPartnerID returns a logger with the partner ID attached.
func (l *Logger) WithPartnerID(partnerID string) *Logger {
	return &Logger{Logger: l.With(slog.String("partner_id", partnerID))}
}

// HTTPRequest logs a completed HTTP request.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError logs a request that failed with a server-side error.
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	l.Error("http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// DatabaseError logs a failed database operation.
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// BookingEvent logs lifecycle events for appointments (booked, confirmed,
// cancelled and so on) with the identifiers needed to trace them.
func (l *Logger) BookingEvent(event, appointmentID, partnerID string) {
	l.Info("booking_event",
		slog.String("event", event),
		slog.String("appointment_id", appointmentID),
		slog.String("partner_id", partnerID),
	)
}

// RateLimitExceeded logs a client hitting the rate limiter.
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}

// ReminderScheduleFailed logs a reminder that could not be enqueued. The
// booking itself already succeeded, so this is the only trace left.
func (l *Logger) ReminderScheduleFailed(appointmentID string, err error) {
	l.Error("reminder_schedule_failed",
		slog.String("appointment_id", appointmentID),
		slog.String("error", err.Error()),
	)
}
