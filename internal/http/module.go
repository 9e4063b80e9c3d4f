// Package http provides HTTP server infrastructure, including the Module
// interface every domain module implements to register its routes.
package http

import (
	"careportal_backend/platform/config"
	"careportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Keeping registration behind this interface keeps the router decoupled
// from individual endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared context.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext carries the shared groups and middleware modules need when
// registering routes, so RegisterRoutes keeps a single parameter.
type RouterContext struct {
	// Engine is the root gin engine for modules needing engine-level access.
	Engine *gin.Engine
	// V1 is the /api/v1 route group.
	V1 *gin.RouterGroup
	// Public is the unauthenticated /api/v1/public group used by the
	// client-facing booking flow. It carries a stricter rate limit.
	Public *gin.RouterGroup
	// Protected is the authenticated route group under /api/v1.
	Protected *gin.RouterGroup
	// Admin is the operator-only route group under /api/v1/admin.
	Admin *gin.RouterGroup
	// Config is the JWT configuration for auth middleware.
	Config config.JWTConfig
	// AuthMiddleware validates access tokens.
	AuthMiddleware gin.HandlerFunc
	// BookingRateLimiter is the stricter limiter for public booking routes.
	BookingRateLimiter *httpkit.BookingRateLimiter
}
