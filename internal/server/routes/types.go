package routes

import (
	"github.com/gaiapac/backend/internal/api/handlers"
	"github.com/gaiapac/backend/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Info    *handlers.InfoHandler
}

// Middleware contains the per-route middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
