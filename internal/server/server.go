package server

import (
	"io"
	"net/http"

	"github.com/gaiapac/backend/internal/api/cors"
	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/api/handlers"
	"github.com/gaiapac/backend/internal/api/middleware"
	"github.com/gaiapac/backend/internal/config"
	"github.com/gaiapac/backend/internal/logging"
	"github.com/gaiapac/backend/internal/repository"
	"github.com/gaiapac/backend/internal/server/routes"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP server over one gin engine. The same engine backs the
// long-lived process and the serverless entrypoints.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer builds the engine: global middleware, route registration and
// method-not-allowed handling.
func NewServer(cfg *config.Config, submissions repository.SubmissionRepository) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logging is replaced by our request logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse("Method not allowed", ""))
	})

	logger := logging.GetGlobalLogger()
	policy := cors.NewPolicy(cfg.OriginCandidates()...)

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.TrailingSlash())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(policy))

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(submissions),
		Health:  handlers.NewHealthHandler(submissions),
		Info:    handlers.NewInfoHandler(),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}
	routes.Setup(router, h, m)

	return &Server{router: router, cfg: cfg}
}

// Start runs the server on the configured port, blocking until it exits.
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

// ServeHTTP lets the server act as a plain http.Handler, which is how the
// serverless entrypoints and tests drive it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
