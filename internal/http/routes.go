package http

import (
	"time"

	"todoapi/internal/http/handlers"
	"todoapi/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	RegisterRoutesWithLimits(r, db, version, 0, 0)
}

// RegisterRoutesWithLimits wires the full route table. When rateLimit > 0 the
// Redis fixed-window limiter guards every API route (fail-open when Redis is
// not configured).
func RegisterRoutesWithLimits(r *gin.Engine, db *pgxpool.Pool, version string, rateLimit int, rateWindow time.Duration) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/")
	if rateLimit > 0 {
		api.Use(middleware.RedisRateLimit(rateLimit, rateWindow))
	}
	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/", h.Index)

	// Registration is the only unauthenticated write
	api.POST("/users/", h.Register)

	auth := middleware.BasicAuth(h.Users)

	api.GET("/users/me/", auth, h.Me)

	api.GET("/todos", auth, h.ListTodos)
	api.POST("/todos", auth, h.CreateTodo)
	api.GET("/todos/:id", auth, h.GetTodo)
	api.PUT("/todos/:id", auth, h.UpdateTodo)
	api.DELETE("/todos/:id", auth, h.DeleteTodo)
}
