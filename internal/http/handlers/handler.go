package handlers

import (
	"todoapi/internal/repository"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Users *service.UserService
	Todos *service.TodoService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Users: service.NewUserService(repository.NewUserRepository(db)),
		Todos: service.NewTodoService(repository.NewTodoRepository(db)),
	}
}

// NewHandlerWithServices wires pre-built services; used by tests.
func NewHandlerWithServices(users *service.UserService, todos *service.TodoService) *Handler {
	return &Handler{Users: users, Todos: todos}
}

// caller returns the authenticated username placed in the context by the
// BasicAuth middleware.
func caller(c *gin.Context) (string, bool) {
	v, ok := c.Get("username")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
