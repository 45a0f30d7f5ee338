package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todoapi/internal/domain"

	"github.com/gin-gonic/gin"
)

type TodoRequest struct {
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

func (h *Handler) ListTodos(c *gin.Context) {
	username, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	todos, err := h.Todos.List(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c *gin.Context) {
	username, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.Todos.Get(c.Request.Context(), username, id)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	username, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req TodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	todo, err := h.Todos.Create(c.Request.Context(), username, req.Title, req.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	username, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req TodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	todo, err := h.Todos.Update(c.Request.Context(), username, id, req.Title, req.Completed)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	username, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, ok := todoID(c)
	if !ok {
		return
	}

	if err := h.Todos.Delete(c.Request.Context(), username, id); err != nil {
		respondTodoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return 0, false
	}
	return id, true
}

func respondTodoError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrTodoNotFound.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
