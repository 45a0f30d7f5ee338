package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index returns a welcome message and an overview of the available endpoints.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to TODO API",
		"available_endpoints": gin.H{
			"user_management": gin.H{
				"create_user": gin.H{
					"path":        "/users/",
					"method":      "POST",
					"description": "Create a new user account",
				},
				"get_current_user": gin.H{
					"path":        "/users/me/",
					"method":      "GET",
					"description": "Get current user information",
				},
			},
			"todo_operations": gin.H{
				"list_todos": gin.H{
					"path":        "/todos",
					"method":      "GET",
					"description": "List all TODOs for authenticated user",
				},
				"create_todo": gin.H{
					"path":        "/todos",
					"method":      "POST",
					"description": "Create a new TODO item",
				},
				"get_todo": gin.H{
					"path":        "/todos/:id",
					"method":      "GET",
					"description": "Get a specific TODO by ID",
				},
				"update_todo": gin.H{
					"path":        "/todos/:id",
					"method":      "PUT",
					"description": "Update a specific TODO by ID",
				},
				"delete_todo": gin.H{
					"path":        "/todos/:id",
					"method":      "DELETE",
					"description": "Delete a specific TODO by ID",
				},
			},
		},
		"authentication": "This API uses HTTP Basic Authentication. Include your username and password with each request.",
	})
}
