package domain

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTodoNotFound       = errors.New("todo not found")
)
