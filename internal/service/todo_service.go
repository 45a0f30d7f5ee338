package service

import (
	"context"
	"errors"

	"todoapi/internal/domain"
	"todoapi/internal/repository"
)

// TodoStore is the slice of persistence the todo service needs.
type TodoStore interface {
	Create(ctx context.Context, t *domain.Todo) error
	ListByOwner(ctx context.Context, owner string) ([]*domain.Todo, error)
	Get(ctx context.Context, id int64, owner string) (*domain.Todo, error)
	Update(ctx context.Context, id int64, owner, title string, completed bool) (*domain.Todo, error)
	Delete(ctx context.Context, id int64, owner string) error
}

type TodoService struct {
	todos TodoStore
}

func NewTodoService(todos TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, caller string) ([]*domain.Todo, error) {
	return s.todos.ListByOwner(ctx, caller)
}

func (s *TodoService) Get(ctx context.Context, caller string, id int64) (*domain.Todo, error) {
	t, err := s.todos.Get(ctx, id, caller)
	if err != nil {
		return nil, mapAbsent(err)
	}
	return t, nil
}

// Create always sets the owner to the caller; a client-supplied owner or id
// never reaches storage.
func (s *TodoService) Create(ctx context.Context, caller, title string, completed bool) (*domain.Todo, error) {
	t := &domain.Todo{
		Title:     title,
		Completed: completed,
		Owner:     caller,
	}
	if err := s.todos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces both title and completed. Missing records and records
// owned by someone else fail identically with domain.ErrTodoNotFound.
func (s *TodoService) Update(ctx context.Context, caller string, id int64, title string, completed bool) (*domain.Todo, error) {
	t, err := s.todos.Update(ctx, id, caller, title, completed)
	if err != nil {
		return nil, mapAbsent(err)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, caller string, id int64) error {
	if err := s.todos.Delete(ctx, id, caller); err != nil {
		return mapAbsent(err)
	}
	return nil
}

func mapAbsent(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ErrTodoNotFound
	}
	return err
}
