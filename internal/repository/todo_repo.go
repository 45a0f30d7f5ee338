package repository

import (
	"context"
	"errors"

	"todoapi/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO todos (title, completed, owner)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.Title, t.Completed, t.Owner,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *TodoRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, completed, owner, created_at
		 FROM todos
		 WHERE owner = $1
		 ORDER BY id`,
		owner,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Owner, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Get returns ErrNotFound both when the id does not exist and when it
// belongs to a different owner; callers cannot tell the two apart.
func (r *TodoRepository) Get(ctx context.Context, id int64, owner string) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, completed, owner, created_at
		 FROM todos
		 WHERE id = $1 AND owner = $2`,
		id, owner,
	)

	var t domain.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.Owner, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update replaces title and completed in one statement; same dual-absence
// contract as Get.
func (r *TodoRepository) Update(ctx context.Context, id int64, owner, title string, completed bool) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE todos
		 SET title = $1, completed = $2
		 WHERE id = $3 AND owner = $4
		 RETURNING id, title, completed, owner, created_at`,
		title, completed, id, owner,
	)

	var t domain.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.Owner, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64, owner string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner = $2`,
		id, owner,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
