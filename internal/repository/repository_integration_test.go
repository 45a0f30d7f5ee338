package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"todoapi/internal/db"
	"todoapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Integration tests: run only when DATABASE_URL is set.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return pool
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestUserRepositoryIntegration(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	username := uniqueName("alice")
	u := &domain.User{Username: username, PasswordHash: "digest"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("id not assigned")
	}

	dup := &domain.User{Username: username, PasswordHash: "other"}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("duplicate create: got %v; want ErrUsernameTaken", err)
	}

	got, err := repo.GetByUsername(ctx, username)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PasswordHash != "digest" {
		t.Fatalf("digest changed by duplicate attempt: %q", got.PasswordHash)
	}

	if _, err := repo.GetByUsername(ctx, uniqueName("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user: got %v; want ErrNotFound", err)
	}
}

func TestTodoRepositoryIntegration(t *testing.T) {
	pool := testPool(t)
	repo := NewTodoRepository(pool)
	ctx := context.Background()

	owner := uniqueName("alice")
	other := uniqueName("bob")

	todo := &domain.Todo{Title: "buy milk", Owner: owner}
	if err := repo.Create(ctx, todo); err != nil {
		t.Fatalf("create: %v", err)
	}
	if todo.ID == 0 {
		t.Fatalf("id not assigned")
	}

	// wrong owner is indistinguishable from missing id
	if _, err := repo.Get(ctx, todo.ID, other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner get: got %v; want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, todo.ID, other, "stolen", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner update: got %v; want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, todo.ID, other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner delete: got %v; want ErrNotFound", err)
	}

	updated, err := repo.Update(ctx, todo.ID, owner, "buy milk and eggs", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "buy milk and eggs" || !updated.Completed {
		t.Fatalf("unexpected updated todo: %+v", updated)
	}

	list, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != todo.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := repo.Delete(ctx, todo.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, todo.ID, owner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v; want ErrNotFound", err)
	}
}
