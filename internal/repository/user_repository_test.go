package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/tuitionhub/tuition-backend/internal/model"
)

func TestUserRepositoryFindByUsername(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
			AddRow("u-1", "Alice", "$2a$10$hash", "ADMIN")
		mock.ExpectQuery(`LOWER\(username\) = LOWER\(\$1\)`).
			WithArgs("alice").
			WillReturnRows(rows)

		repo := NewUserRepository(mock)
		u, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if u == nil {
			t.Fatal("expected user, got nil")
		}
		if u.Username != "Alice" || u.Role != "ADMIN" {
			t.Errorf("unexpected user: %+v", u)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
	})

	t.Run("AbsentIsNilNil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		defer mock.Close()

		mock.ExpectQuery(`LOWER\(username\) = LOWER\(\$1\)`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository(mock)
		u, err := repo.FindByUsername(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("absence must not be an error, got %v", err)
		}
		if u != nil {
			t.Fatalf("expected nil user, got %+v", u)
		}
	})

	t.Run("FaultPropagates", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		defer mock.Close()

		boom := errors.New("connection refused")
		mock.ExpectQuery(`LOWER\(username\) = LOWER\(\$1\)`).
			WithArgs("alice").
			WillReturnError(boom)

		repo := NewUserRepository(mock)
		if _, err := repo.FindByUsername(context.Background(), "alice"); !errors.Is(err, boom) {
			t.Fatalf("expected fault to propagate, got %v", err)
		}
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "$2a$10$hash", "ADMIN").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("u-1"))

	repo := NewUserRepository(mock)
	u := &model.User{Username: "alice", Password: "$2a$10$hash", Role: "ADMIN"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != "u-1" {
		t.Errorf("id = %q, want u-1", u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
