package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tuitionhub/tuition-backend/internal/model"
)

// UserRepository handles user data access.
//
// The users table carries no unique constraint on username; uniqueness is
// enforced only by the read-then-write check in the registration handler.
type UserRepository struct {
	pool pgxPool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool pgxPool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByUsername retrieves a user by case-insensitive username match.
// Returns (nil, nil) when no user exists; absence is not an error.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role
		 FROM users WHERE LOWER(username) = LOWER($1) LIMIT 1`, username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. The store assigns the id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Username, u.Password, u.Role,
	).Scan(&u.ID)
}
