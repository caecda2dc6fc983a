package service

import (
	"context"

	"github.com/tuitionhub/tuition-backend/internal/model"
)

// UserStore is the credential-store surface the services depend on.
// Implementations return (nil, nil) from FindByUsername when no user
// matches; absence is an absent-value result, not an error.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// ClassStore is the class-registry persistence surface.
// GetByID returns (nil, nil) for a missing id. Save is a full-row
// replacement that inserts when the id is absent. Delete of a missing id
// is a no-op.
type ClassStore interface {
	GetByID(ctx context.Context, id string) (*model.TuitionClass, error)
	List(ctx context.Context) ([]model.TuitionClass, error)
	Create(ctx context.Context, c *model.TuitionClass) error
	Save(ctx context.Context, c *model.TuitionClass) error
	Delete(ctx context.Context, id string) error
}
