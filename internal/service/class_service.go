package service

import (
	"context"

	"github.com/tuitionhub/tuition-backend/internal/model"
)

// ClassService handles tuition-class operations. There are no business
// rules beyond identity mapping; each call is a direct pass-through to the
// store.
type ClassService struct {
	classes ClassStore
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore) *ClassService {
	return &ClassService{classes: classes}
}

// Add persists a new class; the store assigns the id.
func (s *ClassService) Add(ctx context.Context, c *model.TuitionClass) (*model.TuitionClass, error) {
	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all classes, no pagination or filtering.
func (s *ClassService) List(ctx context.Context) ([]model.TuitionClass, error) {
	return s.classes.List(ctx)
}

// GetByID retrieves a class by its id, (nil, nil) when absent.
func (s *ClassService) GetByID(ctx context.Context, id string) (*model.TuitionClass, error) {
	return s.classes.GetByID(ctx, id)
}

// Update force-sets id onto the record and saves it as a full replacement.
// Fields omitted by the caller keep their zero values; there is no
// read-and-merge step.
func (s *ClassService) Update(ctx context.Context, id string, c *model.TuitionClass) (*model.TuitionClass, error) {
	c.ID = id
	if err := s.classes.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a class by id. A missing id still reports success.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	return s.classes.Delete(ctx, id)
}
