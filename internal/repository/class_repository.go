package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tuitionhub/tuition-backend/internal/model"
)

const classColumns = `id, title, subject, grade, teacher, schedule, room,
	capacity, fee, currency, status, start_date, end_date`

// ClassRepository handles tuition-class data access.
type ClassRepository struct {
	pool pgxPool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool pgxPool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by its id.
// Returns (nil, nil) when no class exists; absence is not an error.
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*model.TuitionClass, error) {
	c := &model.TuitionClass{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Subject, &c.Grade, &c.Teacher, &c.Schedule,
		&c.Room, &c.Capacity, &c.Fee, &c.Currency, &c.Status, &c.StartDate, &c.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all classes in storage order.
func (r *ClassRepository) List(ctx context.Context) ([]model.TuitionClass, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+classColumns+` FROM classes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]model.TuitionClass, 0)
	for rows.Next() {
		var c model.TuitionClass
		if err := rows.Scan(&c.ID, &c.Title, &c.Subject, &c.Grade, &c.Teacher,
			&c.Schedule, &c.Room, &c.Capacity, &c.Fee, &c.Currency, &c.Status,
			&c.StartDate, &c.EndDate); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Create inserts a new class. The store assigns the id.
func (r *ClassRepository) Create(ctx context.Context, c *model.TuitionClass) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (title, subject, grade, teacher, schedule, room,
			capacity, fee, currency, status, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		c.Title, c.Subject, c.Grade, c.Teacher, c.Schedule, c.Room,
		c.Capacity, c.Fee, c.Currency, c.Status, c.StartDate, c.EndDate,
	).Scan(&c.ID)
}

// Save writes a class under its existing id as a full replacement,
// inserting the row if the id is not present (save-by-value semantics).
func (r *ClassRepository) Save(ctx context.Context, c *model.TuitionClass) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO classes (id, title, subject, grade, teacher, schedule, room,
			capacity, fee, currency, status, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subject = EXCLUDED.subject,
			grade = EXCLUDED.grade,
			teacher = EXCLUDED.teacher,
			schedule = EXCLUDED.schedule,
			room = EXCLUDED.room,
			capacity = EXCLUDED.capacity,
			fee = EXCLUDED.fee,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date`,
		c.ID, c.Title, c.Subject, c.Grade, c.Teacher, c.Schedule, c.Room,
		c.Capacity, c.Fee, c.Currency, c.Status, c.StartDate, c.EndDate,
	)
	return err
}

// Delete removes a class by its id. Deleting a missing id is a no-op.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}
