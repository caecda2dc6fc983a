package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tuitionhub/tuition-backend/internal/config"
	"github.com/tuitionhub/tuition-backend/internal/database"
	"github.com/tuitionhub/tuition-backend/internal/logger"
	"github.com/tuitionhub/tuition-backend/internal/model"
	"github.com/tuitionhub/tuition-backend/internal/repository"
	"github.com/tuitionhub/tuition-backend/internal/service"
)

// seed-classes fills the registry with sample tuition classes so the
// frontend has something to render during development.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	classRepo := repository.NewClassRepository(pool)
	classService := service.NewClassService(classRepo)

	samples := []model.TuitionClass{
		{Title: "Algebra I", Subject: "Mathematics", Grade: "9", Teacher: "Ms. Perera", Schedule: "Mon 16:00-18:00", Room: "A1", Capacity: 30, Fee: 99.5, Currency: "USD", Status: "OPEN", StartDate: "2026-09-01", EndDate: "2026-12-15"},
		{Title: "Physics Foundations", Subject: "Physics", Grade: "10", Teacher: "Mr. Silva", Schedule: "Tue 16:00-18:00", Room: "B2", Capacity: 25, Fee: 120, Currency: "USD", Status: "OPEN", StartDate: "2026-09-02", EndDate: "2026-12-16"},
		{Title: "English Literature", Subject: "English", Grade: "11", Teacher: "Mrs. Fernando", Schedule: "Wed 17:00-19:00", Room: "C3", Capacity: 35, Fee: 85, Currency: "USD", Status: "OPEN", StartDate: "2026-09-03", EndDate: "2026-12-17"},
		{Title: "Organic Chemistry", Subject: "Chemistry", Grade: "12", Teacher: "Dr. Jayasuriya", Schedule: "Thu 16:00-18:30", Room: "Lab 1", Capacity: 20, Fee: 150, Currency: "USD", Status: "FULL", StartDate: "2026-09-04", EndDate: "2026-12-18"},
		{Title: "Combined Maths Revision", Subject: "Mathematics", Grade: "13", Teacher: "Mr. Bandara", Schedule: "Sat 09:00-12:00", Room: "Hall", Capacity: 60, Fee: 60, Currency: "USD", Status: "OPEN", StartDate: "2026-09-05", EndDate: "2026-12-19"},
	}

	fmt.Printf("=== Seeding %d Classes ===\n", len(samples))

	successCount := 0
	for i := range samples {
		created, err := classService.Add(ctx, &samples[i])
		if err != nil {
			fmt.Printf("Error creating class %q: %v\n", samples[i].Title, err)
			continue
		}
		successCount++
		fmt.Printf("Created %q with ID: %s\n", created.Title, created.ID)
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d classes.\n", successCount, len(samples))
}
