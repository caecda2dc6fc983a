package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/tuitionhub/tuition-backend/internal/config"
	"github.com/tuitionhub/tuition-backend/internal/database"
	"github.com/tuitionhub/tuition-backend/internal/logger"
	"github.com/tuitionhub/tuition-backend/internal/model"
	"github.com/tuitionhub/tuition-backend/internal/repository"
	"github.com/tuitionhub/tuition-backend/internal/service"
	"golang.org/x/term"
)

// create-user seeds a user directly into the database. Unlike the public
// registration endpoint, it accepts an arbitrary role, which makes it the
// only path to a non-ADMIN account.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, hasher)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New User ===")

	// Username
	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	// Refuse a colliding username here even though the table would accept
	// it; seeding duplicates by hand is never intentional.
	existing, err := userService.FindByUsername(ctx, username)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check existing user")
	}
	if existing != nil {
		fmt.Printf("Error: Username '%s' already exists\n", username)
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if password == "" {
		fmt.Println("Error: Password is required")
		return
	}

	// Role
	fmt.Printf("Enter Role (default %s): ", model.RoleAdmin)
	role, _ := reader.ReadString('\n')
	role = strings.TrimSpace(role)
	if role == "" {
		role = model.RoleAdmin
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	newUser := &model.User{
		Username: username,
		Password: password,
		Role:     role,
	}

	created, err := userService.Register(ctx, newUser)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! User '%s' (%s) created with ID: %s\n", created.Username, created.Role, created.ID)
}
