package service

import (
	"context"
	"strings"
	"testing"

	"github.com/tuitionhub/tuition-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("PasswordIsHashedBeforePersisting", func(t *testing.T) {
		store := &memUserStore{}
		svc := NewUserService(store, newTestHasher())

		created, err := svc.Register(ctx, &model.User{
			Username: "bob",
			Password: "hunter2",
			Role:     model.RoleAdmin,
		})
		if err != nil {
			t.Fatalf("register: %v", err)
		}

		if created.ID == "" {
			t.Error("stored user has no id")
		}
		if created.Password == "hunter2" {
			t.Error("plaintext password was persisted")
		}
		if !strings.HasPrefix(created.Password, "$2") {
			t.Errorf("stored password %q is not a bcrypt hash", created.Password)
		}
		// The stored hash must verify against the original plaintext.
		if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter2")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
	})

	t.Run("StoredRecordIsRetrievable", func(t *testing.T) {
		store := &memUserStore{}
		svc := NewUserService(store, newTestHasher())

		if _, err := svc.Register(ctx, &model.User{Username: "carol", Password: "pw", Role: model.RoleAdmin}); err != nil {
			t.Fatalf("register: %v", err)
		}

		found, err := svc.FindByUsername(ctx, "CAROL")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found == nil {
			t.Fatal("registered user not found by case-insensitive lookup")
		}
	})

	t.Run("MissingUserIsAbsentValueNotError", func(t *testing.T) {
		svc := NewUserService(&memUserStore{}, newTestHasher())
		found, err := svc.FindByUsername(ctx, "ghost")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found != nil {
			t.Fatalf("expected nil user, got %+v", found)
		}
	})
}
