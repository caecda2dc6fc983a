package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tuitionhub/tuition-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	users   []*model.User
	nextID  int
	findErr error
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) Create(_ context.Context, u *model.User) error {
	m.nextID++
	u.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *u
	m.users = append(m.users, &stored)
	return nil
}

func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func seedUser(t *testing.T, store *memUserStore, username, password, role string) {
	t.Helper()
	hash, err := newTestHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := store.Create(context.Background(), &model.User{
		Username: username,
		Password: hash,
		Role:     role,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownUser", func(t *testing.T) {
		svc := NewAuthService(&memUserStore{}, newTestHasher())
		_, err := svc.Authenticate(ctx, "nobody", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		store := &memUserStore{}
		seedUser(t, store, "alice", "correct-horse", model.RoleAdmin)

		svc := NewAuthService(store, newTestHasher())
		_, err := svc.Authenticate(ctx, "alice", "battery-staple")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("SameRejectionForUnknownAndWrong", func(t *testing.T) {
		store := &memUserStore{}
		seedUser(t, store, "alice", "correct-horse", model.RoleAdmin)
		svc := NewAuthService(store, newTestHasher())

		_, errUnknown := svc.Authenticate(ctx, "nobody", "x")
		_, errWrong := svc.Authenticate(ctx, "alice", "x")
		if !errors.Is(errUnknown, errWrong) {
			t.Fatalf("unknown user and wrong password must be indistinguishable: %v vs %v", errUnknown, errWrong)
		}
	})

	t.Run("Success", func(t *testing.T) {
		store := &memUserStore{}
		seedUser(t, store, "alice", "correct-horse", model.RoleAdmin)

		svc := NewAuthService(store, newTestHasher())
		identity, err := svc.Authenticate(ctx, "alice", "correct-horse")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if identity.Username != "alice" {
			t.Errorf("username = %q, want alice", identity.Username)
		}
		if identity.Role != model.RoleAdmin {
			t.Errorf("role = %q, want %q", identity.Role, model.RoleAdmin)
		}
		if len(identity.Authorities) != 1 || identity.Authorities[0] != "ROLE_ADMIN" {
			t.Errorf("authorities = %v, want [ROLE_ADMIN]", identity.Authorities)
		}
	})

	t.Run("CaseInsensitiveUsername", func(t *testing.T) {
		store := &memUserStore{}
		seedUser(t, store, "Alice", "correct-horse", model.RoleAdmin)

		svc := NewAuthService(store, newTestHasher())
		identity, err := svc.Authenticate(ctx, "aLiCe", "correct-horse")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if identity.Role != model.RoleAdmin {
			t.Errorf("role = %q, want %q", identity.Role, model.RoleAdmin)
		}
	})

	t.Run("StoreFaultPropagates", func(t *testing.T) {
		boom := errors.New("connection refused")
		svc := NewAuthService(&memUserStore{findErr: boom}, newTestHasher())
		_, err := svc.Authenticate(ctx, "alice", "correct-horse")
		if !errors.Is(err, boom) {
			t.Fatalf("expected store fault to propagate, got %v", err)
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Fatal("store fault must not be reported as invalid credentials")
		}
	})
}
