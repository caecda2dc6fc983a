package service

import (
	"context"
	"errors"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
// The two cases are never distinguished to the caller, so failed logins
// cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthorityPrefix is prepended to a user's role to form its permission
// marker, e.g. role "ADMIN" grants authority "ROLE_ADMIN".
const AuthorityPrefix = "ROLE_"

// Identity is the authenticated principal produced by a credential check.
// It carries exactly one role and the permission marker derived from it.
type Identity struct {
	Username    string
	Role        string
	Authorities []string
}

// AuthService verifies HTTP Basic credentials against the credential store.
// It is stateless: no sessions, no tokens; every request re-authenticates.
type AuthService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Authenticate looks up the user by case-insensitive username and verifies
// the plaintext password against the stored hash. Unknown user and wrong
// password both return ErrInvalidCredentials; a store fault propagates
// unchanged so the transport layer can answer with a server error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Username:    user.Username,
		Role:        user.Role,
		Authorities: []string{AuthorityPrefix + user.Role},
	}, nil
}
