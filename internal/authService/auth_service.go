package auth

import (
	"fmt"

	"auction-house/internal/accounts"
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/sessions"
)

// AuthService combines the credential store and session manager into the
// register/login/authenticate flow used by the API surface.
type AuthService struct {
	store    *accounts.Store
	sessions *sessions.Manager
}

// NewAuthService creates a new AuthService instance
func NewAuthService(store *accounts.Store, sessions *sessions.Manager) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
	}
}

// Register creates a new user account
func (s *AuthService) Register(username, password string) (models.User, error) {
	user, err := s.store.Register(username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown users
// and wrong passwords both surface as ErrInvalidCredentials so the response
// cannot be used to enumerate usernames.
func (s *AuthService) Login(username, password string) (models.Session, error) {
	ok, err := s.store.Verify(username, password)
	if err != nil || !ok {
		return models.Session{}, fmt.Errorf("auth: login for %s: %w", username, auctionerrors.ErrInvalidCredentials)
	}

	session, err := s.sessions.Create(username)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth: login for %s: %w", username, err)
	}
	return session, nil
}

// Authenticate resolves a session token to its owning username
func (s *AuthService) Authenticate(token string) (string, error) {
	username, err := s.sessions.Resolve(token)
	if err != nil {
		return "", fmt.Errorf("auth: %w", err)
	}
	return username, nil
}

// Logout destroys the presented session token; other sessions of the same
// user stay valid.
func (s *AuthService) Logout(token string) error {
	if err := s.sessions.Destroy(token); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}
