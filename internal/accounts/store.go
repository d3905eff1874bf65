package accounts

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 16
	hashLength       = 32
	pbkdf2Iterations = 100_000
)

// Store is a concurrency-safe in-memory credential store. Passwords are kept
// as PBKDF2-SHA256 hashes with a per-user random salt.
type Store struct {
	mu                sync.RWMutex
	users             map[string]model.User // key: username
	minPasswordLength int
}

// NewStore creates a credential store enforcing the given password policy.
func NewStore(minPasswordLength int) *Store {
	return &Store{
		users:             make(map[string]model.User),
		minPasswordLength: minPasswordLength,
	}
}

// Register creates a new user with a fresh salt and hashed password.
// The existence check and the insert happen under one lock so that two
// concurrent registrations of the same name cannot both succeed.
func (s *Store) Register(username, password string) (model.User, error) {
	if strings.TrimSpace(username) == "" {
		return model.User{}, fmt.Errorf("register: %w - empty username", auctionerrors.ErrInvalidUsername)
	}
	if len(password) < s.minPasswordLength {
		return model.User{}, fmt.Errorf("register: %w - minimum length is %d", auctionerrors.ErrWeakPassword, s.minPasswordLength)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return model.User{}, fmt.Errorf("register: generate salt: %w", err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Username:     username,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return model.User{}, fmt.Errorf("register user %s: %w", username, auctionerrors.ErrDuplicateUser)
	}
	s.users[username] = user

	return user, nil
}

// Verify recomputes the hash with the stored salt and compares it in
// constant time. Unknown users report ErrUnknownUser; callers presenting
// failures to the outside must collapse both cases into one response.
func (s *Store) Verify(username, password string) (bool, error) {
	s.mu.RLock()
	user, exists := s.users[username]
	s.mu.RUnlock()

	if !exists {
		return false, fmt.Errorf("verify user %s: %w", username, auctionerrors.ErrUnknownUser)
	}

	candidate := hashPassword(password, user.Salt)
	return subtle.ConstantTimeCompare(candidate, user.PasswordHash) == 1, nil
}

func hashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, hashLength, sha256.New)
}
