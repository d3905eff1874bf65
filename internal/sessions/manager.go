package sessions

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

const tokenEntropyBytes = 32

// Manager issues and resolves session tokens with a fixed TTL. Resolve
// re-checks expiry on every call, so the background sweeper is memory
// hygiene only and never affects correctness.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]model.Session // key: token
	ttl      time.Duration
}

// NewManager creates a session manager issuing tokens valid for ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]model.Session),
		ttl:      ttl,
	}
}

// Create issues a new high-entropy token for the user. Existing sessions for
// the same user stay valid; multiple concurrent sessions are permitted.
func (m *Manager) Create(username string) (model.Session, error) {
	token, err := utils.GenerateToken(tokenEntropyBytes)
	if err != nil {
		return model.Session{}, fmt.Errorf("create session for %s: %w", username, err)
	}

	now := time.Now().UTC()
	session := model.Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = session
	m.mu.Unlock()

	return session, nil
}

// Resolve returns the owning username for a valid token. Never-issued and
// expired tokens are indistinguishable to the caller.
func (m *Manager) Resolve(token string) (string, error) {
	m.mu.RLock()
	session, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("resolve session: %w", auctionerrors.ErrInvalidSession)
	}

	if session.IsExpired(time.Now().UTC()) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", fmt.Errorf("resolve session: %w", auctionerrors.ErrInvalidSession)
	}

	return session.Username, nil
}

// Destroy removes a session, invalidating only the presented token.
func (m *Manager) Destroy(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[token]; !exists {
		return fmt.Errorf("destroy session: %w", auctionerrors.ErrInvalidSession)
	}
	delete(m.sessions, token)
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (m *Manager) Sweep() int {
	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until the returned stop
// function is called.
func (m *Manager) StartSweeper(interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := m.Sweep(); removed > 0 {
					utils.Info("session sweep", map[string]any{"removed": removed})
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
