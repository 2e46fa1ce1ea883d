// Package session holds the in-memory "current user" state and owns every
// mutation of the credential store. Other components only read: the HTTP
// transport reads the token, the route guard reads the current user.
package session

import (
	"context"
	"sync"

	"github.com/littlerefugees/refugio-cli/internal/client/credstore"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// Manager is the client-side session. Construct one per process with New
// and call Restore before serving any navigation, so a persisted session is
// visible to guards from the first screen on.
type Manager struct {
	store credstore.Store

	mu           sync.RWMutex
	current      *models.User
	justLoggedIn bool
}

// New returns a Manager with no current user bound to the given store.
func New(store credstore.Store) *Manager {
	return &Manager{store: store}
}

// Restore adopts a previously persisted session, if the store holds both a
// token and a user. It never marks the session as just-logged-in: that flag
// is reserved for live interactive logins. No network call is made; the
// persisted state is trusted until a request fails.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Token(ctx)
	if err != nil {
		return err
	}
	user, err := m.store.User(ctx)
	if err != nil {
		return err
	}

	if token == "" || user == nil {
		return nil
	}

	m.mu.Lock()
	m.current = user
	m.justLoggedIn = false
	m.mu.Unlock()
	return nil
}

// SetSession persists the token and user and makes the user current. This is
// the single state-changing entry point after a successful authentication;
// it supersedes any previous session entirely.
func (m *Manager) SetSession(ctx context.Context, token string, user *models.User) error {
	if err := m.store.SaveToken(ctx, token); err != nil {
		return err
	}
	if err := m.store.SaveUser(ctx, user); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = user
	m.justLoggedIn = true
	m.mu.Unlock()
	return nil
}

// Logout clears the credential store and drops the current user. Safe to
// call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = nil
	m.justLoggedIn = false
	m.mu.Unlock()
	return nil
}

// IsLoggedIn reports whether the store currently holds a token. It reads the
// store rather than the in-memory user, so a persisted token is detected
// even before Restore has run.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	token, err := m.store.Token(ctx)
	return err == nil && token != ""
}

// CurrentUser returns the in-memory current user, or nil when logged out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// UpdateCurrentUser re-persists the user (the token is untouched) and
// updates the in-memory state. Used after profile edits or flag changes.
func (m *Manager) UpdateCurrentUser(ctx context.Context, user *models.User) error {
	if err := m.store.SaveUser(ctx, user); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
	return nil
}

// JustLoggedIn reports whether the current session came from a live login
// rather than a restore. Drives one-time onboarding UI.
func (m *Manager) JustLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justLoggedIn
}

// ClearJustLoggedIn acknowledges the one-time onboarding marker.
func (m *Manager) ClearJustLoggedIn() {
	m.mu.Lock()
	m.justLoggedIn = false
	m.mu.Unlock()
}
