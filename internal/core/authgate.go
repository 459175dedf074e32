package core

import (
	"context"
	"sync"
)

// Session is the identity the external auth provider hands back on login.
type Session struct {
	Token string `json:"-"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Identity is the capability interface over the external identity service.
// CheckSession returns (nil, nil) when no valid session exists for the token.
// Tests substitute a fake.
type Identity interface {
	CheckSession(ctx context.Context, token string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
}

// AuthGate guards every mutating inventory operation behind a binary
// authenticated check. Unauthenticated calls fail with ErrAuthRequired before
// any mutation is attempted; the caller routes the user into the login flow.
// The session is checked once against the identity service (Restore at
// startup, Login on demand) and held as a boolean thereafter.
type AuthGate struct {
	mu       sync.Mutex
	identity Identity
	store    *Store
	session  *Session
}

func NewAuthGate(identity Identity, store *Store) *AuthGate {
	return &AuthGate{identity: identity, store: store}
}

// Restore performs the one-shot startup session check. A missing or invalid
// token leaves the gate unauthenticated without error.
func (g *AuthGate) Restore(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sess, err := g.identity.CheckSession(ctx, token)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.session = sess
	g.mu.Unlock()
	return nil
}

// Login delegates to the identity service and, on success, flips the gate to
// authenticated. Credential errors pass through for inline display so the
// login flow can retry.
func (g *AuthGate) Login(ctx context.Context, email, password string) (*Session, error) {
	sess, err := g.identity.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.session = sess
	g.mu.Unlock()
	return sess, nil
}

// Logout clears the session on both sides.
func (g *AuthGate) Logout(ctx context.Context) error {
	g.mu.Lock()
	sess := g.session
	g.session = nil
	g.mu.Unlock()
	if sess == nil {
		return nil
	}
	return g.identity.Logout(ctx, sess.Token)
}

// CurrentSession returns the held session, or nil when unauthenticated.
func (g *AuthGate) CurrentSession() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

func (g *AuthGate) authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session != nil
}

// Add guards Store.Add.
func (g *AuthGate) Add(ctx context.Context, candidate Item) (Item, error) {
	if !g.authenticated() {
		return Item{}, ErrAuthRequired
	}
	return g.store.Add(ctx, candidate)
}

// Update guards Store.Update.
func (g *AuthGate) Update(ctx context.Context, id string, item Item) (Item, error) {
	if !g.authenticated() {
		return Item{}, ErrAuthRequired
	}
	return g.store.Update(ctx, id, item)
}

// RequestRemoval guards Store.RequestRemoval.
func (g *AuthGate) RequestRemoval(id string) (string, error) {
	if !g.authenticated() {
		return "", ErrAuthRequired
	}
	return g.store.RequestRemoval(id), nil
}

// ConfirmRemoval guards Store.ConfirmRemoval.
func (g *AuthGate) ConfirmRemoval(ctx context.Context, token string) error {
	if !g.authenticated() {
		return ErrAuthRequired
	}
	return g.store.ConfirmRemoval(ctx, token)
}
