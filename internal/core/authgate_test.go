package core_test

import (
	"context"
	"errors"
	"testing"

	"inventory-tracker/internal/core"
)

// fakeIdentity substitutes the external identity service in tests.
type fakeIdentity struct {
	email      string
	password   string
	validToken string
	logouts    int
}

func (f *fakeIdentity) CheckSession(_ context.Context, token string) (*core.Session, error) {
	if token != "" && token == f.validToken {
		return &core.Session{Token: token, Email: f.email}, nil
	}
	return nil, nil
}

func (f *fakeIdentity) Login(_ context.Context, email, password string) (*core.Session, error) {
	if email != f.email || password != f.password {
		return nil, errors.New("invalid email or password")
	}
	return &core.Session{Token: "fresh-token", Email: email}, nil
}

func (f *fakeIdentity) Logout(context.Context, string) error {
	f.logouts++
	return nil
}

func newGate(t *testing.T) (*core.AuthGate, *core.Store, *fakeIdentity) {
	t.Helper()
	store := seedStore(t,
		item("Sourdough Loaf", "Baked Goods", 18, 6),
		item("Ground Beef 1lb", "Meat", 32, 12),
		item("Goat Milk Soap", "Self Care", 41, 15),
	)
	id := &fakeIdentity{email: "owner@dcfarms.test", password: "hunter2", validToken: "stored-token"}
	return core.NewAuthGate(id, store), store, id
}

func TestAuthGate_UnauthenticatedMutationsAreRejected(t *testing.T) {
	gate, store, _ := newGate(t)
	ctx := context.Background()
	before := len(store.List())

	if _, err := gate.Add(ctx, item("Apple Pie", "Baked Goods", 6, 4)); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("Add error = %v, want ErrAuthRequired", err)
	}
	if _, err := gate.Update(ctx, store.List()[0].ID, item("Rye Loaf", "Baked Goods", 9, 6)); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("Update error = %v, want ErrAuthRequired", err)
	}
	if _, err := gate.RequestRemoval(store.List()[0].ID); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("RequestRemoval error = %v, want ErrAuthRequired", err)
	}
	if err := gate.ConfirmRemoval(ctx, "any-token"); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("ConfirmRemoval error = %v, want ErrAuthRequired", err)
	}

	if got := len(store.List()); got != before {
		t.Errorf("collection length changed from %d to %d without authentication", before, got)
	}
}

func TestAuthGate_LoginOpensTheGate(t *testing.T) {
	gate, store, _ := newGate(t)
	ctx := context.Background()

	sess, err := gate.Login(ctx, "owner@dcfarms.test", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Email != "owner@dcfarms.test" {
		t.Errorf("session email = %q", sess.Email)
	}

	if _, err := gate.Add(ctx, item("Apple Pie", "Baked Goods", 6, 4)); err != nil {
		t.Errorf("Add after login: %v", err)
	}
	if len(store.List()) != 4 {
		t.Errorf("authenticated add did not reach the store")
	}
}

func TestAuthGate_BadCredentialsStayUnauthenticated(t *testing.T) {
	gate, _, _ := newGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "owner@dcfarms.test", "wrong"); err == nil {
		t.Fatal("Login with bad credentials succeeded")
	}
	if _, err := gate.Add(ctx, item("Apple Pie", "Baked Goods", 6, 4)); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("Add after failed login error = %v, want ErrAuthRequired", err)
	}
}

func TestAuthGate_LogoutClosesTheGate(t *testing.T) {
	gate, _, id := newGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "owner@dcfarms.test", "hunter2"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := gate.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if id.logouts != 1 {
		t.Errorf("identity Logout called %d times, want 1", id.logouts)
	}
	if gate.CurrentSession() != nil {
		t.Error("session survives logout")
	}
	if _, err := gate.Add(ctx, item("Apple Pie", "Baked Goods", 6, 4)); !errors.Is(err, core.ErrAuthRequired) {
		t.Errorf("Add after logout error = %v, want ErrAuthRequired", err)
	}
}

func TestAuthGate_Restore(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		authenticated bool
	}{
		{"valid stored token restores the session", "stored-token", true},
		{"stale token leaves the gate closed", "expired-token", false},
		{"empty token leaves the gate closed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, _, _ := newGate(t)
			if err := gate.Restore(context.Background(), tt.token); err != nil {
				t.Fatalf("Restore: %v", err)
			}
			if got := gate.CurrentSession() != nil; got != tt.authenticated {
				t.Errorf("authenticated = %v, want %v", got, tt.authenticated)
			}
		})
	}
}
