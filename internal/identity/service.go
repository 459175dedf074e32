// Package identity implements the external identity service boundary: owner
// accounts in Postgres, credential checks, and stateless JWT sessions.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-tracker/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email is unknown or the password
// does not match. Surfaced inline in the login flow so the user can retry.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned by CreateOwner for an already registered email.
var ErrEmailTaken = errors.New("email already registered")

const sessionTTL = time.Hour

// Owner is a store-owner account as stored by the identity service.
type Owner struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"-"`
}

// Service is the Postgres-backed identity provider. It satisfies
// core.Identity.
type Service struct {
	pool      *pgxpool.Pool
	jwtSecret []byte
}

func NewService(pool *pgxpool.Pool, jwtSecret string) *Service {
	return &Service{pool: pool, jwtSecret: []byte(jwtSecret)}
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// CreateOwner registers a pre-confirmed owner account. Accounts are confirmed
// immediately because no mail server is configured. An empty name defaults to
// "Store Owner".
func (s *Service) CreateOwner(ctx context.Context, email, password, name string) (*Owner, error) {
	if name == "" {
		name = "Store Owner"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO owners (id, email, name, password_hash, confirmed_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, id, email, name, string(hash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert owner: %w", err)
	}
	return &Owner{ID: id, Email: email, Name: name}, nil
}

// Login verifies credentials and issues a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (*core.Session, error) {
	var id, name, hash string
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, password_hash FROM owners WHERE email = $1
	`, email).Scan(&id, &name, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up owner: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := &sessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &core.Session{Token: signed, Email: email, Name: name}, nil
}

// CheckSession validates a session token. An absent, malformed, or expired
// token yields (nil, nil): no session, not a service failure.
func (s *Service) CheckSession(_ context.Context, token string) (*core.Session, error) {
	if token == "" {
		return nil, nil
	}
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}
	return &core.Session{Token: token, Email: claims.Email, Name: claims.Name}, nil
}

// Logout is a no-op server side: session tokens are stateless and simply
// dropped by the client.
func (s *Service) Logout(context.Context, string) error {
	return nil
}
