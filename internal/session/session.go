// Package session is the auth gate: a single demo identity, immutable
// session values and the navigation rules that depend on them.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"meeting-scheduler/internal/auth"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

const (
	DefaultEmail    = "admin@test.com"
	DefaultPassword = "admin123"
)

// Session is the auth state. The zero value is anonymous.
type Session struct {
	User          *model.User `json:"user"`
	Token         string      `json:"token,omitempty"`
	TokenID       string      `json:"-"`
	Expires       time.Time   `json:"-"`
	Authenticated bool        `json:"isAuthenticated"`
	Loading       bool        `json:"loading"`
}

type Config struct {
	Email    string
	Password string
	Secret   []byte
	TTL      time.Duration
}

type Authenticator struct {
	user   model.User
	secret []byte
	ttl    time.Duration
	log    *slog.Logger

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

func NewAuthenticator(cfg Config, log *slog.Logger) (*Authenticator, error) {
	if cfg.Email == "" {
		cfg.Email = DefaultEmail
	}
	if cfg.Password == "" {
		cfg.Password = DefaultPassword
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if len(cfg.Secret) == 0 {
		return nil, errors.New("session: empty signing secret")
	}
	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("session: hash demo password: %w", err)
	}
	return &Authenticator{
		user: model.User{
			ID:           "1",
			Username:     "admin",
			Email:        cfg.Email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		},
		secret:  cfg.Secret,
		ttl:     cfg.TTL,
		log:     log.With("component", "session"),
		revoked: make(map[string]time.Time),
	}, nil
}

// Login checks the credential pair. A failed attempt ends s as well: the
// token it carried is revoked and the anonymous session is returned.
func (a *Authenticator) Login(s Session, email, password string) (Session, error) {
	if email != a.user.Email || !auth.CheckPassword(a.user.PasswordHash, password) {
		metrics.RecordLogin("rejected")
		a.log.Info("login rejected", "email", email)
		return a.Logout(s), ErrInvalidCredentials
	}

	raw, id, err := auth.MakeToken(auth.Subject{
		UserID: a.user.ID,
		Email:  a.user.Email,
		Role:   string(a.user.Role),
	}, a.secret, a.ttl)
	if err != nil {
		return Session{}, fmt.Errorf("session: sign token: %w", err)
	}

	metrics.RecordLogin("ok")
	a.log.Info("login", "user", a.user.Username)
	u := a.user
	return Session{User: &u, Token: raw, TokenID: id, Expires: time.Now().Add(a.ttl), Authenticated: true}, nil
}

// Logout revokes the session's token and returns the anonymous session.
func (a *Authenticator) Logout(s Session) Session {
	if s.TokenID != "" {
		a.mu.Lock()
		a.revoked[s.TokenID] = time.Now().Add(a.ttl)
		a.pruneLocked()
		a.mu.Unlock()
		a.log.Info("logout", "token_id", s.TokenID)
	}
	return Session{}
}

// Resume rebuilds a session from a bearer token.
func (a *Authenticator) Resume(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrUnauthenticated
	}
	c, err := auth.ParseToken(token, a.secret)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	a.mu.Lock()
	_, gone := a.revoked[c.ID]
	a.mu.Unlock()
	if gone || c.UserID != a.user.ID {
		return Session{}, ErrUnauthenticated
	}
	u := a.user
	out := Session{User: &u, Token: token, TokenID: c.ID, Authenticated: true}
	if c.ExpiresAt != nil {
		out.Expires = c.ExpiresAt.Time
	}
	return out, nil
}

func (a *Authenticator) pruneLocked() {
	now := time.Now()
	for id, exp := range a.revoked {
		if now.After(exp) {
			delete(a.revoked, id)
		}
	}
}

const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Route decides where a navigation to path ends up for session s.
// redirect is false when path itself should be shown.
func Route(path string, s Session) (target string, redirect bool) {
	switch path {
	case PathRoot:
		if s.Authenticated {
			return PathDashboard, true
		}
		return PathLogin, true
	case PathDashboard:
		if !s.Authenticated {
			return PathLogin, true
		}
	case PathLogin:
		if s.Authenticated {
			return PathDashboard, true
		}
	}
	return path, false
}
