package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/model"
)

func newAuth(t *testing.T) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(Config{Secret: []byte("test-secret"), TTL: time.Hour},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return a
}

func TestLogin(t *testing.T) {
	a := newAuth(t)

	s, err := a.Login(Session{}, "admin@test.com", "admin123")
	require.NoError(t, err)
	assert.True(t, s.Authenticated)
	assert.False(t, s.Loading)
	assert.NotEmpty(t, s.Token)
	assert.NotEmpty(t, s.TokenID)
	require.NotNil(t, s.User)
	assert.Equal(t, "1", s.User.ID)
	assert.Equal(t, "admin", s.User.Username)
	assert.Equal(t, "admin@test.com", s.User.Email)
	assert.Equal(t, model.RoleAdmin, s.User.Role)
}

func TestLoginRejected(t *testing.T) {
	a := newAuth(t)

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@test.com", "wrong"},
		{"wrong email", "user@test.com", "admin123"},
		{"email case differs", "Admin@test.com", "admin123"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := a.Login(Session{}, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, "invalid login credentials", err.Error())
			assert.Equal(t, Session{}, s)
		})
	}
}

func TestLoginConfiguredCredentials(t *testing.T) {
	a, err := NewAuthenticator(Config{
		Email:    "demo@example.com",
		Password: "s3cret",
		Secret:   []byte("k"),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = a.Login(Session{}, "admin@test.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	s, err := a.Login(Session{}, "demo@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, s.Authenticated)
}

func TestNewAuthenticatorNeedsSecret(t *testing.T) {
	_, err := NewAuthenticator(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestResumeAndLogout(t *testing.T) {
	a := newAuth(t)

	s, err := a.Login(Session{}, "admin@test.com", "admin123")
	require.NoError(t, err)

	resumed, err := a.Resume(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.TokenID, resumed.TokenID)
	assert.True(t, resumed.Authenticated)

	out := a.Logout(resumed)
	assert.Equal(t, Session{}, out)

	_, err = a.Resume(s.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFailedLoginEndsSession(t *testing.T) {
	a := newAuth(t)

	s, err := a.Login(Session{}, "admin@test.com", "admin123")
	require.NoError(t, err)

	out, err := a.Login(s, "x@y.z", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, Session{}, out)

	_, err = a.Resume(s.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionExpiry(t *testing.T) {
	a := newAuth(t)

	s, err := a.Login(Session{}, "admin@test.com", "admin123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.Expires, time.Minute)

	resumed, err := a.Resume(s.Token)
	require.NoError(t, err)
	assert.WithinDuration(t, s.Expires, resumed.Expires, 2*time.Second)
}

func TestResumeRejects(t *testing.T) {
	a := newAuth(t)
	other, err := NewAuthenticator(Config{Secret: []byte("other-secret")},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	foreign, err := other.Login(Session{}, "admin@test.com", "admin123")
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", foreign.Token} {
		_, err := a.Resume(tok)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
}

func TestLogoutAnonymous(t *testing.T) {
	a := newAuth(t)
	assert.Equal(t, Session{}, a.Logout(Session{}))
}

func TestRoute(t *testing.T) {
	authed := Session{Authenticated: true, User: &model.User{ID: "1"}}

	tests := []struct {
		path     string
		s        Session
		target   string
		redirect bool
	}{
		{"/", Session{}, "/login", true},
		{"/", authed, "/dashboard", true},
		{"/dashboard", Session{}, "/login", true},
		{"/dashboard", authed, "/dashboard", false},
		{"/login", Session{}, "/login", false},
		{"/login", authed, "/dashboard", true},
		{"/other", Session{}, "/other", false},
	}
	for _, tt := range tests {
		target, redirect := Route(tt.path, tt.s)
		assert.Equal(t, tt.target, target, tt.path)
		assert.Equal(t, tt.redirect, redirect, tt.path)
	}
}

// Scenario: anonymous user logs in with the demo credentials and lands on the dashboard.
func TestLoginThenNavigate(t *testing.T) {
	a := newAuth(t)

	s := Session{}
	target, _ := Route("/dashboard", s)
	assert.Equal(t, "/login", target)

	s, err := a.Login(s, "admin@test.com", "admin123")
	require.NoError(t, err)
	target, redirect := Route("/login", s)
	assert.Equal(t, "/dashboard", target)
	assert.True(t, redirect)
}
