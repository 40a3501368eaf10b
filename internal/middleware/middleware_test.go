package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
)

type fakeResumer map[string]session.Session

func (f fakeResumer) Resume(token string) (session.Session, error) {
	s, ok := f[token]
	if !ok {
		return session.Session{}, session.ErrUnauthenticated
	}
	return s, nil
}

var admin = session.Session{
	User:          &model.User{ID: "1", Username: "admin"},
	Token:         "good",
	TokenID:       "jti-1",
	Authenticated: true,
}

func bearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(),
		metadata.New(map[string]string{"authorization": "Bearer " + token}))
}

func echoSession(ctx context.Context, _ any) (any, error) {
	return SessionFrom(ctx), nil
}

func TestAuthProtectedMethod(t *testing.T) {
	ic := Auth(fakeResumer{"good": admin})
	info := &grpc.UnaryServerInfo{FullMethod: pb.MeetingService_ListMeetings_FullMethodName}

	tests := []struct {
		name string
		ctx  context.Context
		code codes.Code
	}{
		{"no metadata", context.Background(), codes.Unauthenticated},
		{"bad token", bearer("bad"), codes.Unauthenticated},
		{"good token", bearer("good"), codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ic(tt.ctx, nil, info, echoSession)
			assert.Equal(t, tt.code, status.Code(err))
			if tt.code == codes.OK {
				assert.Equal(t, admin, out)
			}
		})
	}
}

func TestAuthOpenMethod(t *testing.T) {
	ic := Auth(fakeResumer{"good": admin})
	info := &grpc.UnaryServerInfo{FullMethod: pb.MeetingService_GetSession_FullMethodName}

	out, err := ic(context.Background(), nil, info, echoSession)
	require.NoError(t, err)
	assert.Equal(t, session.Session{}, out)

	out, err = ic(bearer("bad"), nil, info, echoSession)
	require.NoError(t, err)
	assert.Equal(t, session.Session{}, out)

	out, err = ic(bearer("good"), nil, info, echoSession)
	require.NoError(t, err)
	assert.Equal(t, admin, out)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken(bearer("abc")))
	assert.Equal(t, "", BearerToken(context.Background()))
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	// buckets are per key
	assert.True(t, rl.Allow("b"))
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")
	rl.sweep(time.Now().Add(time.Hour), 3*time.Minute)
	rl.mu.Lock()
	n := len(rl.clients)
	rl.mu.Unlock()
	assert.Zero(t, n)
}

func TestRateLimiterRunStops(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	ic := RateLimit(NewRateLimiter(0.001, 1))
	ctx := peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 4000},
	})
	ok := func(context.Context, any) (any, error) { return "ok", nil }

	login := &grpc.UnaryServerInfo{FullMethod: pb.MeetingService_Login_FullMethodName}
	_, err := ic(ctx, nil, login, ok)
	require.NoError(t, err)
	_, err = ic(ctx, nil, login, ok)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// other methods are not limited
	list := &grpc.UnaryServerInfo{FullMethod: pb.MeetingService_ListMeetings_FullMethodName}
	for i := 0; i < 3; i++ {
		_, err := ic(ctx, nil, list, ok)
		assert.NoError(t, err)
	}
}

func TestSessionFromEmptyContext(t *testing.T) {
	s := SessionFrom(context.Background())
	assert.False(t, s.Authenticated)
	assert.Nil(t, s.User)
}
