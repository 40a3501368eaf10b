package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// skip auth for these
var open = map[string]bool{
	pb.MeetingService_Login_FullMethodName:         true,
	pb.MeetingService_ValidateDraft_FullMethodName: true,
	pb.MeetingService_GetSession_FullMethodName:    true,
}

// Resumer rebuilds a session from a bearer token.
type Resumer interface {
	Resume(token string) (session.Session, error)
}

func WithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom returns the session attached by Auth, or the anonymous session.
func SessionFrom(ctx context.Context) session.Session {
	s, _ := ctx.Value(sessionKey).(session.Session)
	return s
}

// BearerToken extracts the token from "authorization: Bearer <jwt>" metadata.
func BearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(vals[0], "Bearer "))
}

// Auth attaches the caller's session to the context. Open methods run for
// anonymous callers too; every other method needs a valid token.
func Auth(r Resumer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		raw := BearerToken(ctx)
		if open[info.FullMethod] {
			if raw != "" {
				if s, err := r.Resume(raw); err == nil {
					ctx = WithSession(ctx, s)
				}
			}
			return next(ctx, req)
		}

		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}
		s, err := r.Resume(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}
		return next(WithSession(ctx, s), req)
	}
}
