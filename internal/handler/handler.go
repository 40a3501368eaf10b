package handler

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/dashboard"
	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/internal/store"
)

// Handler implements pb.MeetingServiceServer on top of the dashboard and the
// auth gate.
type Handler struct {
	pb.UnimplementedMeetingServiceServer
	board *dashboard.Dashboard
	auth  *session.Authenticator
	log   *slog.Logger
}

func New(board *dashboard.Dashboard, auth *session.Authenticator, log *slog.Logger) *Handler {
	return &Handler{board: board, auth: auth, log: log.With("component", "grpc")}
}

// toStatus maps domain errors onto gRPC codes. Unknown errors are logged and
// reported without detail.
func (h *Handler) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, session.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, session.ErrInvalidCredentials.Error())
	case errors.Is(err, session.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	}
	h.log.Error(op+" failed", "err", err)
	return status.Error(codes.Internal, "internal error")
}

// invalid reports field errors as InvalidArgument with a stable message:
// "validation failed: date: date required; title: title required".
func invalid(errs meeting.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + errs[meeting.Field(f)]
	}
	return status.Error(codes.InvalidArgument, meeting.ErrInvalid.Error()+": "+strings.Join(parts, "; "))
}
