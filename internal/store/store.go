package store

import (
	"context"
	"errors"

	"meeting-scheduler/internal/model"
)

var ErrNotFound = errors.New("not found")

// Store owns the canonical meeting collection.
//
// CreateMeeting assigns ID, Seq and timestamps; callers never choose them.
// UpdateMeeting replaces every editable field of the record with the same ID
// and keeps ID, Seq and CreatedAt. ListMeetings returns meetings in creation
// order. Unknown ids yield ErrNotFound.
type Store interface {
	CreateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error)
	GetMeeting(ctx context.Context, id string) (model.Meeting, error)
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	UpdateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error
	CountMeetings(ctx context.Context) (int, error)
}
