package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/store"
)

func setup(t *testing.T) *Store {
	t.Helper()
	_ = godotenv.Load("../../../.env")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	s, err := New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestMeetingLifecycle(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	created, err := s.CreateMeeting(ctx, model.Meeting{
		Title:        "Team meeting",
		Description:  "Monthly sync",
		Date:         time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:30",
		Participants: []string{"jan@example.com", "anna@example.com"},
		CreatedBy:    "admin",
		Status:       model.StatusScheduled,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DeleteMeeting(context.Background(), created.ID) })

	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.Seq)
	assert.Equal(t, "2025-06-05", created.Day())

	got, err := s.GetMeeting(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"jan@example.com", "anna@example.com"}, got.Participants)

	got.Title = "Team meeting (moved)"
	got.Status = model.StatusCanceled
	updated, err := s.UpdateMeeting(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, created.Seq, updated.Seq)
	assert.Equal(t, model.StatusCanceled, updated.Status)

	list, err := s.ListMeetings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	require.NoError(t, s.DeleteMeeting(ctx, created.ID))
	assert.ErrorIs(t, s.DeleteMeeting(ctx, created.ID), store.ErrNotFound)
	_, err = s.GetMeeting(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateUnknownMeeting(t *testing.T) {
	s := setup(t)
	_, err := s.UpdateMeeting(context.Background(), model.Meeting{
		ID:        "00000000-0000-0000-0000-000000000000",
		Title:     "x",
		Date:      time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    model.StatusScheduled,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
