package meeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  Errors
	}{
		{
			name:  "valid",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00"},
			want:  Errors{},
		},
		{
			name:  "missing title only",
			draft: Draft{Title: "", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00"},
			want:  Errors{FieldTitle: MsgTitleRequired},
		},
		{
			name:  "end before start",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "12:00", EndTime: "11:00"},
			want:  Errors{FieldEndTime: MsgEndBeforeStart},
		},
		{
			name:  "equal times",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "11:00", EndTime: "11:00"},
			want:  Errors{FieldEndTime: MsgEndBeforeStart},
		},
		{
			name:  "whitespace title",
			draft: Draft{Title: "   ", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00"},
			want:  Errors{FieldTitle: MsgTitleRequired},
		},
		{
			name:  "everything empty",
			draft: Draft{},
			want: Errors{
				FieldTitle:     MsgTitleRequired,
				FieldDate:      MsgDateRequired,
				FieldStartTime: MsgStartRequired,
				FieldEndTime:   MsgEndRequired,
			},
		},
		{
			name:  "only end missing",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "10:00"},
			want:  Errors{FieldEndTime: MsgEndRequired},
		},
		{
			name:  "bad formats",
			draft: Draft{Title: "X", Date: "01.06.2025", StartTime: "9:00", EndTime: "25:00"},
			want: Errors{
				FieldDate:      MsgDateFormat,
				FieldStartTime: MsgTimeFormat,
				FieldEndTime:   MsgTimeFormat,
			},
		},
		{
			name:  "unpadded start is not compared",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "9:00", EndTime: "10:00"},
			want:  Errors{FieldStartTime: MsgTimeFormat},
		},
		{
			name:  "impossible date",
			draft: Draft{Title: "X", Date: "2025-02-30", StartTime: "10:00", EndTime: "11:00"},
			want:  Errors{FieldDate: MsgDateFormat},
		},
		{
			name:  "unknown status",
			draft: Draft{Title: "X", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00", Status: "done"},
			want:  Errors{FieldStatus: MsgStatusUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.draft))
		})
	}
}

func TestValidateIsRepeatable(t *testing.T) {
	d := Draft{Title: "", Date: "2025-06-01", StartTime: "12:00", EndTime: "11:00"}
	first := Validate(d)
	second := Validate(d)
	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestValidateProperties(t *testing.T) {
	times := []string{"", "00:00", "08:30", "11:00", "12:00", "23:59"}
	for _, title := range []string{"", " ", "Standup"} {
		for _, start := range times {
			for _, end := range times {
				d := Draft{Title: title, Date: "2025-06-01", StartTime: start, EndTime: end}
				errs := Validate(d)
				if title == "" || title == " " {
					assert.Contains(t, errs, FieldTitle)
				}
				if start != "" && end != "" && start >= end {
					assert.Equal(t, MsgEndBeforeStart, errs[FieldEndTime], "start=%s end=%s", start, end)
				}
			}
		}
	}
}

func TestBuild(t *testing.T) {
	m, errs := Build(Draft{
		Title:        "  Sync  ",
		Description:  " notes ",
		Date:         "2025-06-05",
		StartTime:    "10:00",
		EndTime:      "11:30",
		Participants: []string{"jan@example.com"},
	})
	require.True(t, errs.Valid())
	assert.Equal(t, "Sync", m.Title)
	assert.Equal(t, "notes", m.Description)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, DefaultCreator, m.CreatedBy)
	assert.Equal(t, model.StatusScheduled, m.Status)
	assert.Equal(t, []string{"jan@example.com"}, m.Participants)
	assert.Empty(t, m.ID)

	_, errs = Build(Draft{Title: "X"})
	assert.False(t, errs.Valid())
}

func TestBuildNormalizesParticipants(t *testing.T) {
	in := []string{" b@example.com", "a@example.com", "b@example.com ", " ", "", "A@example.com", "a@example.com"}
	m, errs := Build(Draft{
		Title:        "Sync",
		Date:         "2025-06-05",
		StartTime:    "10:00",
		EndTime:      "11:00",
		Participants: in,
	})
	require.True(t, errs.Valid())
	assert.Equal(t, []string{"b@example.com", "a@example.com", "A@example.com"}, m.Participants)
	assert.Equal(t, " b@example.com", in[0])

	m, errs = Build(Draft{Title: "Sync", Date: "2025-06-05", StartTime: "10:00", EndTime: "11:00"})
	require.True(t, errs.Valid())
	assert.Empty(t, m.Participants)
}

func TestDraftOf(t *testing.T) {
	m := model.Meeting{
		ID:           "id-1",
		Title:        "Review",
		Date:         time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		StartTime:    "14:00",
		EndTime:      "15:00",
		Participants: []string{"a@example.com"},
		Status:       model.StatusCanceled,
	}
	d := DraftOf(m)
	assert.Equal(t, "2025-06-07", d.Date)
	assert.Equal(t, "canceled", d.Status)

	d.Participants[0] = "changed"
	assert.Equal(t, "a@example.com", m.Participants[0])
}
