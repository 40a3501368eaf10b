// Package dashboard owns the meeting collection: seeding, add/edit/delete and
// the filtered list view.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/store"
)

type Dashboard struct {
	store store.Store
	log   *slog.Logger
}

func New(st store.Store, log *slog.Logger) *Dashboard {
	return &Dashboard{store: st, log: log.With("component", "dashboard")}
}

// View is one rendering of the meeting list.
type View struct {
	Meetings []model.Meeting    `json:"meetings"`
	Total    int                `json:"total"`
	Empty    meeting.EmptyState `json:"empty"`
}

// Seed adds ms when the collection is empty. It reports how many were added.
func (d *Dashboard) Seed(ctx context.Context, ms []model.Meeting) (int, error) {
	n, err := d.store.CountMeetings(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		metrics.SetMeetingCount(n)
		return 0, nil
	}
	for _, m := range ms {
		if _, err := d.store.CreateMeeting(ctx, m); err != nil {
			return 0, fmt.Errorf("seed %q: %w", m.Title, err)
		}
	}
	metrics.SetMeetingCount(len(ms))
	d.log.Info("seeded meetings", "count", len(ms))
	return len(ms), nil
}

func (d *Dashboard) Add(ctx context.Context, m model.Meeting) (model.Meeting, error) {
	created, err := d.store.CreateMeeting(ctx, m)
	if err != nil {
		d.record("create", err)
		return model.Meeting{}, err
	}
	d.record("create", nil)
	d.refreshCount(ctx)
	d.log.Info("meeting created", "id", created.ID, "title", created.Title)
	return created, nil
}

// Edit replaces the fields of meeting id with those of m.
func (d *Dashboard) Edit(ctx context.Context, id string, m model.Meeting) (model.Meeting, error) {
	m.ID = id
	updated, err := d.store.UpdateMeeting(ctx, m)
	if err != nil {
		d.record("update", err)
		return model.Meeting{}, err
	}
	d.record("update", nil)
	d.log.Info("meeting updated", "id", id)
	return updated, nil
}

func (d *Dashboard) Delete(ctx context.Context, id string) error {
	if err := d.store.DeleteMeeting(ctx, id); err != nil {
		d.record("delete", err)
		return err
	}
	d.record("delete", nil)
	d.refreshCount(ctx)
	d.log.Info("meeting deleted", "id", id)
	return nil
}

// Save routes a form submission to Add or Edit.
func (d *Dashboard) Save(ctx context.Context, sub meeting.Submission) (model.Meeting, error) {
	if sub.TargetID == "" {
		return d.Add(ctx, sub.Meeting)
	}
	return d.Edit(ctx, sub.TargetID, sub.Meeting)
}

// SaveDraft validates d and adds it, or edits meeting id when id is set.
func (d *Dashboard) SaveDraft(ctx context.Context, id string, draft meeting.Draft) (model.Meeting, meeting.Errors, error) {
	m, errs := meeting.Build(draft)
	if !errs.Valid() {
		metrics.RecordValidationFailures(errs)
		op := "create"
		if id != "" {
			op = "update"
		}
		metrics.RecordMutation(op, "invalid")
		return model.Meeting{}, errs, meeting.ErrInvalid
	}
	saved, err := d.Save(ctx, meeting.Submission{TargetID: id, Meeting: m})
	return saved, nil, err
}

func (d *Dashboard) Get(ctx context.Context, id string) (model.Meeting, error) {
	return d.store.GetMeeting(ctx, id)
}

func (d *Dashboard) Meetings(ctx context.Context) ([]model.Meeting, error) {
	return d.store.ListMeetings(ctx)
}

func (d *Dashboard) View(ctx context.Context, q meeting.Query) (View, error) {
	all, err := d.store.ListMeetings(ctx)
	if err != nil {
		return View{}, err
	}
	out := meeting.Apply(all, q)
	return View{Meetings: out, Total: len(all), Empty: meeting.Describe(len(all), out)}, nil
}

func (d *Dashboard) record(op string, err error) {
	switch {
	case err == nil:
		metrics.RecordMutation(op, "ok")
	case errors.Is(err, store.ErrNotFound):
		metrics.RecordMutation(op, "not_found")
	default:
		metrics.RecordMutation(op, "error")
		d.log.Error("meeting "+op+" failed", "err", err)
	}
}

func (d *Dashboard) refreshCount(ctx context.Context) {
	if n, err := d.store.CountMeetings(ctx); err == nil {
		metrics.SetMeetingCount(n)
	}
}
