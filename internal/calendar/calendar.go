// Package calendar converts meetings to and from iCalendar (RFC 5545).
package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/model"
)

const prodID = "-//meeting-scheduler//EN"

const (
	statusConfirmed = "CONFIRMED"
	statusCancelled = "CANCELLED"
)

var ErrNoCalendar = errors.New("no calendar data")

// Export writes ms as one VCALENDAR. Meeting times are written as UTC.
func Export(w io.Writer, ms []model.Meeting, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	for _, m := range ms {
		start, end, err := span(m)
		if err != nil {
			return fmt.Errorf("meeting %s: %w", m.ID, err)
		}
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, m.ID)
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, start)
		ev.Props.SetDateTime(ical.PropDateTimeEnd, end)
		ev.Props.SetText(ical.PropSummary, m.Title)
		if m.Description != "" {
			ev.Props.SetText(ical.PropDescription, m.Description)
		}
		st := statusConfirmed
		if m.Status == model.StatusCanceled {
			st = statusCancelled
		}
		ev.Props.SetText(ical.PropStatus, st)
		for _, p := range m.Participants {
			prop := ical.NewProp(ical.PropAttendee)
			prop.Value = "mailto:" + p
			ev.Props.Add(prop)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func span(m model.Meeting) (time.Time, time.Time, error) {
	start, err := clock(m.Date, m.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clock(m.Date, m.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func clock(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q: %w", hhmm, err)
	}
	d := day.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// Import decodes every VEVENT in r into a draft. Drafts are not validated;
// events without a usable start or end come back with empty date/time
// fields so validation reports them.
func Import(r io.Reader) ([]meeting.Draft, error) {
	dec := ical.NewDecoder(r)
	var out []meeting.Draft
	found := false
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}
		found = true
		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			out = append(out, draftOf(comp))
		}
	}
	if !found {
		return nil, ErrNoCalendar
	}
	return out, nil
}

func draftOf(comp *ical.Component) meeting.Draft {
	d := meeting.Draft{Participants: []string{}}
	d.Title = text(comp, ical.PropSummary)
	d.Description = text(comp, ical.PropDescription)

	if p := comp.Props.Get(ical.PropDateTimeStart); p != nil {
		if t, err := p.DateTime(time.UTC); err == nil {
			t = t.UTC()
			d.Date = t.Format(model.DateLayout)
			d.StartTime = t.Format("15:04")
		}
	}
	if p := comp.Props.Get(ical.PropDateTimeEnd); p != nil {
		if t, err := p.DateTime(time.UTC); err == nil {
			d.EndTime = t.UTC().Format("15:04")
		}
	}

	d.Status = string(model.StatusScheduled)
	if strings.EqualFold(text(comp, ical.PropStatus), statusCancelled) {
		d.Status = string(model.StatusCanceled)
	}

	seen := map[string]bool{}
	for _, a := range comp.Props.Values(ical.PropAttendee) {
		email := strings.TrimSpace(a.Value)
		if len(email) > len("mailto:") && strings.EqualFold(email[:7], "mailto:") {
			email = email[7:]
		}
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		d.Participants = append(d.Participants, email)
	}
	return d
}

func text(comp *ical.Component, name string) string {
	p := comp.Props.Get(name)
	if p == nil {
		return ""
	}
	s, err := p.Text()
	if err != nil {
		return p.Value
	}
	return s
}
