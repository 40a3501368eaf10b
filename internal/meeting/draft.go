// Package meeting holds the meeting rules that do not depend on storage or
// transport: draft validation, the list filter/sort engine and the form
// editor.
package meeting

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	"meeting-scheduler/internal/model"
)

// DefaultCreator is stamped on every meeting saved through a draft.
const DefaultCreator = "current-user"

var ErrInvalid = errors.New("validation failed")

type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldDate        Field = "date"
	FieldStartTime   Field = "startTime"
	FieldEndTime     Field = "endTime"
	FieldStatus      Field = "status"
)

const (
	MsgTitleRequired  = "title required"
	MsgDateRequired   = "date required"
	MsgStartRequired  = "start time required"
	MsgEndRequired    = "end time required"
	MsgDateFormat     = "date must be YYYY-MM-DD"
	MsgTimeFormat     = "time must be HH:MM"
	MsgEndBeforeStart = "end time must be after start time"
	MsgStatusUnknown  = "status must be scheduled or canceled"
)

// Known reports whether f names an editable draft field.
func (f Field) Known() bool {
	switch f {
	case FieldTitle, FieldDescription, FieldDate, FieldStartTime, FieldEndTime, FieldStatus:
		return true
	}
	return false
}

// Errors maps a failing field to its message. An empty map means valid.
type Errors map[Field]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Draft is an unvalidated meeting as typed into the form.
type Draft struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Participants []string `json:"participants"`
	Status       string   `json:"status,omitempty"`
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Validate checks every rule on every call; there is no short-circuit
// across fields.
func Validate(d Draft) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = MsgTitleRequired
	}

	if d.Date == "" {
		errs[FieldDate] = MsgDateRequired
	} else if !validDate(d.Date) {
		errs[FieldDate] = MsgDateFormat
	}

	if d.StartTime == "" {
		errs[FieldStartTime] = MsgStartRequired
	} else if !timeRe.MatchString(d.StartTime) {
		errs[FieldStartTime] = MsgTimeFormat
	}

	if d.EndTime == "" {
		errs[FieldEndTime] = MsgEndRequired
	} else if !timeRe.MatchString(d.EndTime) {
		errs[FieldEndTime] = MsgTimeFormat
	}

	// ordering is only checked once both times are well formed
	if timeRe.MatchString(d.StartTime) && timeRe.MatchString(d.EndTime) && d.StartTime >= d.EndTime {
		errs[FieldEndTime] = MsgEndBeforeStart
	}

	if d.Status != "" && !model.Status(d.Status).Valid() {
		errs[FieldStatus] = MsgStatusUnknown
	}

	return errs
}

func validDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// Build validates d and turns it into a meeting without an ID.
func Build(d Draft) (model.Meeting, Errors) {
	if errs := Validate(d); !errs.Valid() {
		return model.Meeting{}, errs
	}

	date, _ := time.Parse(model.DateLayout, d.Date)
	status := model.Status(d.Status)
	if status == "" {
		status = model.StatusScheduled
	}

	return model.Meeting{
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		Date:         date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Participants: participantSet(d.Participants),
		CreatedBy:    DefaultCreator,
		Status:       status,
	}, nil
}

// participantSet trims every entry and drops blanks and exact duplicates,
// keeping first-seen order.
func participantSet(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DraftOf copies every editable field of m into a draft.
func DraftOf(m model.Meeting) Draft {
	participants := make([]string, len(m.Participants))
	copy(participants, m.Participants)
	return Draft{
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Day(),
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Participants: participants,
		Status:       string(m.Status),
	}
}
