package meeting

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"meeting-scheduler/internal/model"
)

var (
	ErrClosed       = errors.New("form is closed")
	ErrUnknownField = errors.New("unknown field")
)

type State int

const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// Submission is what a successful save hands to the collection owner.
// TargetID is empty for a new meeting.
type Submission struct {
	TargetID string
	Meeting  model.Meeting
}

// Form is the create/edit editor. It is not safe for concurrent use.
type Form struct {
	state    State
	targetID string
	draft    Draft
	input    string
	errs     Errors
}

func NewForm() *Form {
	return &Form{errs: Errors{}}
}

// Open enters Creating when m is nil and Editing otherwise. Reopening an
// open form starts over.
func (f *Form) Open(m *model.Meeting) {
	f.input = ""
	f.errs = Errors{}
	if m == nil {
		f.state = Creating
		f.targetID = ""
		f.draft = Draft{Participants: []string{}}
		return
	}
	f.state = Editing
	f.targetID = m.ID
	f.draft = DraftOf(*m)
}

func (f *Form) Cancel() {
	f.state = Closed
	f.targetID = ""
	f.draft = Draft{}
	f.input = ""
	f.errs = Errors{}
}

func (f *Form) State() State { return f.state }

func (f *Form) TargetID() string { return f.targetID }

// Draft returns a copy of the working draft.
func (f *Form) Draft() Draft {
	d := f.draft
	d.Participants = slices.Clone(f.draft.Participants)
	return d
}

// Errors returns a copy of the errors from the last save attempt.
func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

func (f *Form) ParticipantInput() string { return f.input }

// Set updates one draft field and clears its error.
func (f *Form) Set(field Field, value string) error {
	if f.state == Closed {
		return ErrClosed
	}
	switch field {
	case FieldTitle:
		f.draft.Title = value
	case FieldDescription:
		f.draft.Description = value
	case FieldDate:
		f.draft.Date = value
	case FieldStartTime:
		f.draft.StartTime = value
	case FieldEndTime:
		f.draft.EndTime = value
	case FieldStatus:
		f.draft.Status = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	delete(f.errs, field)
	return nil
}

func (f *Form) SetParticipantInput(s string) error {
	if f.state == Closed {
		return ErrClosed
	}
	f.input = s
	return nil
}

// AddParticipant appends the trimmed input unless it is empty or already
// listed (case-sensitive). It reports whether the list changed.
func (f *Form) AddParticipant() bool {
	if f.state == Closed {
		return false
	}
	email := strings.TrimSpace(f.input)
	if email == "" || slices.Contains(f.draft.Participants, email) {
		return false
	}
	f.draft.Participants = append(f.draft.Participants, email)
	f.input = ""
	return true
}

func (f *Form) RemoveParticipant(email string) bool {
	if f.state == Closed {
		return false
	}
	i := slices.Index(f.draft.Participants, email)
	if i < 0 {
		return false
	}
	f.draft.Participants = slices.Delete(f.draft.Participants, i, i+1)
	return true
}

// Submit validates the draft and builds the submission without closing the
// form. On failure Errors reports every failing field.
func (f *Form) Submit() (Submission, error) {
	if f.state == Closed {
		return Submission{}, ErrClosed
	}
	f.errs = Errors{}

	m, errs := Build(f.draft)
	if !errs.Valid() {
		f.errs = errs
		return Submission{}, ErrInvalid
	}
	return Submission{TargetID: f.targetID, Meeting: m}, nil
}

// Save is Submit followed by Cancel when the draft is valid.
func (f *Form) Save() (Submission, error) {
	sub, err := f.Submit()
	if err != nil {
		return Submission{}, err
	}
	f.Cancel()
	return sub, nil
}
