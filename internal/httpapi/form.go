package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/session"
)

type formView struct {
	State            string         `json:"state"`
	TargetID         string         `json:"targetId,omitempty"`
	Draft            meeting.Draft  `json:"draft"`
	Errors           meeting.Errors `json:"errors"`
	ParticipantInput string         `json:"participantInput"`
}

func viewOf(f *meeting.Form) formView {
	return formView{
		State:            f.State().String(),
		TargetID:         f.TargetID(),
		Draft:            f.Draft(),
		Errors:           f.Errors(),
		ParticipantInput: f.ParticipantInput(),
	}
}

// withForm runs fn on the caller's editor while holding the editor lock.
func (s *Server) withForm(c *gin.Context, fn func(f *meeting.Form)) {
	sess := c.MustGet(sessionCtxKey).(session.Session)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.forms[sess.TokenID]
	if !ok {
		e = &editor{form: meeting.NewForm(), expires: sess.Expires}
		s.forms[sess.TokenID] = e
	}
	fn(e.form)
}

func (s *Server) formState(c *gin.Context) {
	s.withForm(c, func(f *meeting.Form) {
		c.JSON(http.StatusOK, viewOf(f))
	})
}

type openRequest struct {
	ID string `json:"id"`
}

// openForm starts a new draft, or edits meeting ID when one is given.
func (s *Server) openForm(c *gin.Context) {
	var req openRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if req.ID == "" {
		s.withForm(c, func(f *meeting.Form) {
			f.Open(nil)
			c.JSON(http.StatusOK, viewOf(f))
		})
		return
	}

	m, err := s.board.Get(c.Request.Context(), req.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.withForm(c, func(f *meeting.Form) {
		f.Open(&m)
		c.JSON(http.StatusOK, viewOf(f))
	})
}

// setFormFields applies {"field": "value"} updates. participantInput is
// accepted alongside the draft fields. Nothing is applied when a key is
// unknown.
func (s *Server) setFormFields(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	for k := range req {
		if k != "participantInput" && !meeting.Field(k).Known() {
			s.fail(c, fmt.Errorf("%w: %s", meeting.ErrUnknownField, k))
			return
		}
	}
	s.withForm(c, func(f *meeting.Form) {
		for k, v := range req {
			var err error
			if k == "participantInput" {
				err = f.SetParticipantInput(v)
			} else {
				err = f.Set(meeting.Field(k), v)
			}
			if err != nil {
				s.fail(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, viewOf(f))
	})
}

type participantRequest struct {
	Email string `json:"email"`
}

// addParticipant adds the body's email, or the pending participant input
// when the body has none.
func (s *Server) addParticipant(c *gin.Context) {
	var req participantRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	s.withForm(c, func(f *meeting.Form) {
		if req.Email != "" {
			if err := f.SetParticipantInput(req.Email); err != nil {
				s.fail(c, err)
				return
			}
		}
		if f.State() == meeting.Closed {
			s.fail(c, meeting.ErrClosed)
			return
		}
		added := f.AddParticipant()
		c.JSON(http.StatusOK, gin.H{"added": added, "form": viewOf(f)})
	})
}

func (s *Server) removeParticipant(c *gin.Context) {
	s.withForm(c, func(f *meeting.Form) {
		if f.State() == meeting.Closed {
			s.fail(c, meeting.ErrClosed)
			return
		}
		removed := f.RemoveParticipant(c.Param("email"))
		c.JSON(http.StatusOK, gin.H{"removed": removed, "form": viewOf(f)})
	})
}

// saveForm validates the editor and hands the submission to the dashboard.
// The editor lock is released before the store is touched, and the editor
// only closes once the store accepted the meeting.
func (s *Server) saveForm(c *gin.Context) {
	var (
		sub   meeting.Submission
		err   error
		state formView
	)
	s.withForm(c, func(f *meeting.Form) {
		sub, err = f.Submit()
		state = viewOf(f)
	})
	if errors.Is(err, meeting.ErrInvalid) {
		metrics.RecordValidationFailures(state.Errors)
		invalid(c, state.Errors)
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	m, err := s.board.Save(c.Request.Context(), sub)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.withForm(c, func(f *meeting.Form) {
		if f.State() != meeting.Closed && f.TargetID() == sub.TargetID {
			f.Cancel()
		}
	})
	code := http.StatusOK
	if sub.TargetID == "" {
		code = http.StatusCreated
	}
	c.JSON(code, m)
}

func (s *Server) cancelForm(c *gin.Context) {
	s.withForm(c, func(f *meeting.Form) {
		f.Cancel()
		c.JSON(http.StatusOK, viewOf(f))
	})
}
