package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
)

func (s *Server) listMeetings(c *gin.Context) {
	var q meeting.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	v, err := s.board.View(c.Request.Context(), q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) getMeeting(c *gin.Context) {
	m, err := s.board.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) createMeeting(c *gin.Context) {
	s.saveDraft(c, "", http.StatusCreated)
}

func (s *Server) updateMeeting(c *gin.Context) {
	s.saveDraft(c, c.Param("id"), http.StatusOK)
}

func (s *Server) saveDraft(c *gin.Context, id string, okCode int) {
	var d meeting.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	m, errs, err := s.board.SaveDraft(c.Request.Context(), id, d)
	if errors.Is(err, meeting.ErrInvalid) {
		invalid(c, errs)
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(okCode, m)
}

func (s *Server) deleteMeeting(c *gin.Context) {
	if err := s.board.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) validateDraft(c *gin.Context) {
	var d meeting.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	errs := meeting.Validate(d)
	metrics.RecordValidationFailures(errs)
	c.JSON(http.StatusOK, gin.H{"valid": errs.Valid(), "fields": errs})
}
