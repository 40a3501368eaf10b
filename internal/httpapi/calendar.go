package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/calendar"
	"meeting-scheduler/internal/meeting"
)

const maxCalendarBody = 1 << 20

// exportCalendar serves the list view for the query string as text/calendar.
func (s *Server) exportCalendar(c *gin.Context) {
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

	var buf bytes.Buffer
	if err := calendar.Export(&buf, v.Meetings, time.Now()); err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="meetings.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

type rejected struct {
	Index  int            `json:"index"`
	Title  string         `json:"title"`
	Fields meeting.Errors `json:"fields"`
}

// importCalendar adds every valid VEVENT of the body as a new meeting and
// reports the ones that failed validation.
func (s *Server) importCalendar(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCalendarBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body failed"})
		return
	}
	drafts, err := calendar.Import(bytes.NewReader(body))
	if err != nil {
		msg := "invalid calendar"
		if errors.Is(err, calendar.ErrNoCalendar) {
			msg = err.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	imported := 0
	rejects := []rejected{}
	for i, d := range drafts {
		_, errs, err := s.board.SaveDraft(c.Request.Context(), "", d)
		if errors.Is(err, meeting.ErrInvalid) {
			rejects = append(rejects, rejected{Index: i, Title: d.Title, Fields: errs})
			continue
		}
		if err != nil {
			s.fail(c, err)
			return
		}
		imported++
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported, "rejected": rejects})
}
