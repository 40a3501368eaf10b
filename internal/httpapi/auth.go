package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	if s.limiter != nil && !s.limiter.Allow(c.ClientIP()) {
		metrics.RecordLogin("limited")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	prev := s.sessionOf(c)
	sess, err := s.auth.Login(prev, req.Email, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		s.dropForm(prev.TokenID)
		if prev.Authenticated {
			c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sess.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, sess)
}

func (s *Server) logout(c *gin.Context) {
	sess := s.sessionOf(c)
	s.dropForm(sess.TokenID)
	out := s.auth.Logout(sess)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, out)
}

func (s *Server) currentSession(c *gin.Context) {
	sess := s.sessionOf(c)
	sess.Token = ""
	c.JSON(http.StatusOK, sess)
}

// navigate applies the route guard to /, /login and /dashboard.
func (s *Server) navigate(c *gin.Context) {
	sess := s.sessionOf(c)
	target, redirect := session.Route(c.Request.URL.Path, sess)
	if redirect {
		c.Redirect(http.StatusFound, target)
		return
	}

	switch target {
	case session.PathDashboard:
		v, err := s.board.View(c.Request.Context(), meeting.Query{})
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"page": "dashboard", "user": sess.User, "view": v})
	default:
		c.JSON(http.StatusOK, gin.H{"page": "login"})
	}
}
