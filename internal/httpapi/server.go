// Package httpapi is the REST/JSON surface of the scheduler, built on gin.
// It also hosts the grpc-web bridge, health and metrics endpoints.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/dashboard"
	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/internal/store"
)

const (
	sessionCookie = "session"
	sessionCtxKey = "session"
)

type Server struct {
	board   *dashboard.Dashboard
	auth    *session.Authenticator
	limiter *middleware.RateLimiter
	log     *slog.Logger

	mu    sync.Mutex
	forms map[string]*editor // token id -> editor
}

// editor is a form kept for one session until its token expires.
type editor struct {
	form    *meeting.Form
	expires time.Time
}

func New(board *dashboard.Dashboard, auth *session.Authenticator, limiter *middleware.RateLimiter, log *slog.Logger) *Server {
	return &Server{
		board:   board,
		auth:    auth,
		limiter: limiter,
		log:     log.With("component", "http"),
		forms:   make(map[string]*editor),
	}
}

// Run drops the editors of expired sessions once a minute until ctx is done.
func (s *Server) Run(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.sweepForms(now)
		}
	}
}

func (s *Server) sweepForms(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.forms {
		if !e.expires.IsZero() && now.After(e.expires) {
			delete(s.forms, id)
		}
	}
}

func (s *Server) dropForm(tokenID string) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	delete(s.forms, tokenID)
	s.mu.Unlock()
}

// Router builds the gin engine. bridge, when non-nil, serves grpc-web calls
// under /meeting.v1.MeetingService/.
func (s *Server) Router(bridge http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/sw.js", serviceWorker)

	r.GET("/", s.navigate)
	r.GET("/login", s.navigate)
	r.GET("/dashboard", s.navigate)

	authg := r.Group("/auth")
	authg.POST("/login", s.login)
	authg.POST("/logout", s.logout)
	authg.GET("/session", s.currentSession)

	api := r.Group("/api", s.requireSession())
	api.GET("/meetings", s.listMeetings)
	api.POST("/meetings", s.createMeeting)
	api.GET("/meetings/:id", s.getMeeting)
	api.PUT("/meetings/:id", s.updateMeeting)
	api.DELETE("/meetings/:id", s.deleteMeeting)
	api.POST("/drafts/validate", s.validateDraft)

	api.GET("/form", s.formState)
	api.POST("/form/open", s.openForm)
	api.PATCH("/form", s.setFormFields)
	api.POST("/form/participants", s.addParticipant)
	api.DELETE("/form/participants/:email", s.removeParticipant)
	api.POST("/form/save", s.saveForm)
	api.POST("/form/cancel", s.cancelForm)

	api.GET("/calendar.ics", s.exportCalendar)
	api.POST("/calendar/import", s.importCalendar)

	if bridge != nil {
		r.Any("/"+pb.ServiceName+"/:method", gin.WrapH(bridge))
	}
	return r
}

// requestLogger writes one structured line per request and sets X-Request-ID.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()

		duration := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), duration.Seconds())
		s.log.Info("http_request",
			"rid", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", duration.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// token reads the session token from the cookie or an Authorization header.
func token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(sessionCookie); err == nil {
		return v
	}
	return ""
}

// sessionOf resolves the caller's session; anonymous when there is no valid token.
func (s *Server) sessionOf(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionCtxKey); ok {
		return v.(session.Session)
	}
	raw := token(c)
	if raw == "" {
		return session.Session{}
	}
	sess, err := s.auth.Resume(raw)
	if err != nil {
		return session.Session{}
	}
	return sess
}

func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := s.sessionOf(c)
		if !sess.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

// fail writes the JSON error for err. Unknown errors are logged and hidden.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, meeting.ErrClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, meeting.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error("request failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func invalid(c *gin.Context, errs meeting.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": meeting.ErrInvalid.Error(), "fields": errs})
}

const swScript = `// service worker: no offline caching
self.addEventListener('install', () => self.skipWaiting());
self.addEventListener('activate', (event) => event.waitUntil(self.clients.claim()));
`

func serviceWorker(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(swScript))
}
