package model

import "time"

// DateLayout is the calendar-day format used for meeting dates on the wire
// and in filters.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	return s == StatusScheduled || s == StatusCanceled
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Participants []string  `json:"participants"`
	CreatedBy    string    `json:"createdBy"`
	Status       Status    `json:"status"`
	Seq          int64     `json:"seq"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Day returns the meeting date normalized to YYYY-MM-DD in UTC.
func (m Meeting) Day() string {
	if m.Date.IsZero() {
		return ""
	}
	return m.Date.UTC().Format(DateLayout)
}

// Clone returns a copy that shares no slices with m.
func (m Meeting) Clone() Meeting {
	if m.Participants != nil {
		p := make([]string, len(m.Participants))
		copy(p, m.Participants)
		m.Participants = p
	}
	return m
}
