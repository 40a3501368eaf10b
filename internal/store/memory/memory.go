package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/store"
)

type Store struct {
	mu       sync.Mutex
	meetings []model.Meeting
	index    map[string]int
	seq      int64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateMeeting(_ context.Context, m model.Meeting) (model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := s.now()
	m = m.Clone()
	m.ID = uuid.NewString()
	m.Seq = s.seq
	m.CreatedAt = now
	m.UpdatedAt = now

	s.index[m.ID] = len(s.meetings)
	s.meetings = append(s.meetings, m)
	return m.Clone(), nil
}

func (s *Store) GetMeeting(_ context.Context, id string) (model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return model.Meeting{}, store.ErrNotFound
	}
	return s.meetings[i].Clone(), nil
}

func (s *Store) ListMeetings(_ context.Context) ([]model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Meeting, len(s.meetings))
	for i, m := range s.meetings {
		out[i] = m.Clone()
	}
	return out, nil
}

func (s *Store) UpdateMeeting(_ context.Context, m model.Meeting) (model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[m.ID]
	if !ok {
		return model.Meeting{}, store.ErrNotFound
	}

	existing := s.meetings[i]
	m = m.Clone()
	m.Seq = existing.Seq
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = s.now()
	s.meetings[i] = m
	return m.Clone(), nil
}

func (s *Store) DeleteMeeting(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return store.ErrNotFound
	}

	s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.meetings); j++ {
		s.index[s.meetings[j].ID] = j
	}
	return nil
}

func (s *Store) CountMeetings(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.meetings), nil
}
