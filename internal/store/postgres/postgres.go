package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/store"
	"meeting-scheduler/internal/store/postgres/migrations"
)

type Store struct {
	pool *pgxpool.Pool
}

// New connects, pings and applies pending migrations.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() { s.pool.Close() }

const columns = `id, seq, title, description, day, start_time, end_time,
	participants, created_by, status, created_at, updated_at`

func scan(row pgx.Row) (model.Meeting, error) {
	var m model.Meeting
	var status string
	err := row.Scan(&m.ID, &m.Seq, &m.Title, &m.Description, &m.Date, &m.StartTime, &m.EndTime,
		&m.Participants, &m.CreatedBy, &status, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Meeting{}, store.ErrNotFound
	}
	if err != nil {
		return model.Meeting{}, err
	}
	m.Status = model.Status(status)
	if m.Participants == nil {
		m.Participants = []string{}
	}
	return m, nil
}

func participants(m model.Meeting) []string {
	if m.Participants == nil {
		return []string{}
	}
	return m.Participants
}

func (s *Store) CreateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO meetings (id, title, description, day, start_time, end_time, participants, created_by, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING `+columns,
		uuid.NewString(), m.Title, m.Description, m.Date, m.StartTime, m.EndTime,
		participants(m), m.CreatedBy, string(m.Status),
	)
	return scan(row)
}

func (s *Store) GetMeeting(ctx context.Context, id string) (model.Meeting, error) {
	return scan(s.pool.QueryRow(ctx, `SELECT `+columns+` FROM meetings WHERE id = $1`, id))
}

func (s *Store) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM meetings ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Meeting{}
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) UpdateMeeting(ctx context.Context, m model.Meeting) (model.Meeting, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE meetings
		 SET title=$1, description=$2, day=$3, start_time=$4, end_time=$5,
		     participants=$6, created_by=$7, status=$8, updated_at=NOW()
		 WHERE id=$9
		 RETURNING `+columns,
		m.Title, m.Description, m.Date, m.StartTime, m.EndTime,
		participants(m), m.CreatedBy, string(m.Status), m.ID,
	)
	return scan(row)
}

func (s *Store) DeleteMeeting(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM meetings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountMeetings(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM meetings`).Scan(&n)
	return n, err
}
