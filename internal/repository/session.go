package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// SessionRepository stores session documents as a sessions row plus
// attendee rows. Attendee order is the store-assigned position sequence,
// which is also the booking-order tie-break for simultaneous bookings.
type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, name, description, location, instructor_name,
				start_time, duration_minutes, repeat_mode, max_attendees, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Description, s.Location, s.InstructorName,
		s.StartTime, int(s.Duration.Minutes()), string(s.RepeatMode), s.MaxAttendees, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, name, description, location, instructor_name,
				start_time, duration_minutes, repeat_mode, max_attendees, created_at, updated_at
			  FROM sessions
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if err = r.loadAttendees(ctx, map[string]*domain.Session{s.ID: s}); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, name, description, location, instructor_name,
				start_time, duration_minutes, repeat_mode, max_attendees, created_at, updated_at
			  FROM sessions
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	byID := make(map[string]*domain.Session)
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
		byID[s.ID] = s
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.loadAttendees(ctx, byID); err != nil {
		return nil, err
	}

	return res, nil
}

// UpdateFields applies a partial update; nil fields keep their value.
func (r *SessionRepository) UpdateFields(ctx context.Context, id string, in domain.UpdateSessionInput) error {
	if in.Empty() {
		return nil
	}

	set := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.InstructorName != nil {
		add("instructor_name", *in.InstructorName)
	}
	if in.StartTime != nil {
		add("start_time", *in.StartTime)
	}
	if in.Duration != nil {
		add("duration_minutes", int(in.Duration.Minutes()))
	}
	if in.RepeatMode != nil {
		add("repeat_mode", string(*in.RepeatMode))
	}
	if in.MaxAttendees != nil {
		add("max_attendees", *in.MaxAttendees)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE sessions SET %s, updated_at = now() WHERE id = $%d`,
		strings.Join(set, ", "), len(args),
	)

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// AppendAttendee is idempotent by user id: re-appending an existing
// booking is a no-op, so retries of the same mutation are safe.
func (r *SessionRepository) AppendAttendee(ctx context.Context, sessionID string, attendee domain.Attendee) error {
	query := `INSERT INTO session_attendees (session_id, user_id, booked_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (session_id, user_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, attendee.UserID, attendee.BookedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("append attendee: %w", err)
	}

	return nil
}

func (r *SessionRepository) RemoveAttendee(ctx context.Context, sessionID, userID string) error {
	query := `DELETE FROM session_attendees WHERE session_id = $1 AND user_id = $2`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, userID)
	if err != nil {
		return fmt.Errorf("remove attendee: %w", err)
	}

	return nil
}

// loadAttendees fills Attendees for every session in byID, ordered by
// the position sequence.
func (r *SessionRepository) loadAttendees(ctx context.Context, byID map[string]*domain.Session) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := `SELECT session_id, user_id, booked_at
			  FROM session_attendees
			  WHERE session_id = ANY($1)
			  ORDER BY position ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var a domain.Attendee
		if err = rows.Scan(&sessionID, &a.UserID, &a.BookedAt); err != nil {
			return fmt.Errorf("scan attendee: %w", err)
		}
		if s, ok := byID[sessionID]; ok {
			s.Attendees = append(s.Attendees, a)
		}
	}

	return rows.Err()
}

func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	var s domain.Session
	var durationMinutes int
	var repeatMode string
	if err := scan(
		&s.ID, &s.Name, &s.Description, &s.Location, &s.InstructorName,
		&s.StartTime, &durationMinutes, &repeatMode, &s.MaxAttendees, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Duration = time.Duration(durationMinutes) * time.Minute
	s.RepeatMode = domain.ParseRepeatMode(repeatMode)
	return &s, nil
}
