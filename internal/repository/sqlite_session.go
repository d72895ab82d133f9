package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
)

// SQLiteStudySessionRepo implements StudySessionRepo using a SQLite database.
type SQLiteStudySessionRepo struct {
	db db.DBTX
}

// NewSQLiteStudySessionRepo creates a new SQLiteStudySessionRepo.
func NewSQLiteStudySessionRepo(conn db.DBTX) *SQLiteStudySessionRepo {
	return &SQLiteStudySessionRepo{db: conn}
}

func (r *SQLiteStudySessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	query := `INSERT INTO study_sessions (id, study_date, reviewed, correct, xp_earned, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		domain.FormatDate(s.Date),
		s.Reviewed,
		s.Correct,
		s.XPEarned,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

// ListRecent returns up to limit sessions, newest first.
func (r *SQLiteStudySessionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error) {
	query := `SELECT id, study_date, reviewed, correct, xp_earned, created_at
		FROM study_sessions ORDER BY study_date DESC, created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent study sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// ListSince returns sessions on or after the given day, oldest first.
func (r *SQLiteStudySessionRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.StudySession, error) {
	query := `SELECT id, study_date, reviewed, correct, xp_earned, created_at
		FROM study_sessions WHERE study_date >= ? ORDER BY study_date, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, domain.FormatDate(since))
	if err != nil {
		return nil, fmt.Errorf("listing study sessions since %s: %w", domain.FormatDate(since), err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteStudySessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var dateStr, createdAtStr string

		err := rows.Scan(&s.ID, &dateStr, &s.Reviewed, &s.Correct, &s.XPEarned, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning study session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, dateStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteStudySessionRepo) populateSession(s *domain.StudySession, dateStr, createdAtStr string) (*domain.StudySession, error) {
	var parseErr error
	s.Date, parseErr = domain.ParseDate(dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing study_date: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return s, nil
}
