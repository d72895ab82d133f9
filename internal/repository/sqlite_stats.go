package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
)

// SQLiteStatsRepo implements StatsRepo using a SQLite database.
type SQLiteStatsRepo struct {
	db db.DBTX
}

// NewSQLiteStatsRepo creates a new SQLiteStatsRepo.
func NewSQLiteStatsRepo(conn db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: conn}
}

func (r *SQLiteStatsRepo) Get(ctx context.Context) (*domain.StatsState, error) {
	query := `SELECT words_added, words_removed, quiz_attempts, quiz_correct
		FROM stats WHERE id = 'default'`
	var s domain.StatsState
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.WordsAdded,
		&s.WordsRemoved,
		&s.QuizAttempts,
		&s.QuizCorrect,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("stats: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stats: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStatsRepo) Save(ctx context.Context, s *domain.StatsState) error {
	query := `INSERT OR REPLACE INTO stats (id, words_added, words_removed, quiz_attempts, quiz_correct)
		VALUES ('default', ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.WordsAdded,
		s.WordsRemoved,
		s.QuizAttempts,
		s.QuizCorrect,
	)
	if err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}
