package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo over the single 'default'
// progress row plus its history and achievement tables.
type SQLiteProgressRepo struct {
	db   db.DBTX
	opts repoOptions
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX, opts ...Option) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn, opts: applyOptions(opts)}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context) (*domain.ProgressState, error) {
	query := `SELECT current_streak, longest_streak, last_study_date, studied_today, xp, total_reviews
		FROM progress WHERE id = 'default'`
	p := domain.NewProgressState()
	var lastStudy sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.CurrentStreak,
		&p.LongestStreak,
		&lastStudy,
		&p.StudiedToday,
		&p.XP,
		&p.TotalReviews,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress: %w", err)
	}
	p.LastStudyDate = parseNullableTime(lastStudy, domain.DateLayout)

	if err := r.loadHistory(ctx, p); err != nil {
		return nil, err
	}
	if err := r.loadAchievements(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgressRepo) loadHistory(ctx context.Context, p *domain.ProgressState) error {
	rows, err := r.db.QueryContext(ctx, `SELECT study_date, reviews FROM progress_history`)
	if err != nil {
		return fmt.Errorf("listing progress history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return fmt.Errorf("scanning progress history: %w", err)
		}
		p.History[day] = n
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating progress history: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) loadAchievements(ctx context.Context, p *domain.ProgressState) error {
	rows, err := r.db.QueryContext(ctx, `SELECT achievement_id FROM achievements ORDER BY position`)
	if err != nil {
		return fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning achievement: %w", err)
		}
		p.Achievements = append(p.Achievements, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating achievements: %w", err)
	}
	return nil
}

// Save writes the counters, upserts every history day and appends
// achievements not yet stored. Stored achievements are never removed.
func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.ProgressState) error {
	query := `INSERT OR REPLACE INTO progress (id, current_streak, longest_streak, last_study_date,
		studied_today, xp, total_reviews)
		VALUES ('default', ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.CurrentStreak,
		p.LongestStreak,
		nullableTimeToString(p.LastStudyDate, domain.DateLayout),
		p.StudiedToday,
		p.XP,
		p.TotalReviews,
	)
	if err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}

	for day, n := range p.History {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO progress_history (study_date, reviews) VALUES (?, ?)
			ON CONFLICT(study_date) DO UPDATE SET reviews = excluded.reviews`, day, n)
		if err != nil {
			return fmt.Errorf("saving progress history for %s: %w", day, err)
		}
	}

	unlockedOn := domain.FormatDate(r.opts.today())
	if p.LastStudyDate != nil {
		unlockedOn = domain.FormatDate(*p.LastStudyDate)
	}
	for _, id := range p.Achievements {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO achievements (achievement_id, unlocked_on) VALUES (?, ?)`, id, unlockedOn)
		if err != nil {
			return fmt.Errorf("saving achievement %s: %w", id, err)
		}
	}
	return nil
}

// Replace overwrites the stored progress with p: history days and
// achievements absent from p are deleted before p is saved. Run it inside a
// transaction.
func (r *SQLiteProgressRepo) Replace(ctx context.Context, p *domain.ProgressState) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress_history`); err != nil {
		return fmt.Errorf("clearing progress history: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM achievements`); err != nil {
		return fmt.Errorf("clearing achievements: %w", err)
	}
	return r.Save(ctx, p)
}
