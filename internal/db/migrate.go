package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateHealVocabEntries(db); err != nil {
		return fmt.Errorf("healing vocab_entries: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vocab_entries (
		word            TEXT NOT NULL COLLATE NOCASE PRIMARY KEY,
		sentence        TEXT NOT NULL DEFAULT '',
		note            TEXT NOT NULL DEFAULT '',
		box             INTEGER NOT NULL DEFAULT 1,
		ease            REAL NOT NULL DEFAULT 2.5,
		interval_days   INTEGER NOT NULL DEFAULT 1,
		last_reviewed   TEXT,
		next_review     TEXT NOT NULL,
		times_reviewed  INTEGER NOT NULL DEFAULT 0,
		times_correct   INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		word_key        TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_vocab_next_review ON vocab_entries(next_review)`,
	`CREATE INDEX IF NOT EXISTS idx_vocab_created ON vocab_entries(created_at)`,

	`CREATE TABLE IF NOT EXISTS review_history (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		word         TEXT NOT NULL REFERENCES vocab_entries(word) ON DELETE CASCADE ON UPDATE CASCADE,
		review_date  TEXT NOT NULL,
		correct      INTEGER NOT NULL CHECK(correct IN (0,1))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_review_history_word ON review_history(word)`,

	`CREATE TABLE IF NOT EXISTS progress (
		id               TEXT PRIMARY KEY DEFAULT 'default',
		current_streak   INTEGER NOT NULL DEFAULT 0,
		longest_streak   INTEGER NOT NULL DEFAULT 0,
		last_study_date  TEXT,
		studied_today    INTEGER NOT NULL DEFAULT 0,
		xp               INTEGER NOT NULL DEFAULT 0,
		total_reviews    INTEGER NOT NULL DEFAULT 0
	)`,

	`INSERT OR IGNORE INTO progress (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS progress_history (
		study_date  TEXT PRIMARY KEY,
		reviews     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		position        INTEGER PRIMARY KEY AUTOINCREMENT,
		achievement_id  TEXT NOT NULL UNIQUE,
		unlocked_on     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS stats (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		words_added    INTEGER NOT NULL DEFAULT 0,
		words_removed  INTEGER NOT NULL DEFAULT 0,
		quiz_attempts  INTEGER NOT NULL DEFAULT 0,
		quiz_correct   INTEGER NOT NULL DEFAULT 0
	)`,

	`INSERT OR IGNORE INTO stats (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id          TEXT PRIMARY KEY,
		study_date  TEXT NOT NULL,
		reviewed    INTEGER NOT NULL,
		correct     INTEGER NOT NULL,
		xp_earned   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_sessions_date ON study_sessions(study_date)`,

	// Columns added after the first release.
	`ALTER TABLE vocab_entries ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE progress ADD COLUMN longest_streak INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE stats ADD COLUMN quiz_correct INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE vocab_entries ADD COLUMN word_key TEXT`,

	// word_key is the Unicode-folded word; NOCASE on word folds ASCII only.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_vocab_word_key ON vocab_entries(word_key)`,
}

// migrateHealVocabEntries pulls scheduling columns back into range and keys
// unkeyed words for rows written by older builds or imported by hand.
// Conforming rows are untouched, so it is safe to run on every open.
func migrateHealVocabEntries(db *sql.DB) error {
	ctx := context.Background()

	stmts := []string{
		`UPDATE vocab_entries SET box = 1 WHERE box < 1`,
		`UPDATE vocab_entries SET box = 5 WHERE box > 5`,
		`UPDATE vocab_entries SET ease = 1.3 WHERE ease < 1.3`,
		`UPDATE vocab_entries SET interval_days = 1 WHERE interval_days < 1`,
		`UPDATE vocab_entries SET times_reviewed = 0 WHERE times_reviewed < 0`,
		`UPDATE vocab_entries SET times_correct = 0 WHERE times_correct < 0`,
		`UPDATE vocab_entries SET times_correct = times_reviewed WHERE times_correct > times_reviewed`,
		`UPDATE vocab_entries SET next_review = substr(created_at, 1, 10) WHERE next_review = ''`,
		`UPDATE progress SET longest_streak = current_streak WHERE longest_streak < current_streak`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return backfillWordKeys(ctx, db)
}

// backfillWordKeys fills word_key for rows written before the column
// existed. A row whose folded key collides with another keeps a NULL key.
func backfillWordKeys(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, `SELECT word FROM vocab_entries WHERE word_key IS NULL ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("listing unkeyed words: %w", err)
	}
	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			rows.Close()
			return fmt.Errorf("scanning unkeyed word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating unkeyed words: %w", err)
	}
	rows.Close()

	for _, w := range words {
		_, err := db.ExecContext(ctx, `UPDATE vocab_entries SET word_key = ? WHERE word = ? COLLATE BINARY`, domain.WordKey(w), w)
		if err != nil && !strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("keying %q: %w", w, err)
		}
	}
	return nil
}
