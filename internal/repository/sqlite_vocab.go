package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
)

const vocabColumns = `word, sentence, note, box, ease, interval_days, last_reviewed,
	next_review, times_reviewed, times_correct, created_at`

// SQLiteVocabRepo implements VocabRepo using a SQLite database.
type SQLiteVocabRepo struct {
	db   db.DBTX
	opts repoOptions
}

// NewSQLiteVocabRepo creates a new SQLiteVocabRepo.
func NewSQLiteVocabRepo(conn db.DBTX, opts ...Option) *SQLiteVocabRepo {
	return &SQLiteVocabRepo{db: conn, opts: applyOptions(opts)}
}

func (r *SQLiteVocabRepo) Create(ctx context.Context, e *domain.VocabEntry) error {
	query := `INSERT INTO vocab_entries (` + vocabColumns + `, word_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.Word,
		e.Sentence,
		e.Note,
		e.Box,
		e.Ease,
		e.Interval,
		nullableTimeToString(e.LastReviewed, domain.DateLayout),
		domain.FormatDate(e.NextReview),
		e.TimesReviewed,
		e.TimesCorrect,
		e.CreatedAt.UTC().Format(time.RFC3339),
		domain.WordKey(e.Word),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("word %q already exists: %w", e.Word, domain.ErrValidation)
		}
		return fmt.Errorf("inserting vocab entry: %w", err)
	}

	for _, rec := range e.History {
		if err := r.AppendReview(ctx, e.Word, rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteVocabRepo) Get(ctx context.Context, word string) (*domain.VocabEntry, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocab_entries WHERE word = ? COLLATE BINARY`
	return r.getOne(ctx, query, word, word)
}

// Find matches on the folded word key, so case differences outside ASCII
// are ignored too.
func (r *SQLiteVocabRepo) Find(ctx context.Context, word string) (*domain.VocabEntry, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocab_entries WHERE word_key = ?`
	return r.getOne(ctx, query, word, domain.WordKey(word))
}

// getOne runs a single-row lookup bound to key; word labels errors.
func (r *SQLiteVocabRepo) getOne(ctx context.Context, query, word, key string) (*domain.VocabEntry, error) {
	row := r.db.QueryRowContext(ctx, query, key)
	raw, err := scanRawEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vocab entry %q: %w", word, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning vocab entry: %w", err)
	}

	history, err := r.listHistory(ctx, raw.Word)
	if err != nil {
		return nil, err
	}
	raw.History = history[raw.Word]
	raw.HasHistory = true

	e, _ := domain.HealEntry(raw, r.opts.today())
	return e, nil
}

// List returns every entry in insertion order. Each call allocates fresh
// entries, so the result is a snapshot.
func (r *SQLiteVocabRepo) List(ctx context.Context) ([]*domain.VocabEntry, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocab_entries ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vocab entries: %w", err)
	}

	var raws []domain.RawEntry
	for rows.Next() {
		raw, err := scanRawEntry(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning vocab row: %w", err)
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating vocab entries: %w", err)
	}
	rows.Close()

	history, err := r.listHistory(ctx, "")
	if err != nil {
		return nil, err
	}

	today := r.opts.today()
	entries := make([]*domain.VocabEntry, 0, len(raws))
	for _, raw := range raws {
		raw.History = history[raw.Word]
		raw.HasHistory = true
		e, _ := domain.HealEntry(raw, today)
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *SQLiteVocabRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocab_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting vocab entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteVocabRepo) Update(ctx context.Context, e *domain.VocabEntry) error {
	query := `UPDATE vocab_entries SET sentence = ?, note = ?, box = ?, ease = ?,
		interval_days = ?, last_reviewed = ?, next_review = ?, times_reviewed = ?, times_correct = ?
		WHERE word = ? COLLATE BINARY`
	res, err := r.db.ExecContext(ctx, query,
		e.Sentence,
		e.Note,
		e.Box,
		e.Ease,
		e.Interval,
		nullableTimeToString(e.LastReviewed, domain.DateLayout),
		domain.FormatDate(e.NextReview),
		e.TimesReviewed,
		e.TimesCorrect,
		e.Word,
	)
	if err != nil {
		return fmt.Errorf("updating vocab entry: %w", err)
	}
	return requireAffected(res, "vocab entry", e.Word)
}

func (r *SQLiteVocabRepo) AppendReview(ctx context.Context, word string, rec domain.ReviewRecord) error {
	query := `INSERT INTO review_history (word, review_date, correct) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, word, domain.FormatDate(rec.Date), boolToInt(rec.Correct)); err != nil {
		return fmt.Errorf("appending review for %q: %w", word, err)
	}
	return nil
}

func (r *SQLiteVocabRepo) Delete(ctx context.Context, word string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM review_history WHERE word = ? COLLATE BINARY`, word); err != nil {
		return fmt.Errorf("deleting review history: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM vocab_entries WHERE word = ? COLLATE BINARY`, word)
	if err != nil {
		return fmt.Errorf("deleting vocab entry: %w", err)
	}
	return requireAffected(res, "vocab entry", word)
}

// listHistory loads review logs keyed by word, oldest first. An empty word
// loads every log.
func (r *SQLiteVocabRepo) listHistory(ctx context.Context, word string) (map[string][]domain.ReviewRecord, error) {
	query := `SELECT word, review_date, correct FROM review_history ORDER BY id`
	args := []any{}
	if word != "" {
		query = `SELECT word, review_date, correct FROM review_history WHERE word = ? COLLATE BINARY ORDER BY id`
		args = append(args, word)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing review history: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.ReviewRecord)
	for rows.Next() {
		var w, dateStr string
		var correct int
		if err := rows.Scan(&w, &dateStr, &correct); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			continue
		}
		out[w] = append(out[w], domain.ReviewRecord{Date: date, Correct: intToBool(correct)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review history: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRawEntry reads a vocab row without trusting any column; HealEntry
// decides what each missing or unparseable value becomes.
func scanRawEntry(s rowScanner) (domain.RawEntry, error) {
	var (
		word                     string
		sentence, note           sql.NullString
		box, interval            sql.NullInt64
		ease                     sql.NullFloat64
		lastReviewed, nextReview sql.NullString
		reviewed, correct        sql.NullInt64
		createdAt                sql.NullString
	)
	err := s.Scan(&word, &sentence, &note, &box, &ease, &interval, &lastReviewed,
		&nextReview, &reviewed, &correct, &createdAt)
	if err != nil {
		return domain.RawEntry{}, err
	}

	return domain.RawEntry{
		Word:          word,
		Sentence:      nullableString(sentence),
		Note:          nullableString(note),
		Box:           nullableInt(box),
		Ease:          nullableFloat(ease),
		Interval:      nullableInt(interval),
		LastReviewed:  parseNullableTime(lastReviewed, domain.DateLayout),
		NextReview:    parseNullableTime(nextReview, domain.DateLayout),
		TimesReviewed: nullableInt(reviewed),
		TimesCorrect:  nullableInt(correct),
		CreatedAt:     parseNullableTime(createdAt, time.RFC3339),
	}, nil
}

func requireAffected(res sql.Result, what, key string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", what, key, ErrNotFound)
	}
	return nil
}
