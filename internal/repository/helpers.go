package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = domain.ErrNotFound

// Option configures a SQLite repository.
type Option func(*repoOptions)

type repoOptions struct {
	clock func() time.Time
}

// WithClock sets the clock whose local date fills "today" defaults when a
// row is healed or an achievement is stamped.
func WithClock(clock func() time.Time) Option {
	return func(o *repoOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyOptions(opts []Option) repoOptions {
	o := repoOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o repoOptions) today() time.Time {
	return domain.Day(o.clock())
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// isUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY constraint.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
