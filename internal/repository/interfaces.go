package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// VocabRepo persists vocabulary entries and their review logs.
//
// Lookups come in two flavours: Get matches the stored key exactly, Find
// matches it ignoring case.
type VocabRepo interface {
	Create(ctx context.Context, e *domain.VocabEntry) error
	Get(ctx context.Context, word string) (*domain.VocabEntry, error)
	Find(ctx context.Context, word string) (*domain.VocabEntry, error)
	List(ctx context.Context) ([]*domain.VocabEntry, error)
	Count(ctx context.Context) (int, error)
	// Update writes text, scheduling and counter columns. The review log is
	// only ever extended through AppendReview.
	Update(ctx context.Context, e *domain.VocabEntry) error
	AppendReview(ctx context.Context, word string, rec domain.ReviewRecord) error
	Delete(ctx context.Context, word string) error
}

type ProgressRepo interface {
	Get(ctx context.Context) (*domain.ProgressState, error)
	// Save merges p into the stored state; Replace discards what p lacks.
	Save(ctx context.Context, p *domain.ProgressState) error
	Replace(ctx context.Context, p *domain.ProgressState) error
}

type StatsRepo interface {
	Get(ctx context.Context) (*domain.StatsState, error)
	Save(ctx context.Context, s *domain.StatsState) error
}

type StudySessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	ListRecent(ctx context.Context, limit int) ([]*domain.StudySession, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.StudySession, error)
}
