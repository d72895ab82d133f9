package service

import (
	"context"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/importer"
	"github.com/alexanderramin/lexibox/internal/stats"
)

// VocabService manages the vocabulary set. Get and Edit match the stored
// word exactly; Resolve and Remove ignore case.
type VocabService interface {
	Add(ctx context.Context, word, sentence, note string) (*domain.VocabEntry, error)
	Remove(ctx context.Context, word string) error
	Edit(ctx context.Context, word, sentence, note string) (*domain.VocabEntry, error)
	Get(ctx context.Context, word string) (*domain.VocabEntry, error)
	Resolve(ctx context.Context, word string) (*domain.VocabEntry, error)
	All(ctx context.Context) ([]*domain.VocabEntry, error)
	Count(ctx context.Context) (int, error)
}

type ReviewService interface {
	Schedule(ctx context.Context, word string, rating int) (*domain.VocabEntry, error)
	RecordAnswer(ctx context.Context, word, guess string) (bool, error)
}

type StudyService interface {
	Due(ctx context.Context) ([]string, error)
	DueCount(ctx context.Context) (int, error)
	SuggestedDailyTarget(ctx context.Context) (int, error)
	BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	RandomQuizWord(ctx context.Context) (*domain.VocabEntry, error)
	RecordQuizResult(ctx context.Context, correct bool) error
}

type ProgressService interface {
	FinishSession(ctx context.Context, req contract.SessionRequest) (*contract.SessionSummary, error)
	Get(ctx context.Context) (*domain.ProgressState, error)
	RecentSessions(ctx context.Context, limit int) ([]*domain.StudySession, error)
}

type StatsService interface {
	WordAccuracy(ctx context.Context, word string) (float64, error)
	OverallAccuracy(ctx context.Context) (float64, error)
	DifficultWords(ctx context.Context, limit int) ([]stats.DifficultWord, error)
	BoxDistribution(ctx context.Context) (map[int]int, error)
	Activity(ctx context.Context, days int) ([]stats.ActivityDay, error)
	Dashboard(ctx context.Context, req contract.StatsRequest) (*contract.StatsResponse, error)
}

// ImportResult holds the outcome of a legacy-data import.
type ImportResult struct {
	Added    int
	Skipped  []importer.RowError
	Healed   map[string][]string
	Progress bool
	Stats    bool
}

// WordImportResult holds the outcome of a spreadsheet import.
type WordImportResult struct {
	Added    int
	Rejected []importer.RowError
}

type ImportService interface {
	ImportLegacy(ctx context.Context, dir string) (*ImportResult, error)
	ImportWords(ctx context.Context, path string) (*WordImportResult, error)
	ExportLegacy(ctx context.Context, dir string, format importer.Format) ([]string, error)
}
