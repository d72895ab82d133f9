package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/alexanderramin/lexibox/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

// testClock is a settable clock for moving a test across days.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(days int) { c.now = c.now.AddDate(0, 0, days) }

type testEnv struct {
	db       *sql.DB
	vocab    repository.VocabRepo
	progress repository.ProgressRepo
	counters repository.StatsRepo
	sessions repository.StudySessionRepo
	uow      db.UnitOfWork
	clock    *testClock
}

func setupRepos(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		vocab:    repository.NewSQLiteVocabRepo(database),
		progress: repository.NewSQLiteProgressRepo(database),
		counters: repository.NewSQLiteStatsRepo(database),
		sessions: repository.NewSQLiteStudySessionRepo(database),
		uow:      testutil.NewTestUoW(database),
		clock:    &testClock{now: testNow},
	}
}

func (e *testEnv) vocabService() VocabService {
	return NewVocabService(e.vocab, e.uow, e.clock.Now)
}

func (e *testEnv) reviewService() ReviewService {
	return NewReviewService(e.uow, e.clock.Now)
}

func (e *testEnv) studyService() StudyService {
	return NewSeededStudyService(e.vocab, e.uow, e.clock.Now, 42)
}

func (e *testEnv) progressService() ProgressService {
	return NewProgressService(e.progress, e.sessions, e.uow, e.clock.Now)
}

func (e *testEnv) statsService() StatsService {
	return NewStatsService(e.vocab, e.progress, e.counters, e.clock.Now)
}

func (e *testEnv) importService() ImportService {
	return NewImportService(e.vocabService(), e.vocab, e.progress, e.counters, e.uow, e.clock.Now)
}

func (e *testEnv) today() time.Time {
	return time.Date(e.clock.now.Year(), e.clock.now.Month(), e.clock.now.Day(), 0, 0, 0, 0, time.UTC)
}

func seedEntries(t *testing.T, env *testEnv, words ...string) {
	t.Helper()
	for _, w := range words {
		require.NoError(t, env.vocab.Create(context.Background(), testutil.NewTestEntry(w, testutil.WithNextReview(env.today()))))
	}
}
