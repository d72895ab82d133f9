package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_FirstSession(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.progressService()

	summary, err := svc.FinishSession(ctx, contract.NewSessionRequest(8, 6))
	require.NoError(t, err)
	assert.Equal(t, 30, summary.XPEarned)
	assert.Equal(t, 30, summary.TotalXP)
	assert.Equal(t, 1, summary.CurrentStreak)
	assert.Equal(t, 1, summary.LongestStreak)
	assert.Empty(t, summary.Unlocked)
	assert.InDelta(t, 75.0, summary.Accuracy(), 1e-9)

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, p.StudiedToday)
	assert.Equal(t, 8, p.TotalReviews)
	assert.Equal(t, 8, p.ReviewsOn(env.today()))
	require.NotNil(t, p.LastStudyDate)
	assert.Equal(t, env.today(), *p.LastStudyDate)

	sessions, err := svc.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, summary.SessionID, sessions[0].ID)
	assert.Equal(t, 30, sessions[0].XPEarned)
}

func TestProgressService_StreakAcrossDays(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.progressService()

	var summary *contract.SessionSummary
	var err error
	for day := 0; day < 3; day++ {
		summary, err = svc.FinishSession(ctx, contract.NewSessionRequest(2, 2))
		require.NoError(t, err)
		env.clock.Advance(1)
	}
	assert.Equal(t, 3, summary.CurrentStreak)
	require.Len(t, summary.Unlocked, 1)
	assert.Equal(t, "Streak_3", summary.Unlocked[0].ID)

	// Skipping a day resets the streak but keeps the longest.
	env.clock.Advance(1)
	summary, err = svc.FinishSession(ctx, contract.NewSessionRequest(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CurrentStreak)
	assert.Equal(t, 3, summary.LongestStreak)
	assert.Empty(t, summary.Unlocked)
}

func TestProgressService_StreakFollowsLocalCalendar(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.progressService()
	pdt := time.FixedZone("PDT", -7*60*60)

	// Both moments fall on 2025-06-11 in UTC.
	env.clock.now = time.Date(2025, 6, 10, 17, 0, 0, 0, pdt)
	_, err := svc.FinishSession(ctx, contract.NewSessionRequest(2, 1))
	require.NoError(t, err)

	env.clock.now = time.Date(2025, 6, 11, 9, 0, 0, 0, pdt)
	summary, err := svc.FinishSession(ctx, contract.NewSessionRequest(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CurrentStreak)

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, p.LastStudyDate)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), *p.LastStudyDate)
	assert.Equal(t, 2, p.ReviewsOn(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, p.ReviewsOn(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))
}

func TestSystemClock_IsLocal(t *testing.T) {
	assert.Equal(t, time.Local, systemClock().Location())
}

func TestProgressService_SameDaySessionsAccumulate(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.progressService()

	first, err := svc.FinishSession(ctx, contract.NewSessionRequest(12, 12))
	require.NoError(t, err)
	assert.Empty(t, first.Unlocked)

	second, err := svc.FinishSession(ctx, contract.NewSessionRequest(10, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, second.CurrentStreak)
	assert.Equal(t, 100, second.TotalXP)
	require.Len(t, second.Unlocked, 1)
	assert.Equal(t, "XP_100", second.Unlocked[0].ID)

	third, err := svc.FinishSession(ctx, contract.NewSessionRequest(0, 0))
	require.NoError(t, err)
	assert.Empty(t, third.Unlocked, "achievements are reported once")

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 22, p.StudiedToday)
	assert.Equal(t, []string{"XP_100"}, p.Achievements)
}

func TestProgressService_WordsAchievementUsesVocabularySize(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		seedEntries(t, env, fmt.Sprintf("word%02d", i))
	}

	summary, err := env.progressService().FinishSession(ctx, contract.NewSessionRequest(1, 0))
	require.NoError(t, err)
	require.Len(t, summary.Unlocked, 1)
	assert.Equal(t, "Words_50", summary.Unlocked[0].ID)
}

func TestProgressService_InvalidCountsWriteNothing(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.progressService()

	_, err := svc.FinishSession(ctx, contract.NewSessionRequest(3, 5))
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.FinishSession(ctx, contract.NewSessionRequest(-1, 0))
	assert.ErrorIs(t, err, domain.ErrValidation)

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, p.LastStudyDate, "streak update is rolled back with the session")
	assert.Zero(t, p.CurrentStreak)

	sessions, err := svc.RecentSessions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestProgressService_RollbackOnSessionLogFailure(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()

	// ExecContext #1 = progress row, #2 = history day, #3 = session insert
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 3,
		Err:    fmt.Errorf("injected session failure"),
	}
	svc := NewProgressService(env.progress, env.sessions, failUoW, env.clock.Now)

	_, err := svc.FinishSession(ctx, contract.NewSessionRequest(1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected session failure")

	p, err := env.progress.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, p.TotalReviews, "progress should be unchanged after rollback")
	assert.Empty(t, p.History)
}
