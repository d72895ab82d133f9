package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMixedSchedule(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	day := env.today()
	require.NoError(t, env.vocab.Create(ctx, testutil.NewTestEntry("later", testutil.WithNextReview(domain.AddDays(day, 5)))))
	require.NoError(t, env.vocab.Create(ctx, testutil.NewTestEntry("old", testutil.WithNextReview(domain.AddDays(day, -10)))))
	require.NoError(t, env.vocab.Create(ctx, testutil.NewTestEntry("fresh", testutil.WithNextReview(day))))
}

func TestStudyService_DueInInsertionOrder(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.studyService()
	seedMixedSchedule(t, env)

	due, err := svc.Due(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "fresh"}, due)

	n, err := svc.DueCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	target, err := svc.SuggestedDailyTarget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, target, "target is never below the minimum")
}

func TestStudyService_SuggestedTargetCapsAtTwenty(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		seedEntries(t, env, string(rune('a'+i))+"word")
	}

	target, err := env.studyService().SuggestedDailyTarget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, target)
}

func TestStudyService_BuildPlanRanksAndExplains(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.studyService()
	seedMixedSchedule(t, env)

	resp, err := svc.BuildPlan(ctx, contract.NewPlanRequest())
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Target)
	assert.Equal(t, 3, resp.TotalWords)
	assert.Equal(t, 2, resp.DueCount)
	assert.Equal(t, []string{"old", "fresh", "later"}, resp.Words())

	for i := 1; i < len(resp.Items); i++ {
		assert.GreaterOrEqual(t, resp.Items[i-1].Priority, resp.Items[i].Priority)
	}
	require.NotEmpty(t, resp.Items[0].Reasons)
	assert.Equal(t, "10 days overdue", resp.Items[0].Reasons[0].Message)
}

func TestStudyService_BuildPlanHonoursTargetWithoutWriting(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.studyService()
	seedMixedSchedule(t, env)

	before, err := env.vocab.List(ctx)
	require.NoError(t, err)

	resp, err := svc.BuildPlan(ctx, contract.PlanRequest{Target: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, resp.Words())
	assert.Nil(t, resp.Items[0].Reasons)

	after, err := env.vocab.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStudyService_BuildPlanNegativeTargetIsEmpty(t *testing.T) {
	env := setupRepos(t)
	seedMixedSchedule(t, env)

	resp, err := env.studyService().BuildPlan(context.Background(), contract.PlanRequest{Target: -1})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, -1, resp.Target)
}

func TestStudyService_BuildPlanEmptyVocabulary(t *testing.T) {
	env := setupRepos(t)

	resp, err := env.studyService().BuildPlan(context.Background(), contract.NewPlanRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 5, resp.Target)
}

func TestStudyService_QuizCounters(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.studyService()

	e, err := svc.RandomQuizWord(ctx)
	require.NoError(t, err)
	assert.Nil(t, e)
	st, err := env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.QuizAttempts, "an empty vocabulary does not count an attempt")

	seedEntries(t, env, "mirth", "zeal")
	e, err = svc.RandomQuizWord(ctx)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Contains(t, []string{"mirth", "zeal"}, e.Word)

	require.NoError(t, svc.RecordQuizResult(ctx, true))
	require.NoError(t, svc.RecordQuizResult(ctx, false))

	st, err = env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.QuizAttempts)
	assert.Equal(t, 1, st.QuizCorrect)
}
