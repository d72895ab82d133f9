package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabService_AddStoresDefaultsAndCounts(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	e, err := svc.Add(ctx, "  ephemeral ", "Fame is ephemeral.", "short-lived")
	require.NoError(t, err)
	assert.Equal(t, "ephemeral", e.Word)
	assert.Equal(t, env.today(), e.NextReview)

	stored, err := svc.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBox, stored.Box)
	assert.Equal(t, domain.DefaultEase, stored.Ease)
	assert.Equal(t, domain.DefaultInterval, stored.Interval)
	assert.Equal(t, "short-lived", stored.Note)
	assert.Nil(t, stored.LastReviewed)
	assert.Empty(t, stored.History)

	st, err := env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.WordsAdded)
}

func TestVocabService_AddRejectsDuplicateIgnoringCase(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	_, err := svc.Add(ctx, "Serene", "A Serene morning.", "")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "serene", "A serene lake.", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	st, err := env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.WordsAdded, "a rejected add is not counted")
}

func TestVocabService_CaseFoldingCoversNonASCII(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	_, err := svc.Add(ctx, "Über", "Über alles.", "")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "über", "Das ist über mir.", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Resolve(ctx, "ÜBER")
	require.NoError(t, err)
	assert.Equal(t, "Über", got.Word)

	require.NoError(t, svc.Remove(ctx, "über"))
	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVocabService_AddValidatesText(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	tests := []struct {
		name, word, sentence string
	}{
		{"empty word", "", "Anything."},
		{"empty sentence", "word", "  "},
		{"sentence lacks word", "lucid", "A clear answer."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.word, tt.sentence, "")
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVocabService_RemoveIgnoresCase(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	_, err := svc.Add(ctx, "Quell", "They quell the riot.", "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "QUELL"))
	_, err = svc.Resolve(ctx, "quell")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	st, err := env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.WordsRemoved)

	assert.ErrorIs(t, svc.Remove(ctx, "quell"), domain.ErrNotFound)
	st, err = env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.WordsRemoved, "a failed remove is not counted")
}

func TestVocabService_EditKeepsScheduling(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	_, err := svc.Add(ctx, "brisk", "A brisk walk.", "")
	require.NoError(t, err)
	_, err = env.reviewService().Schedule(ctx, "brisk", int(domain.RatingGood))
	require.NoError(t, err)
	before, err := svc.Get(ctx, "brisk")
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, "brisk", "The pace was brisk.", "quick")
	require.NoError(t, err)
	assert.Equal(t, "The pace was brisk.", edited.Sentence)

	after, err := svc.Get(ctx, "brisk")
	require.NoError(t, err)
	assert.Equal(t, "quick", after.Note)
	assert.Equal(t, before.Box, after.Box)
	assert.Equal(t, before.Ease, after.Ease)
	assert.Equal(t, before.Interval, after.Interval)
	assert.Equal(t, before.NextReview, after.NextReview)
}

func TestVocabService_EditValidationAndLookup(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	_, err := svc.Add(ctx, "brisk", "A brisk walk.", "")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, "Brisk", "A Brisk walk.", "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "edit matches the stored word exactly")

	_, err = svc.Edit(ctx, "brisk", "A slow walk.", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := svc.Get(ctx, "brisk")
	require.NoError(t, err)
	assert.Equal(t, "A brisk walk.", stored.Sentence)
}

func TestVocabService_AllKeepsInsertionOrder(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	svc := env.vocabService()

	for _, w := range []string{"zeal", "apt", "mirth"} {
		_, err := svc.Add(ctx, w, "Some "+w+" here.", "")
		require.NoError(t, err)
	}

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "zeal", all[0].Word)
	assert.Equal(t, "apt", all[1].Word)
	assert.Equal(t, "mirth", all[2].Word)
}
