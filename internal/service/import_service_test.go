package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLegacyFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestImportLegacy_MergesHealsAndSkips(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()
	_, err := env.vocabService().Add(ctx, "Serene", "A Serene lake.", "")
	require.NoError(t, err)

	dir := t.TempDir()
	writeLegacyFile(t, dir, importer.VocabFile, `{
		"ubiquitous": {"sentence": "Phones are ubiquitous.", "box": 2, "times_reviewed": 3, "times_correct": 2},
		"serene": {"sentence": "serene again"},
		"blank": {"box": 1},
		"zephyr": {"sentence": "A zephyr blew.", "box": 7, "ease": 1.1, "interval": 4, "next_review": "2025-06-20",
		           "history": [{"date": "2025-06-01", "correct": true}]}
	}`)
	writeLegacyFile(t, dir, importer.ProgressFile, `{"current_streak": 4, "longest_streak": 9, "last_study_date": "2025-06-14",
		"xp": 120, "achievements": ["XP_100"], "total_reviews": 40, "history": {"2025-06-14": 6}}`)

	result, err := env.importService().ImportLegacy(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "serene", result.Skipped[0].Word)
	assert.ErrorIs(t, result.Skipped[0], domain.ErrValidation)
	assert.Equal(t, "blank", result.Skipped[1].Word)
	assert.True(t, result.Progress)
	assert.False(t, result.Stats)
	assert.ElementsMatch(t, []string{"note", "ease", "interval", "next_review", "history"}, result.Healed["ubiquitous"])
	assert.ElementsMatch(t, []string{"note", "times_reviewed", "times_correct", "box", "ease"}, result.Healed["zephyr"])

	ub, err := env.vocab.Get(ctx, "ubiquitous")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEase, ub.Ease)
	assert.Equal(t, env.today(), ub.NextReview)

	z, err := env.vocab.Get(ctx, "zephyr")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxBox, z.Box)
	assert.Equal(t, domain.MinEase, z.Ease)
	assert.Equal(t, 4, z.Interval)
	require.Len(t, z.History, 1)

	all, err := env.vocab.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Serene", all[0].Word, "existing entries keep their place")
	assert.Equal(t, "ubiquitous", all[1].Word)
	assert.Equal(t, "zephyr", all[2].Word)

	p, err := env.progress.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, p.CurrentStreak)
	assert.Equal(t, 9, p.LongestStreak)
	assert.Equal(t, []string{"XP_100"}, p.Achievements)

	st, err := env.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.WordsAdded, "imported words are counted when stats.json is absent")
}

func TestImportLegacy_ProgressReplacesStoredState(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()

	stored := domain.NewProgressState()
	stored.History["2025-01-01"] = 7
	stored.Achievements = []string{"XP_100"}
	stored.XP = 150
	require.NoError(t, env.progress.Save(ctx, stored))

	dir := t.TempDir()
	writeLegacyFile(t, dir, importer.ProgressFile, `{"current_streak": 1, "longest_streak": 1,
		"last_study_date": "2025-02-02", "xp": 15, "achievements": [], "total_reviews": 3,
		"history": {"2025-02-02": 3}}`)

	result, err := env.importService().ImportLegacy(ctx, dir)
	require.NoError(t, err)
	assert.True(t, result.Progress)

	p, err := env.progress.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2025-02-02": 3}, p.History)
	assert.Empty(t, p.Achievements)
	assert.Equal(t, 15, p.XP)
}

func TestImportLegacy_InvalidCountersImportNothing(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeLegacyFile(t, dir, importer.VocabFile, `{"terse": {"sentence": "Keep it terse."}}`)
	writeLegacyFile(t, dir, importer.StatsFile, `{"words_added": -2}`)

	_, err := env.importService().ImportLegacy(ctx, dir)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "words_added")

	n, err := env.vocab.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportLegacy_MalformedFile(t *testing.T) {
	env := setupRepos(t)
	dir := t.TempDir()
	writeLegacyFile(t, dir, importer.VocabFile, `{"terse": `)

	_, err := env.importService().ImportLegacy(context.Background(), dir)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestImportWords_ReportsRejectedRows(t *testing.T) {
	env := setupRepos(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("word,sentence,note\n"+
		"lucid,A lucid answer.,clear\n"+
		"wary,Nothing here.,\n"+
		"LUCID,Another lucid one.,\n"+
		"brisk,A brisk walk.,\n"), 0o644))

	result, err := env.importService().ImportWords(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 3, result.Rejected[0].Row)
	assert.Equal(t, "wary", result.Rejected[0].Word)
	assert.Equal(t, "LUCID", result.Rejected[1].Word)

	words, err := env.studyService().Due(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lucid", "brisk"}, words)
}

func TestExportLegacy_RoundTripsIntoFreshStore(t *testing.T) {
	src := setupRepos(t)
	ctx := context.Background()
	vocab := src.vocabService()
	for _, w := range []string{"zeal", "apt"} {
		_, err := vocab.Add(ctx, w, "Full of "+w+".", "")
		require.NoError(t, err)
	}
	_, err := src.reviewService().RecordAnswer(ctx, "apt", "apt")
	require.NoError(t, err)
	_, err = src.reviewService().Schedule(ctx, "apt", int(domain.RatingEasy))
	require.NoError(t, err)
	_, err = src.progressService().FinishSession(ctx, contract.NewSessionRequest(1, 1))
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := src.importService().ExportLegacy(ctx, dir, importer.FormatJSON)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	dst := setupRepos(t)
	result, err := dst.importService().ImportLegacy(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Healed, "exported entries are complete")
	assert.True(t, result.Stats)

	want, err := src.vocab.Get(ctx, "apt")
	require.NoError(t, err)
	got, err := dst.vocab.Get(ctx, "apt")
	require.NoError(t, err)
	assert.Equal(t, want.Box, got.Box)
	assert.Equal(t, want.Ease, got.Ease)
	assert.Equal(t, want.Interval, got.Interval)
	assert.Equal(t, want.NextReview, got.NextReview)
	assert.Equal(t, want.LastReviewed, got.LastReviewed)
	assert.Equal(t, want.History, got.History)

	srcProgress, err := src.progress.Get(ctx)
	require.NoError(t, err)
	dstProgress, err := dst.progress.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcProgress, dstProgress)

	srcStats, err := src.counters.Get(ctx)
	require.NoError(t, err)
	dstStats, err := dst.counters.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcStats, dstStats)
}

func TestExportLegacy_UnknownDirectoryIsCreated(t *testing.T) {
	env := setupRepos(t)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	paths, err := env.importService().ExportLegacy(context.Background(), dir, importer.FormatYAML)
	require.NoError(t, err)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}
