package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestDecodeVocab_KeepsFileOrder(t *testing.T) {
	entries, err := DecodeVocab(strings.NewReader(`{"zeta": {"sentence": "z"}, "alpha": {"sentence": "a"}, "mid": {}}`))
	require.NoError(t, err)

	var words []string
	for _, e := range entries {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, words)
	assert.Nil(t, entries[2].Entry.Sentence)
}

func TestDecodeVocab_RejectsNonObject(t *testing.T) {
	_, err := DecodeVocab(strings.NewReader(`["a", "b"]`))
	assert.ErrorIs(t, err, domain.ErrPersistence)

	_, err = DecodeVocab(strings.NewReader(`{"a": 3}`))
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestLoadLegacy_MissingFilesAreEmpty(t *testing.T) {
	data, err := LoadLegacy(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, data.Vocab)
	assert.Nil(t, data.Progress)
	assert.Nil(t, data.Stats)
}

func TestLoadLegacy_ReadsAllThreeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, VocabFile, `{"brisk": {"sentence": "A brisk walk.", "box": 3}}`)
	writeFile(t, dir, ProgressFile, `{"current_streak": 2, "xp": 15, "achievements": ["XP_100"], "history": {"2025-06-14": 3}}`)
	writeFile(t, dir, StatsFile, `{"words_added": 7, "quiz_attempts": 2, "quiz_correct": 1}`)

	data, err := LoadLegacy(dir)
	require.NoError(t, err)
	require.Len(t, data.Vocab, 1)
	assert.Equal(t, 3, *data.Vocab[0].Entry.Box)
	require.NotNil(t, data.Progress)
	assert.Equal(t, 2, data.Progress.CurrentStreak)
	assert.Equal(t, 0, data.Progress.LongestStreak)
	assert.Equal(t, map[string]int{"2025-06-14": 3}, data.Progress.History)
	require.NotNil(t, data.Stats)
	assert.Equal(t, 7, data.Stats.WordsAdded)
}

func TestLoadLegacy_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, StatsFile, `{"words_added": `)

	_, err := LoadLegacy(dir)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
