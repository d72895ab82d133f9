package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// File names of the legacy three-file layout.
const (
	VocabFile    = "vocab.json"
	ProgressFile = "progress.json"
	StatsFile    = "stats.json"
)

// LegacyEntry is one vocab.json value. Every field is optional; older files
// predate ease, interval and history.
type LegacyEntry struct {
	Sentence      *string         `json:"sentence,omitempty" yaml:"sentence,omitempty"`
	Note          *string         `json:"note,omitempty" yaml:"note,omitempty"`
	Box           *int            `json:"box,omitempty" yaml:"box,omitempty"`
	TimesReviewed *int            `json:"times_reviewed,omitempty" yaml:"times_reviewed,omitempty"`
	TimesCorrect  *int            `json:"times_correct,omitempty" yaml:"times_correct,omitempty"`
	Ease          *float64        `json:"ease,omitempty" yaml:"ease,omitempty"`
	History       *[]LegacyReview `json:"history,omitempty" yaml:"history,omitempty"`
	LastReviewed  *string         `json:"last_reviewed" yaml:"last_reviewed"`
	NextReview    *string         `json:"next_review,omitempty" yaml:"next_review,omitempty"`
	Interval      *int            `json:"interval,omitempty" yaml:"interval,omitempty"`
}

type LegacyReview struct {
	Date    string `json:"date" yaml:"date"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// NamedEntry keeps a vocab.json key with its value so file order survives.
type NamedEntry struct {
	Word  string
	Entry LegacyEntry
}

type LegacyProgress struct {
	CurrentStreak int            `json:"current_streak" yaml:"current_streak" validate:"gte=0"`
	LongestStreak int            `json:"longest_streak" yaml:"longest_streak" validate:"gte=0"`
	LastStudyDate *string        `json:"last_study_date" yaml:"last_study_date" validate:"omitnil,datetime=2006-01-02"`
	StudiedToday  int            `json:"studied_today" yaml:"studied_today" validate:"gte=0"`
	XP            int            `json:"xp" yaml:"xp" validate:"gte=0"`
	Achievements  []string       `json:"achievements" yaml:"achievements" validate:"dive,required"`
	TotalReviews  int            `json:"total_reviews" yaml:"total_reviews" validate:"gte=0"`
	History       map[string]int `json:"history" yaml:"history" validate:"dive,keys,datetime=2006-01-02,endkeys,gte=0"`
}

type LegacyStats struct {
	WordsAdded   int `json:"words_added" yaml:"words_added" validate:"gte=0"`
	WordsRemoved int `json:"words_removed" yaml:"words_removed" validate:"gte=0"`
	QuizAttempts int `json:"quiz_attempts" yaml:"quiz_attempts" validate:"gte=0"`
	QuizCorrect  int `json:"quiz_correct" yaml:"quiz_correct" validate:"gte=0,ltefield=QuizAttempts"`
}

// LegacyData is the content of a legacy data directory. Progress and Stats
// are nil when their file is absent.
type LegacyData struct {
	Vocab    []NamedEntry
	Progress *LegacyProgress
	Stats    *LegacyStats
}

// LoadLegacy reads vocab.json, progress.json and stats.json from dir.
// Missing files are not an error; unreadable or malformed ones are.
func LoadLegacy(dir string) (*LegacyData, error) {
	data := &LegacyData{}

	raw, err := readOptional(filepath.Join(dir, VocabFile))
	if err != nil {
		return nil, err
	}
	if raw != nil {
		data.Vocab, err = DecodeVocab(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VocabFile, err)
		}
	}

	raw, err = readOptional(filepath.Join(dir, ProgressFile))
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var p LegacyProgress
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing %s: %v: %w", ProgressFile, err, domain.ErrPersistence)
		}
		data.Progress = &p
	}

	raw, err = readOptional(filepath.Join(dir, StatsFile))
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var s LegacyStats
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %v: %w", StatsFile, err, domain.ErrPersistence)
		}
		data.Stats = &s
	}

	return data, nil
}

func readOptional(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, domain.ErrPersistence)
	}
	return raw, nil
}

// DecodeVocab decodes a vocab.json object, keeping its keys in file order.
func DecodeVocab(r io.Reader) ([]NamedEntry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading vocab object: %v: %w", err, domain.ErrPersistence)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("vocab file must hold a JSON object: %w", domain.ErrPersistence)
	}

	var out []NamedEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading vocab key: %v: %w", err, domain.ErrPersistence)
		}
		word, _ := tok.(string)

		var entry LegacyEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decoding entry %q: %v: %w", word, err, domain.ErrPersistence)
		}
		out = append(out, NamedEntry{Word: word, Entry: entry})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("closing vocab object: %v: %w", err, domain.ErrPersistence)
	}
	return out, nil
}
