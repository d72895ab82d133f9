package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/importer"
	"github.com/alexanderramin/lexibox/internal/repository"
)

type importService struct {
	words    VocabService
	vocab    repository.VocabRepo
	progress repository.ProgressRepo
	counters repository.StatsRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewImportService(
	words VocabService,
	vocab repository.VocabRepo,
	progress repository.ProgressRepo,
	counters repository.StatsRepo,
	uow db.UnitOfWork,
	clock Clock,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		words:    words,
		vocab:    vocab,
		progress: progress,
		counters: counters,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportLegacy merges a legacy data directory into the store. Vocab records
// are healed and added unless the word already exists; progress and stats
// replace the stored state when their files are present. Everything is
// written in one transaction.
func (s *importService) ImportLegacy(ctx context.Context, dir string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dir": dir}
	defer func() { observeUseCase(ctx, s.observer, "import-legacy", startedAt, fields, err) }()

	data, err := importer.LoadLegacy(dir)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateLegacy(data); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	day := domain.Day(s.clock())
	result = &ImportResult{Healed: map[string][]string{}}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))
		txProgress := repository.NewSQLiteProgressRepo(tx, repository.WithClock(s.clock))
		txStats := repository.NewSQLiteStatsRepo(tx)

		for i, ne := range data.Vocab {
			raw := importer.ToRawEntry(ne)
			if err := importer.CheckEntry(raw); err != nil {
				result.Skipped = append(result.Skipped, importer.RowError{Row: i + 1, Word: raw.Word, Err: err})
				continue
			}

			existing, err := txVocab.Find(ctx, raw.Word)
			if err == nil {
				dup := fmt.Errorf("word already stored as %q: %w", existing.Word, domain.ErrValidation)
				result.Skipped = append(result.Skipped, importer.RowError{Row: i + 1, Word: raw.Word, Err: dup})
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			entry, healed := domain.HealEntry(raw, day)
			if err := txVocab.Create(ctx, entry); err != nil {
				return fmt.Errorf("importing %q: %w", entry.Word, err)
			}
			result.Added++
			if len(healed) > 0 {
				result.Healed[entry.Word] = healed
			}
		}

		if data.Progress != nil {
			if err := txProgress.Replace(ctx, importer.ToProgress(data.Progress)); err != nil {
				return err
			}
			result.Progress = true
		}

		if data.Stats != nil {
			result.Stats = true
			return txStats.Save(ctx, importer.ToStats(data.Stats))
		}
		if result.Added == 0 {
			return nil
		}
		st, err := txStats.Get(ctx)
		if err != nil {
			return err
		}
		st.WordsAdded += result.Added
		return txStats.Save(ctx, st)
	})
	if err != nil {
		return nil, err
	}

	fields["added"] = result.Added
	fields["skipped"] = len(result.Skipped)
	fields["healed"] = len(result.Healed)
	return result, nil
}

// ImportWords adds every word / sentence / note row of a spreadsheet. Rows
// the vocabulary rejects are reported and do not stop the import.
func (s *importService) ImportWords(ctx context.Context, path string) (result *WordImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() { observeUseCase(ctx, s.observer, "import-words", startedAt, fields, err) }()

	rows, err := importer.ReadWords(path)
	if err != nil {
		return nil, err
	}

	result = &WordImportResult{}
	for _, row := range rows {
		if _, err := s.words.Add(ctx, row.Word, row.Sentence, row.Note); err != nil {
			if !errors.Is(err, domain.ErrValidation) {
				return nil, fmt.Errorf("row %d: %w", row.Row, err)
			}
			result.Rejected = append(result.Rejected, importer.RowError{Row: row.Row, Word: row.Word, Err: err})
			continue
		}
		result.Added++
	}

	fields["added"] = result.Added
	fields["rejected"] = len(result.Rejected)
	return result, nil
}

// ExportLegacy writes the store in the legacy three-file layout.
func (s *importService) ExportLegacy(ctx context.Context, dir string, format importer.Format) (paths []string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dir": dir, "format": string(format)}
	defer func() { observeUseCase(ctx, s.observer, "export-legacy", startedAt, fields, err) }()

	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.progress.Get(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.counters.Get(ctx)
	if err != nil {
		return nil, err
	}

	data := &importer.LegacyData{
		Vocab:    make([]importer.NamedEntry, 0, len(entries)),
		Progress: importer.FromProgress(p),
		Stats:    importer.FromStats(st),
	}
	for _, e := range entries {
		data.Vocab = append(data.Vocab, importer.FromEntry(e))
	}

	paths, err = importer.WriteLegacy(dir, data, format)
	if err != nil {
		return nil, err
	}
	fields["words"] = len(entries)
	return paths, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}
