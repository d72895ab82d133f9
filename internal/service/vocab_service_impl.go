package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/repository"
)

type vocabService struct {
	vocab    repository.VocabRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewVocabService(vocab repository.VocabRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) VocabService {
	return &vocabService{
		vocab:    vocab,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *vocabService) Add(ctx context.Context, word, sentence, note string) (entry *domain.VocabEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"word": strings.TrimSpace(word)}
	defer func() { observeUseCase(ctx, s.observer, "add-word", startedAt, fields, err) }()

	now := s.clock()
	entry, err = domain.NewVocabEntry(word, sentence, note, domain.Day(now), now.UTC())
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))
		txStats := repository.NewSQLiteStatsRepo(tx)

		existing, err := txVocab.Find(ctx, entry.Word)
		if err == nil {
			return fmt.Errorf("word %q already exists as %q: %w", entry.Word, existing.Word, domain.ErrValidation)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := txVocab.Create(ctx, entry); err != nil {
			return err
		}

		st, err := txStats.Get(ctx)
		if err != nil {
			return err
		}
		st.WordsAdded++
		return txStats.Save(ctx, st)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *vocabService) Remove(ctx context.Context, word string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"word": word}
	defer func() { observeUseCase(ctx, s.observer, "remove-word", startedAt, fields, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))
		txStats := repository.NewSQLiteStatsRepo(tx)

		existing, err := txVocab.Find(ctx, strings.TrimSpace(word))
		if err != nil {
			return err
		}
		fields["stored_word"] = existing.Word
		if err := txVocab.Delete(ctx, existing.Word); err != nil {
			return err
		}

		st, err := txStats.Get(ctx)
		if err != nil {
			return err
		}
		st.WordsRemoved++
		return txStats.Save(ctx, st)
	})
}

func (s *vocabService) Edit(ctx context.Context, word, sentence, note string) (entry *domain.VocabEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"word": word}
	defer func() { observeUseCase(ctx, s.observer, "edit-word", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))

		existing, err := txVocab.Get(ctx, word)
		if err != nil {
			return err
		}
		if err := existing.SetText(sentence, note); err != nil {
			return err
		}
		if err := txVocab.Update(ctx, existing); err != nil {
			return err
		}
		entry = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *vocabService) Get(ctx context.Context, word string) (*domain.VocabEntry, error) {
	return s.vocab.Get(ctx, word)
}

func (s *vocabService) Resolve(ctx context.Context, word string) (*domain.VocabEntry, error) {
	return s.vocab.Find(ctx, strings.TrimSpace(word))
}

func (s *vocabService) All(ctx context.Context) ([]*domain.VocabEntry, error) {
	return s.vocab.List(ctx)
}

func (s *vocabService) Count(ctx context.Context) (int, error) {
	return s.vocab.Count(ctx)
}
