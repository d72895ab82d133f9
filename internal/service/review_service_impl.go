package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/alexanderramin/lexibox/internal/scheduler"
)

type reviewService struct {
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewReviewService(uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) ReviewService {
	return &reviewService{
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Schedule applies a 1..4 rating to the stored word and persists the new
// ease, interval, box and due date.
func (s *reviewService) Schedule(ctx context.Context, word string, rating int) (entry *domain.VocabEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"word": word, "rating": rating}
	defer func() { observeUseCase(ctx, s.observer, "schedule-review", startedAt, fields, err) }()

	day := domain.Day(s.clock())
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))

		current, err := txVocab.Get(ctx, word)
		if err != nil {
			return err
		}
		q, err := domain.ParseRating(rating)
		if err != nil {
			return err
		}

		next, err := scheduler.Schedule(current, q, day)
		if err != nil {
			return err
		}
		if err := txVocab.Update(ctx, next); err != nil {
			return err
		}
		fields["interval"] = next.Interval
		fields["box"] = next.Box
		entry = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordAnswer checks a typed guess against the stored word, ignoring case
// and surrounding space, and logs the outcome on the word.
func (s *reviewService) RecordAnswer(ctx context.Context, word, guess string) (correct bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"word": word}
	defer func() { observeUseCase(ctx, s.observer, "record-answer", startedAt, fields, err) }()

	day := domain.Day(s.clock())
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))

		current, err := txVocab.Get(ctx, word)
		if err != nil {
			return err
		}
		correct = strings.TrimSpace(guess) != "" && domain.SameWord(guess, current.Word)

		current.RecordAnswer(correct, day)
		if err := txVocab.Update(ctx, current); err != nil {
			return err
		}
		return txVocab.AppendReview(ctx, current.Word, current.History[len(current.History)-1])
	})
	if err != nil {
		return false, err
	}
	fields["correct"] = correct
	return correct, nil
}
