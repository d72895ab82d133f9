package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/alexanderramin/lexibox/internal/scheduler"
)

type studyService struct {
	vocab    repository.VocabRepo
	uow      db.UnitOfWork
	clock    Clock
	pick     func(n int) int
	observer UseCaseObserver
}

func NewStudyService(vocab repository.VocabRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) StudyService {
	return &studyService{
		vocab:    vocab,
		uow:      uow,
		clock:    clockOrSystem(clock),
		pick:     rand.Intn,
		observer: useCaseObserverOrNoop(observers),
	}
}

// NewSeededStudyService is NewStudyService with a deterministic quiz picker.
func NewSeededStudyService(vocab repository.VocabRepo, uow db.UnitOfWork, clock Clock, seed int64, observers ...UseCaseObserver) StudyService {
	s := NewStudyService(vocab, uow, clock, observers...).(*studyService)
	s.pick = rand.New(rand.NewSource(seed)).Intn
	return s
}

func (s *studyService) Due(ctx context.Context) ([]string, error) {
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}
	return scheduler.DueWords(entries, domain.Day(s.clock())), nil
}

func (s *studyService) DueCount(ctx context.Context) (int, error) {
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return 0, err
	}
	return scheduler.DueCount(entries, domain.Day(s.clock())), nil
}

func (s *studyService) SuggestedDailyTarget(ctx context.Context) (int, error) {
	n, err := s.DueCount(ctx)
	if err != nil {
		return 0, err
	}
	return scheduler.SuggestedDailyTarget(n), nil
}

// BuildPlan ranks every entry and returns the top of the ranking. It never
// writes to the store.
func (s *studyService) BuildPlan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"requested_target": req.Target}
	defer func() { observeUseCase(ctx, s.observer, "build-plan", startedAt, fields, err) }()

	day := today(s.clock, req.Now)
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}

	dueCount := scheduler.DueCount(entries, day)
	target := req.Target
	if target == 0 {
		target = scheduler.SuggestedDailyTarget(dueCount)
	}

	plan := scheduler.BuildPlan(entries, target, day)
	byWord := make(map[string]*domain.VocabEntry, len(entries))
	for _, e := range entries {
		byWord[e.Word] = e
	}

	resp = &contract.PlanResponse{
		GeneratedAt: startedAt,
		Date:        day,
		TotalWords:  len(entries),
		DueCount:    dueCount,
		Target:      target,
		Items:       make([]contract.PlanItem, 0, len(plan)),
	}
	for _, c := range plan {
		e := byWord[c.Input.Word]
		item := contract.PlanItem{
			Word:       e.Word,
			Sentence:   e.Sentence,
			Note:       e.Note,
			Box:        e.Box,
			NextReview: e.NextReview,
			Priority:   c.Priority,
		}
		if req.Explain {
			item.Reasons = c.Factors
		}
		resp.Items = append(resp.Items, item)
	}
	fields["target"] = target
	fields["planned"] = len(resp.Items)
	return resp, nil
}

// RandomQuizWord picks any entry and counts a quiz attempt. It returns nil
// without counting when the vocabulary is empty.
func (s *studyService) RandomQuizWord(ctx context.Context) (entry *domain.VocabEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "quiz-word", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))
		txStats := repository.NewSQLiteStatsRepo(tx)

		entries, err := txVocab.List(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		entry = entries[s.pick(len(entries))]

		st, err := txStats.Get(ctx)
		if err != nil {
			return err
		}
		st.QuizAttempts++
		return txStats.Save(ctx, st)
	})
	if err != nil {
		return nil, err
	}
	if entry != nil {
		fields["word"] = entry.Word
	}
	return entry, nil
}

func (s *studyService) RecordQuizResult(ctx context.Context, correct bool) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"correct": correct}
	defer func() { observeUseCase(ctx, s.observer, "quiz-result", startedAt, fields, err) }()

	if !correct {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStats := repository.NewSQLiteStatsRepo(tx)
		st, err := txStats.Get(ctx)
		if err != nil {
			return err
		}
		st.QuizCorrect++
		return txStats.Save(ctx, st)
	})
}
