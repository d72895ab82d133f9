package service

import (
	"context"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/alexanderramin/lexibox/internal/stats"
)

type statsService struct {
	vocab    repository.VocabRepo
	progress repository.ProgressRepo
	counters repository.StatsRepo
	clock    Clock
}

func NewStatsService(
	vocab repository.VocabRepo,
	progress repository.ProgressRepo,
	counters repository.StatsRepo,
	clock Clock,
) StatsService {
	return &statsService{
		vocab:    vocab,
		progress: progress,
		counters: counters,
		clock:    clockOrSystem(clock),
	}
}

// WordAccuracy returns a word's accuracy percentage. The lookup is exact.
func (s *statsService) WordAccuracy(ctx context.Context, word string) (float64, error) {
	e, err := s.vocab.Get(ctx, word)
	if err != nil {
		return 0, err
	}
	return stats.WordAccuracy(e), nil
}

func (s *statsService) OverallAccuracy(ctx context.Context) (float64, error) {
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return 0, err
	}
	return stats.OverallAccuracy(entries), nil
}

func (s *statsService) DifficultWords(ctx context.Context, limit int) ([]stats.DifficultWord, error) {
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.DifficultWords(entries, limit), nil
}

func (s *statsService) BoxDistribution(ctx context.Context) (map[int]int, error) {
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.BoxDistribution(entries), nil
}

func (s *statsService) Activity(ctx context.Context, days int) ([]stats.ActivityDay, error) {
	p, err := s.progress.Get(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Activity(p.History, today(s.clock, nil), days), nil
}

func (s *statsService) Dashboard(ctx context.Context, req contract.StatsRequest) (*contract.StatsResponse, error) {
	day := today(s.clock, req.Now)
	entries, err := s.vocab.List(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.progress.Get(ctx)
	if err != nil {
		return nil, err
	}
	counters, err := s.counters.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.StatsResponse{
		Date:     day,
		Summary:  stats.Summarize(entries, day, req.DifficultLimit),
		Counters: *counters,
		Progress: *p,
	}, nil
}
