package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	progress repository.ProgressRepo
	sessions repository.StudySessionRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewProgressService(
	progress repository.ProgressRepo,
	sessions repository.StudySessionRepo,
	uow db.UnitOfWork,
	clock Clock,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		progress: progress,
		sessions: sessions,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// FinishSession advances the streak, folds the session counts into the
// progress record, unlocks achievements and logs the session, all in one
// transaction.
func (s *progressService) FinishSession(ctx context.Context, req contract.SessionRequest) (summary *contract.SessionSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"reviewed": req.Reviewed, "correct": req.Correct}
	defer func() { observeUseCase(ctx, s.observer, "finish-session", startedAt, fields, err) }()

	day := today(s.clock, req.Now)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx, repository.WithClock(s.clock))
		txVocab := repository.NewSQLiteVocabRepo(tx, repository.WithClock(s.clock))
		txSessions := repository.NewSQLiteStudySessionRepo(tx)

		p, err := txProgress.Get(ctx)
		if err != nil {
			return err
		}

		p.UpdateStreak(day)
		if err := p.RecordSession(req.Reviewed, req.Correct, day); err != nil {
			return err
		}

		wordCount, err := txVocab.Count(ctx)
		if err != nil {
			return err
		}
		unlocked := p.CheckAchievements(wordCount)

		if err := txProgress.Save(ctx, p); err != nil {
			return err
		}

		session := &domain.StudySession{
			ID:        uuid.New().String(),
			Date:      day,
			Reviewed:  req.Reviewed,
			Correct:   req.Correct,
			XPEarned:  req.Correct * domain.XPPerCorrect,
			CreatedAt: s.clock().UTC(),
		}
		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}

		summary = &contract.SessionSummary{
			SessionID:     session.ID,
			Date:          day,
			Reviewed:      req.Reviewed,
			Correct:       req.Correct,
			XPEarned:      session.XPEarned,
			TotalXP:       p.XP,
			CurrentStreak: p.CurrentStreak,
			LongestStreak: p.LongestStreak,
			Unlocked:      unlocked,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["unlocked"] = len(summary.Unlocked)
	fields["streak"] = summary.CurrentStreak
	return summary, nil
}

func (s *progressService) Get(ctx context.Context) (*domain.ProgressState, error) {
	return s.progress.Get(ctx)
}

func (s *progressService) RecentSessions(ctx context.Context, limit int) ([]*domain.StudySession, error) {
	return s.sessions.ListRecent(ctx, limit)
}
