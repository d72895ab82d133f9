package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/lexibox/internal/cli"
	"github.com/alexanderramin/lexibox/internal/config"
	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/alexanderramin/lexibox/internal/repository"
	"github.com/alexanderramin/lexibox/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := service.ParseLogLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	vocabRepo := repository.NewSQLiteVocabRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)
	sessionRepo := repository.NewSQLiteStudySessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		observer = service.NewLeveledLogUseCaseObserver(os.Stderr, level)
	}

	// Wire services
	vocabSvc := service.NewVocabService(vocabRepo, uow, nil, observer)

	app := &cli.App{
		Vocab:    vocabSvc,
		Review:   service.NewReviewService(uow, nil, observer),
		Study:    service.NewStudyService(vocabRepo, uow, nil, observer),
		Progress: service.NewProgressService(progressRepo, sessionRepo, uow, nil, observer),
		Stats:    service.NewStatsService(vocabRepo, progressRepo, statsRepo, nil),
		Import:   service.NewImportService(vocabSvc, vocabRepo, progressRepo, statsRepo, uow, nil, observer),

		DefaultTarget: cfg.Study.DefaultTarget,
		RemindEvery:   cfg.Remind.Every,
		Logger:        logger,
	}

	// Prompts and spinners only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("lexibox starting", "db", cfg.DB.Path)

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
