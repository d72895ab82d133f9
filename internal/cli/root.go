package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/lexibox/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Vocab    service.VocabService
	Review   service.ReviewService
	Study    service.StudyService
	Progress service.ProgressService
	Stats    service.StatsService
	Import   service.ImportService

	// DefaultTarget is the configured plan size; zero asks the study
	// service for its suggestion.
	DefaultTarget int
	RemindEvery   time.Duration
	Logger        *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Prompt collects answers during study and quiz. Nil uses huh forms.
	Prompt Prompter
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) prompter() Prompter {
	if a.Prompt != nil {
		return a.Prompt
	}
	return huhPrompter{}
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// NewRootCmd creates the top-level "lexibox" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexibox",
		Short:         "Vocabulary trainer with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newRemoveCmd(app),
		newEditCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newBrowseCmd(app),
		newDueCmd(app),
		newPlanCmd(app),
		newReviewCmd(app),
		newStudyCmd(app),
		newFinishCmd(app),
		newQuizCmd(app),
		newProgressCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newHeatmapCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newRemindCmd(app),
	)

	return root
}
