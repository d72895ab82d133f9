package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var target int
	var explain bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show today's ranked study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if target < 0 {
				return fmt.Errorf("--target must not be negative: %w", domain.ErrValidation)
			}
			req := contract.NewPlanRequest()
			req.Target = planTarget(app, cmd, target)
			req.Explain = explain

			resp, err := app.Study.BuildPlan(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Number of words to plan (0 uses the suggested target)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show why each word was ranked")
	return cmd
}

// planTarget prefers an explicit --target over the configured default.
func planTarget(app *App, cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("target") {
		return flag
	}
	return app.DefaultTarget
}

func newReviewCmd(app *App) *cobra.Command {
	var guess string

	cmd := &cobra.Command{
		Use:   "review WORD RATING",
		Short: "Rate one recall from 1 (again) to 4 (easy) and reschedule the word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rating, err := parseRatingArg(args[1])
			if err != nil {
				return err
			}
			current, err := app.Vocab.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("guess") {
				correct, err := app.Review.RecordAnswer(ctx, current.Word, guess)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatAnswerFeedback(correct, current.Word))
			}

			e, err := app.Review.Schedule(ctx, current.Word, int(rating))
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatScheduled(e, rating))
			return nil
		},
	}

	cmd.Flags().StringVar(&guess, "guess", "", "Also record this answer before rating")
	return cmd
}

func formatScheduled(e *domain.VocabEntry, rating domain.Rating) string {
	return fmt.Sprintf("%s %s rated %s  %s  next review %s\n",
		formatter.StyleGreen.Render("✔"), formatter.Bold(e.Word), rating,
		formatter.BoxIndicator(e.Box),
		formatter.RelativeDay(e.NextReview, domain.Today()))
}

func newFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish REVIEWED CORRECT",
		Short: "Record a finished study session and update streak, XP and achievements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("reviewed count %q is not a number: %w", args[0], domain.ErrValidation)
			}
			correct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("correct count %q is not a number: %w", args[1], domain.ErrValidation)
			}

			summary, err := app.Progress.FinishSession(cmd.Context(), contract.NewSessionRequest(reviewed, correct))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionSummary(summary))
			return nil
		},
	}
}

func newStudyCmd(app *App) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Run an interactive study session over today's plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("study needs an interactive terminal; use plan, review and finish instead")
			}
			if target < 0 {
				return fmt.Errorf("--target must not be negative: %w", domain.ErrValidation)
			}
			return runStudySession(cmd.Context(), app, cmd.OutOrStdout(), planTarget(app, cmd, target))
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Number of words to study (0 uses the suggested target)")
	return cmd
}

// runStudySession walks the plan: answer, rate, reschedule. Quitting a
// prompt ends the session early; whatever was reviewed is still recorded.
func runStudySession(ctx context.Context, app *App, out io.Writer, target int) error {
	req := contract.NewPlanRequest()
	req.Target = target
	req.Explain = false
	plan, err := app.Study.BuildPlan(ctx, req)
	if err != nil {
		return err
	}
	if len(plan.Items) == 0 {
		fmt.Fprintln(out, formatter.Dim("Nothing to study. Add a word with `lexibox add`."))
		return nil
	}

	p := app.prompter()
	reviewed, correctCount := 0, 0

	for i, item := range plan.Items {
		fmt.Fprintln(out, formatter.FormatPrompt(item, i, len(plan.Items)))

		guess, err := askWithHints(p, out, item.Word)
		if errors.Is(err, ErrAborted) {
			break
		}
		if err != nil {
			return err
		}

		correct, err := app.Review.RecordAnswer(ctx, item.Word, guess)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatAnswerFeedback(correct, item.Word))

		suggested := domain.RatingAgain
		if correct {
			suggested = domain.RatingGood
		}
		rating, err := p.Rating(item.Word, suggested)
		aborted := errors.Is(err, ErrAborted)
		if aborted {
			rating = suggested
		} else if err != nil {
			return err
		}

		e, err := app.Review.Schedule(ctx, item.Word, int(rating))
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatScheduled(e, rating))
		fmt.Fprintln(out)

		reviewed++
		if correct {
			correctCount++
		}
		if aborted {
			break
		}
	}

	if reviewed == 0 {
		fmt.Fprintln(out, formatter.Dim("No words reviewed."))
		return nil
	}

	summary, err := app.Progress.FinishSession(ctx, contract.NewSessionRequest(reviewed, correctCount))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatSessionSummary(summary))
	return nil
}

// askWithHints prompts for the word, revealing one more letter for each
// blank answer until all but the last letter are shown.
func askWithHints(p Prompter, out io.Writer, word string) (string, error) {
	level := 0
	maxLevel := len([]rune(word)) - 1
	for {
		guess, err := p.Answer("Your answer")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(guess) != "" || level >= maxLevel {
			return guess, nil
		}
		level++
		fmt.Fprintf(out, "  %s %s\n", formatter.Dim("Hint:"), formatter.Hint(word, level))
	}
}

func newQuizCmd(app *App) *cobra.Command {
	var answer string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Guess a random word from its example sentence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			hasAnswer := cmd.Flags().Changed("answer")
			if !hasAnswer && !app.interactive() {
				return fmt.Errorf("quiz needs an interactive terminal or --answer")
			}

			e, err := app.Study.RandomQuizWord(ctx)
			if err != nil {
				return err
			}
			if e == nil {
				fmt.Fprintln(out, formatter.Dim("Your vocabulary is empty. Add a word with `lexibox add`."))
				return nil
			}

			item := contract.PlanItem{Word: e.Word, Sentence: e.Sentence, Note: e.Note, Box: e.Box, NextReview: e.NextReview}
			fmt.Fprintln(out, formatter.FormatPrompt(item, 0, 1))

			guess := answer
			if !hasAnswer {
				guess, err = askWithHints(app.prompter(), out, e.Word)
				if errors.Is(err, ErrAborted) {
					return nil
				}
				if err != nil {
					return err
				}
			}

			correct := domain.SameWord(guess, e.Word)
			if err := app.Study.RecordQuizResult(ctx, correct); err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatAnswerFeedback(correct, e.Word))
			return nil
		},
	}

	cmd.Flags().StringVar(&answer, "answer", "", "Answer without prompting")
	return cmd
}
