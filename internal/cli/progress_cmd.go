package cli

import (
	"fmt"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/stats"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show streak, XP, today's goal and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Progress.Get(ctx)
			if err != nil {
				return err
			}
			target := app.DefaultTarget
			if target == 0 {
				if target, err = app.Study.SuggestedDailyTarget(ctx); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(p, target))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent study sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive: %w", domain.ErrValidation)
			}
			sessions, err := app.Progress.RecentSessions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionHistory(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sessions to show")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show accuracy, box distribution and the most difficult words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative: %w", domain.ErrValidation)
			}
			req := contract.NewStatsRequest()
			req.DifficultLimit = limit

			resp, err := app.Stats.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", contract.NewStatsRequest().DifficultLimit, "Number of difficult words to list")
	return cmd
}

func newHeatmapCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show daily review activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive: %w", domain.ErrValidation)
			}
			cells, err := app.Stats.Activity(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHeatmap(cells))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", stats.DefaultHeatmapDays, "Number of days to show")
	return cmd
}
