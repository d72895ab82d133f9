package cli

import (
	"fmt"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add WORD SENTENCE",
		Short: "Add a word with an example sentence that contains it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Vocab.Add(cmd.Context(), args[0], args[1], note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(e.Word),
				formatter.Dim("(due "+domain.FormatDate(e.NextReview)+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Optional note or translation")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove WORD",
		Aliases: []string{"rm"},
		Short:   "Remove a word and its review history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := app.Vocab.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %q without --yes on a non-interactive terminal", e.Word)
				}
				ok, err := app.prompter().Confirm(fmt.Sprintf("Remove %q and its review history?", e.Word))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Vocab.Remove(ctx, e.Word); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.Bold(e.Word))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var sentence, note string

	cmd := &cobra.Command{
		Use:   "edit WORD",
		Short: "Change a word's sentence or note without touching its schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Vocab.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sentence") {
				sentence = current.Sentence
			}
			if !cmd.Flags().Changed("note") {
				note = current.Note
			}

			e, err := app.Vocab.Edit(ctx, current.Word, sentence, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.Bold(e.Word))
			return nil
		},
	}

	cmd.Flags().StringVar(&sentence, "sentence", "", "New example sentence")
	cmd.Flags().StringVar(&note, "note", "", "New note (empty clears it)")
	cmd.MarkFlagsOneRequired("sentence", "note")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show WORD",
		Short: "Show a word's schedule and recent answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Vocab.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntry(e, domain.Today()))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every word",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Vocab.All(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No words yet. Add one with `lexibox add WORD SENTENCE`."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntryList(entries, domain.Today()))
			return nil
		},
	}
}

func newDueCmd(app *App) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the words due for review today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if countOnly {
				n, err := app.Study.DueCount(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			words, err := app.Study.Due(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDueList(words))
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of due words")
	return cmd
}
