package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/importer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatFlag is a pflag.Value restricted to the export formats.
type formatFlag struct {
	format importer.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	if f.format == "" {
		return string(importer.FormatJSON)
	}
	return string(f.format)
}

func (f *formatFlag) Set(s string) error {
	format, err := importer.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatFlag) Type() string { return "format" }

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Import legacy JSON data from a directory, or words from a .csv or .xlsx file",
		Long: `Import merges data into the current store.

A directory is read as legacy data: vocab.json with optional progress.json
and stats.json. Entries missing scheduling fields are repaired; words that
already exist are skipped.

A .csv or .xlsx file is read as a word list with columns word, sentence and
note. The first row is a header and is always skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]
			out := cmd.OutOrStdout()

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			stop := startProgress(app, cmd, "Importing "+filepath.Base(path))
			if info.IsDir() {
				res, err := app.Import.ImportLegacy(ctx, path)
				stop()
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatImportSummary(res.Added, res.Skipped, res.Healed))
				if res.Progress {
					fmt.Fprintln(out, formatter.Dim("  Progress replaced from progress.json"))
				}
				if res.Stats {
					fmt.Fprintln(out, formatter.Dim("  Counters replaced from stats.json"))
				}
				app.logger().Info("legacy import finished", "dir", path, "added", res.Added, "skipped", len(res.Skipped))
				return nil
			}

			res, err := app.Import.ImportWords(ctx, path)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatImportSummary(res.Added, res.Rejected, nil))
			app.logger().Info("word import finished", "file", path, "added", res.Added, "rejected", len(res.Rejected))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	format := &formatFlag{format: importer.FormatJSON}

	cmd := &cobra.Command{
		Use:   "export DIR",
		Short: "Write vocab, progress and stats files in the legacy layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}

			stop := startProgress(app, cmd, "Exporting")
			files, err := app.Import.ExportLegacy(cmd.Context(), dir, format.format)
			stop()
			if err != nil {
				return err
			}

			names := make([]string, len(files))
			for i, f := range files {
				names[i] = filepath.Base(f)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %s to %s\n",
				formatter.StyleGreen.Render("✔"), strings.Join(names, ", "), dir)
			return nil
		},
	}

	cmd.Flags().Var(format, "format", "Output format: json or yaml")
	return cmd
}

// startProgress shows a spinner on stderr when running in a terminal.
func startProgress(app *App, cmd *cobra.Command, message string) func() {
	if !app.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
