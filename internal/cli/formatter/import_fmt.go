package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/lexibox/internal/importer"
)

// FormatImportSummary renders the outcome of a legacy or spreadsheet
// import. healed maps words to the fields that were filled or repaired.
func FormatImportSummary(added int, problems []importer.RowError, healed map[string][]string) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render(fmt.Sprintf("✔ Imported %s", Plural(added, "word", "words"))))
	b.WriteString("\n")

	if len(healed) > 0 {
		words := make([]string, 0, len(healed))
		for w := range healed {
			words = append(words, w)
		}
		sort.Strings(words)

		b.WriteString(StyleYellow.Render(fmt.Sprintf("  Repaired %s:", Plural(len(words), "entry", "entries"))))
		b.WriteString("\n")
		for _, w := range words {
			b.WriteString(fmt.Sprintf("    %s %s\n", w, Dim(strings.Join(healed[w], ", "))))
		}
	}

	if len(problems) > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  Skipped %s:", Plural(len(problems), "row", "rows"))))
		b.WriteString("\n")
		for _, p := range problems {
			b.WriteString(fmt.Sprintf("    %s\n", Dim(p.Error())))
		}
	}
	return b.String()
}
