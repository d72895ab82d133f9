package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// FormatEntryList renders the vocabulary as a table in stored order.
func FormatEntryList(entries []*domain.VocabEntry, today time.Time) string {
	headers := []string{"WORD", "BOX", "NEXT REVIEW", "REVIEWS", "ACCURACY", "SENTENCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		acc := Dim("--")
		if !e.IsNew() {
			acc = FormatPercent(e.Accuracy() * 100)
		}
		rows = append(rows, []string{
			Bold(e.Word),
			BoxColor(e.Box).Render(fmt.Sprintf("%d", e.Box)),
			DueLabel(e.NextReview, today),
			fmt.Sprintf("%d", e.TimesReviewed),
			acc,
			Dim(Truncate(e.Sentence, 48)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(Plural(len(entries), "word", "words")))
	b.WriteString("\n")
	return b.String()
}

// FormatEntry renders every field of one entry.
func FormatEntry(e *domain.VocabEntry, today time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", StyleBold.Render(e.Word), BoxIndicator(e.Box)))
	b.WriteString(fmt.Sprintf("  %s\n", StyleFg.Render(e.Sentence)))
	if e.Note != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Note:"), e.Note))
	}
	b.WriteString("\n")

	last := Dim("never")
	if e.LastReviewed != nil {
		last = RelativeDay(*e.LastReviewed, today)
	}
	b.WriteString(fmt.Sprintf("  %-14s %s (%s)\n", Dim("Next review:"), DueLabel(e.NextReview, today), domain.FormatDate(e.NextReview)))
	b.WriteString(fmt.Sprintf("  %-14s %s\n", Dim("Last review:"), last))
	b.WriteString(fmt.Sprintf("  %-14s %.2f\n", Dim("Ease:"), e.Ease))
	b.WriteString(fmt.Sprintf("  %-14s %s\n", Dim("Interval:"), Plural(e.Interval, "day", "days")))

	acc := Dim("--")
	if !e.IsNew() {
		acc = FormatPercent(e.Accuracy() * 100)
	}
	b.WriteString(fmt.Sprintf("  %-14s %d/%d  %s\n", Dim("Correct:"), e.TimesCorrect, e.TimesReviewed, acc))

	if recent := e.RecentHistory(domain.RecentHistoryLen); len(recent) > 0 {
		marks := make([]string, len(recent))
		for i, h := range recent {
			if h.Correct {
				marks[i] = StyleGreen.Render("✔")
			} else {
				marks[i] = StyleRed.Render("✖")
			}
		}
		b.WriteString(fmt.Sprintf("  %-14s %s\n", Dim("Recent:"), strings.Join(marks, " ")))
	}

	return RenderBox("Word", b.String())
}

// FormatDueList renders the words due today.
func FormatDueList(words []string) string {
	if len(words) == 0 {
		return Dim("Nothing due today.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Due today (%d)", len(words))))
	b.WriteString("\n")
	for _, w := range words {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("•"), w))
	}
	return b.String()
}
