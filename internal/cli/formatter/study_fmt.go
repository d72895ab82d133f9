package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/lexibox/internal/contract"
)

// HintBullet stands in for each letter a hint has not revealed yet.
const HintBullet = "•"

// BlankSentence replaces every case-insensitive occurrence of word in
// sentence with a bracketed run of underscores, one per letter.
func BlankSentence(sentence, word string) string {
	if word == "" {
		return sentence
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
	blank := "[" + strings.Repeat("_", len([]rune(word))) + "]"
	return re.ReplaceAllLiteralString(sentence, blank)
}

// Hint reveals the first level letters of word and hides the rest.
// level is clamped to [0, len(word)].
func Hint(word string, level int) string {
	r := []rune(word)
	level = max(0, min(level, len(r)))
	return string(r[:level]) + strings.Repeat(HintBullet, len(r)-level)
}

// FormatPlan renders a study plan with its ranking reasons.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Study plan for %s", resp.Date.Format("Mon Jan 2"))))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Your vocabulary is empty. Add a word with `lexibox add`."))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range resp.Items {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s  %s\n",
			Bold(fmt.Sprintf("%2d.", i+1)),
			StyleFg.Render(item.Word),
			BoxIndicator(item.Box),
			DueLabel(item.NextReview, resp.Date),
			Dim(fmt.Sprintf("priority %.2f", item.Priority)),
		))
		for _, reason := range item.Reasons {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				StyleYellow.Render(fmt.Sprintf("×%.2f", reason.Value)),
				Dim(reason.Message),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Planned: %d", len(resp.Items))),
		StyleDim.Render("|"),
		Dim(fmt.Sprintf("Due: %d of %d words, target %d", resp.DueCount, resp.TotalWords, resp.Target)),
	))
	return b.String()
}

// FormatPrompt renders one study card: position, blanked sentence and note.
func FormatPrompt(item contract.PlanItem, index, total int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim(fmt.Sprintf("Word %d of %d", index+1, total)), BoxIndicator(item.Box)))
	b.WriteString(fmt.Sprintf("  %s\n", StyleFg.Render(BlankSentence(item.Sentence, item.Word))))
	if item.Note != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", Dim("Note:"), item.Note))
	}
	return b.String()
}

// FormatAnswerFeedback tells the learner whether the guess matched.
func FormatAnswerFeedback(correct bool, word string) string {
	if correct {
		return StyleGreen.Render("✔ Correct!") + "\n"
	}
	return StyleRed.Render("✖ Not quite.") + " " + Dim("The word was ") + Bold(word) + "\n"
}

// FormatSessionSummary renders the result of finishing a session.
func FormatSessionSummary(s *contract.SessionSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %-16s %d\n", Dim("Words reviewed:"), s.Reviewed))
	b.WriteString(fmt.Sprintf("  %-16s %d\n", Dim("Correct:"), s.Correct))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", Dim("Accuracy:"), FormatPercent(s.Accuracy())))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", Dim("XP earned:"), StylePurple.Render(fmt.Sprintf("+%d", s.XPEarned))))
	b.WriteString(fmt.Sprintf("  %-16s %d\n", Dim("Total XP:"), s.TotalXP))
	b.WriteString(fmt.Sprintf("  %-16s %s %s\n", Dim("Streak:"),
		StyleYellow.Render(Plural(s.CurrentStreak, "day", "days")),
		Dim(fmt.Sprintf("(best %d)", s.LongestStreak))))

	if len(s.Unlocked) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render("Achievements unlocked"))
		b.WriteString("\n")
		for _, a := range s.Unlocked {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("★"), a.Message))
		}
	}

	return RenderBox("Session complete", b.String())
}
