package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/stats"
)

// HeatmapColumns is the number of day cells per heatmap row.
const HeatmapColumns = 12

// FormatStats renders the statistics dashboard.
func FormatStats(resp *contract.StatsResponse) string {
	s := resp.Summary
	var b strings.Builder

	b.WriteString(Header("Overview"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-18s %d\n", Dim("Words:"), s.TotalWords))
	b.WriteString(fmt.Sprintf("  %-18s %d\n", Dim("Due today:"), s.DueToday))
	b.WriteString(fmt.Sprintf("  %-18s %d\n", Dim("Reviews:"), s.TotalReviews))
	b.WriteString(fmt.Sprintf("  %-18s %s\n", Dim("Overall accuracy:"), FormatPercent(s.OverallAccuracy)))
	b.WriteString(fmt.Sprintf("  %-18s %d added, %d removed\n", Dim("Lifetime:"), resp.Counters.WordsAdded, resp.Counters.WordsRemoved))
	if resp.Counters.QuizAttempts > 0 {
		b.WriteString(fmt.Sprintf("  %-18s %d/%d  %s\n", Dim("Quiz:"),
			resp.Counters.QuizCorrect, resp.Counters.QuizAttempts, FormatPercent(resp.Counters.QuizAccuracy())))
	}
	b.WriteString("\n")

	b.WriteString(Header("Boxes"))
	b.WriteString("\n")
	b.WriteString(FormatBoxDistribution(s.Boxes))
	b.WriteString("\n")

	b.WriteString(Header("Difficult words"))
	b.WriteString("\n")
	b.WriteString(FormatDifficultWords(s.Difficult))

	return b.String()
}

// FormatBoxDistribution renders one bar per box, scaled to the fullest box.
func FormatBoxDistribution(boxes map[int]int) string {
	most := 0
	for _, n := range boxes {
		most = max(most, n)
	}
	var b strings.Builder
	for box := domain.MinBox; box <= domain.MaxBox; box++ {
		b.WriteString(fmt.Sprintf("  %s  %s\n", BoxColor(box).Render(fmt.Sprintf("Box %d", box)), RenderCountBar(boxes[box], most, 20)))
	}
	return b.String()
}

func FormatDifficultWords(words []stats.DifficultWord) string {
	if len(words) == 0 {
		return Dim(fmt.Sprintf("  No word has %d or more reviews yet.", stats.MinReviewsForDifficulty)) + "\n"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(fmt.Sprintf("  %s %s: %s error rate %s\n",
			StyleRed.Render("•"), w.Word,
			StyleRed.Render(fmt.Sprintf("%.0f%%", w.ErrorRate*100)),
			Dim(fmt.Sprintf("(%d reviews)", w.Reviewed))))
	}
	return b.String()
}

// HeatCell returns the shade for a day's review count.
func HeatCell(reviews int) string {
	switch {
	case reviews <= 0:
		return StyleDim.Render("·")
	case reviews < 10:
		return StyleBlue.Render("░")
	case reviews < 25:
		return StyleGreen.Render("▒")
	case reviews < 50:
		return StyleGreen.Render("▓")
	default:
		return StyleYellow.Render("█")
	}
}

// FormatHeatmap renders activity cells oldest first, HeatmapColumns per row.
func FormatHeatmap(cells []stats.ActivityDay) string {
	var b strings.Builder
	if len(cells) == 0 {
		return Dim("No days to show.") + "\n"
	}

	first, last := cells[0].Date, cells[len(cells)-1].Date
	b.WriteString(Header(fmt.Sprintf("Last %d days", len(cells))))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s to %s", domain.FormatDate(first), domain.FormatDate(last))))
	b.WriteString("\n\n")

	for i, c := range cells {
		if i%HeatmapColumns == 0 {
			b.WriteString("  ")
		}
		b.WriteString(HeatCell(c.Reviews))
		if i%HeatmapColumns == HeatmapColumns-1 || i == len(cells)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	total := 0
	for _, c := range cells {
		total += c.Reviews
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s %s %s %s  %s\n",
		HeatCell(0), HeatCell(1), HeatCell(10), HeatCell(25), HeatCell(50),
		Dim(fmt.Sprintf("%d active days, %d reviews", stats.ActiveDays(cells), total))))
	return b.String()
}

// FormatProgress renders streak, XP, today's goal and achievements.
func FormatProgress(p *domain.ProgressState, dailyTarget int) string {
	var b strings.Builder

	last := Dim("never")
	if p.LastStudyDate != nil {
		last = domain.FormatDate(*p.LastStudyDate)
	}
	b.WriteString(fmt.Sprintf("  %-16s %s %s\n", Dim("Streak:"),
		StyleYellow.Render(Plural(p.CurrentStreak, "day", "days")), Dim(fmt.Sprintf("(best %d)", p.LongestStreak))))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", Dim("Last studied:"), last))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", Dim("XP:"), StylePurple.Render(fmt.Sprintf("%d", p.XP))))
	b.WriteString(fmt.Sprintf("  %-16s %d\n", Dim("Total reviews:"), p.TotalReviews))

	if dailyTarget > 0 {
		pct := float64(p.StudiedToday) / float64(dailyTarget)
		b.WriteString(fmt.Sprintf("  %-16s %s %s\n", Dim("Today's goal:"), RenderProgress(pct, 20),
			Dim(fmt.Sprintf("%d/%d", p.StudiedToday, dailyTarget))))
	}

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Achievements"))
	b.WriteString("\n")
	for _, a := range domain.AchievementTable {
		if p.HasAchievement(a.ID) {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("★"), a.Message))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("☆"), Dim(a.Message)))
		}
	}

	return RenderBox("Progress", b.String())
}

// FormatSessionHistory renders finished sessions, newest first.
func FormatSessionHistory(sessions []*domain.StudySession) string {
	if len(sessions) == 0 {
		return Dim("No sessions yet. Finish one with `lexibox finish` or `lexibox study`.") + "\n"
	}
	headers := []string{"DATE", "REVIEWED", "CORRECT", "ACCURACY", "XP"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		acc := Dim("--")
		if s.Reviewed > 0 {
			acc = FormatPercent(float64(s.Correct) / float64(s.Reviewed) * 100)
		}
		rows = append(rows, []string{
			domain.FormatDate(s.Date),
			fmt.Sprintf("%d", s.Reviewed),
			fmt.Sprintf("%d", s.Correct),
			acc,
			fmt.Sprintf("%d", s.XPEarned),
		})
	}
	return RenderTable(headers, rows)
}
