package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	bar, style := progressBar(pct, width)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCountBar renders a bar scaled against max followed by the count,
// as used by the box distribution.
func RenderCountBar(n, max, width int) string {
	pct := 0.0
	if max > 0 {
		pct = float64(n) / float64(max)
	}
	bar, _ := progressBar(pct, width)
	return fmt.Sprintf("%s %d", StyleBlue.Render(bar), n)
}

func progressBar(pct float64, width int) (string, lipgloss.Style) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return bar, style
}
