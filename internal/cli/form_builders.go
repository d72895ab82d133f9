package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned by a Prompter when the learner quits a prompt.
var ErrAborted = errors.New("aborted")

// Prompter collects the learner's input during study and quiz.
type Prompter interface {
	Answer(title string) (string, error)
	Rating(word string, suggested domain.Rating) (domain.Rating, error)
	Confirm(title string) (bool, error)
}

// lexiboxHuhTheme returns a huh theme matching the formatter palette.
func lexiboxHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func singleFieldForm(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(lexiboxHuhTheme()).WithShowHelp(false)
}

// answerInput returns a huh.Input for guessing the blanked word.
func answerInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("type the missing word, or leave blank for a hint").
		Value(value)
}

// ratingOptions lists every rating, the suggested one first.
func ratingOptions(suggested domain.Rating) []huh.Option[domain.Rating] {
	opts := []huh.Option[domain.Rating]{ratingOption(suggested)}
	for r := domain.RatingAgain; r <= domain.RatingEasy; r++ {
		if r != suggested {
			opts = append(opts, ratingOption(r))
		}
	}
	return opts
}

func ratingOption(r domain.Rating) huh.Option[domain.Rating] {
	return huh.NewOption(fmt.Sprintf("%d  %s", int(r), r), r)
}

// ratingSelect returns a huh.Select for the 1-4 recall rating.
func ratingSelect(word string, suggested domain.Rating, value *domain.Rating) *huh.Select[domain.Rating] {
	*value = suggested
	return huh.NewSelect[domain.Rating]().
		Title(fmt.Sprintf("How well did you recall %q?", word)).
		Options(ratingOptions(suggested)...).
		Value(value)
}

// confirmInput returns a yes/no huh.Confirm defaulting to no.
func confirmInput(title string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}

// parseRatingArg accepts an integer from 1 to 4.
func parseRatingArg(s string) (domain.Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("rating %q is not a number: %w", s, domain.ErrInvalidRating)
	}
	return domain.ParseRating(n)
}

// huhPrompter asks through huh forms on the terminal.
type huhPrompter struct{}

func (huhPrompter) Answer(title string) (string, error) {
	var value string
	if err := runForm(singleFieldForm(answerInput(title, &value))); err != nil {
		return "", err
	}
	return value, nil
}

func (huhPrompter) Rating(word string, suggested domain.Rating) (domain.Rating, error) {
	var value domain.Rating
	if err := runForm(singleFieldForm(ratingSelect(word, suggested, &value))); err != nil {
		return 0, err
	}
	return value, nil
}

func (huhPrompter) Confirm(title string) (bool, error) {
	var value bool
	if err := runForm(singleFieldForm(confirmInput(title, &value))); err != nil {
		return false, err
	}
	return value, nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
