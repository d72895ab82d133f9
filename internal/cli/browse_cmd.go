package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/cli/formatter"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the vocabulary in a full-screen list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; use list instead")
			}
			entries, err := app.Vocab.All(cmd.Context())
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(entries, domain.Today()),
				tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Clear, k.Quit}
}

// browseModel lists entries on the left and the selected entry's detail on
// the right. Filtering matches word or sentence, ignoring case.
type browseModel struct {
	entries   []*domain.VocabEntry
	visible   []*domain.VocabEntry
	cursor    int
	today     time.Time
	filter    textinput.Model
	filtering bool
	keys      browseKeyMap
	help      help.Model
	height    int
}

func newBrowseModel(entries []*domain.VocabEntry, today time.Time) *browseModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	return &browseModel{
		entries: entries,
		visible: entries,
		today:   today,
		filter:  ti,
		keys:    defaultBrowseKeys(),
		help:    help.New(),
		height:  20,
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 3)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.filtering = false
				m.filter.Blur()
				return m, nil
			case tea.KeyEsc:
				m.clearFilter()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.filter.Focus()
		case key.Matches(msg, m.keys.Clear):
			m.clearFilter()
		}
	}
	return m, nil
}

func (m *browseModel) clearFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.applyFilter()
}

func (m *browseModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.visible = m.entries
	} else {
		m.visible = m.visible[:0:0]
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Word), q) || strings.Contains(strings.ToLower(e.Sentence), q) {
				m.visible = append(m.visible, e)
			}
		}
	}
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
}

// selected returns the entry under the cursor, nil when nothing matches.
func (m *browseModel) selected() *domain.VocabEntry {
	if len(m.visible) == 0 {
		return nil
	}
	return m.visible[m.cursor]
}

func (m *browseModel) View() string {
	var list strings.Builder
	list.WriteString(formatter.Header(fmt.Sprintf("Words (%d/%d)", len(m.visible), len(m.entries))))
	list.WriteString("\n")

	if len(m.visible) == 0 {
		list.WriteString(formatter.Dim("No matching words."))
		list.WriteString("\n")
	}
	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	for i := start; i < len(m.visible) && i < start+m.height; i++ {
		e := m.visible[i]
		marker := "  "
		word := formatter.StyleFg.Render(e.Word)
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			word = formatter.Bold(e.Word)
		}
		list.WriteString(fmt.Sprintf("%s%s %s\n", marker, word, formatter.Dim(formatter.RelativeDay(e.NextReview, m.today))))
	}

	body := list.String()
	if e := m.selected(); e != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", formatter.FormatEntry(e, m.today))
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}
