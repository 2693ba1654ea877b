// Package tui provides a Bubble Tea terminal browser for generated
// catalogs.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/autoeq-catalog/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowse
	StateError
)

// visibleRows is how many catalog entries the list shows at once.
const visibleRows = 15

// Model is the Bubble Tea model for the catalog browser.
type Model struct {
	state       State
	catalogPath string
	catalog     *model.Catalog
	filtered    []model.Entry
	cursor      int
	offset      int
	search      textinput.Model
	spinner     spinner.Model
	err         error

	width  int
	height int
}

// NewModel creates a new browser model for the given catalog file.
func NewModel(catalogPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "type to search manufacturer or model"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:       StateLoading,
		catalogPath: catalogPath,
		search:      ti,
		spinner:     sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadCatalog())
}

// Message types
type (
	// LoadDoneMsg is sent when the catalog file has been read.
	LoadDoneMsg struct {
		Catalog *model.Catalog
		Err     error
	}
)

// loadCatalog reads the catalog file off the Bubble Tea event loop.
func (m Model) loadCatalog() tea.Cmd {
	path := m.catalogPath
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return LoadDoneMsg{Err: err}
		}
		defer f.Close()

		cat, err := model.ReadCatalog(f)
		if err != nil {
			return LoadDoneMsg{Err: fmt.Errorf("decoding %s: %w", path, err)}
		}
		return LoadDoneMsg{Catalog: cat}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateBrowse && m.search.Value() != "" {
				m.search.SetValue("")
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit

		case "q":
			if m.state == StateError {
				return m, tea.Quit
			}

		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
			return m, nil

		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+visibleRows {
					m.offset = m.cursor - visibleRows + 1
				}
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.catalog = msg.Catalog
			m.state = StateBrowse
			m.applyFilter()
		}
	}

	// Keystrokes not handled above feed the search input.
	if m.state == StateBrowse {
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		if m.search.Value() != before {
			m.applyFilter()
		}
	}

	return m, tea.Batch(cmds...)
}

// applyFilter recomputes the visible entries from the search query.
func (m *Model) applyFilter() {
	m.filtered = filterEntries(m.catalog.Entries, m.search.Value())
	m.cursor = 0
	m.offset = 0
}

// filterEntries returns the entries whose identity matches the query,
// case-insensitively, as a substring of "Manufacturer Model" or of the
// source name. An empty query matches everything.
func filterEntries(entries []model.Entry, query string) []model.Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	var out []model.Entry
	for _, e := range entries {
		name := strings.ToLower(e.Manufacturer + " " + e.Model)
		if strings.Contains(name, query) || strings.Contains(strings.ToLower(e.Source), query) {
			out = append(out, e)
		}
	}
	return out
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AutoEQ Catalog Browser"))
	b.WriteString("\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading " + m.catalogPath + "..."))
		b.WriteString("\n")

	case StateBrowse:
		b.WriteString(m.viewBrowse())

	case StateError:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d entries, generated %s",
		m.catalog.EntryCount, m.catalog.GeneratedAt)))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("No matches."))
		b.WriteString("\n")
	} else {
		end := m.offset + visibleRows
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		for i := m.offset; i < end; i++ {
			e := m.filtered[i]
			line := fmt.Sprintf("%s %s", e.Manufacturer, e.Model)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("  ")
			b.WriteString(sourceStyle.Render(fmt.Sprintf("[%s, %s]", e.Source, e.FormFactor)))
			b.WriteString("\n")
		}
		if end < len(m.filtered) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.filtered)-end)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(m.viewDetail(m.filtered[m.cursor]))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: select • esc: clear search / quit • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

// viewDetail renders the selected entry's profile.
func (m Model) viewDetail(e model.Entry) string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render(e.Manufacturer + " " + e.Model))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(e.ID))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Preamp: %.1f dB\n", e.Preamp))
	for i, f := range e.Filters {
		b.WriteString(fmt.Sprintf("%2d. %-9s  Fc %7.1f Hz  Gain %+5.1f dB  Q %.2f\n",
			i+1, f.Type, f.Freq, f.Gain, f.Q))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Run starts the browser over the given catalog file.
func Run(catalogPath string) error {
	p := tea.NewProgram(NewModel(catalogPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
