package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planetary/internal/highscore"
	"github.com/vovakirdan/planetary/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth  = 50 // Minimum table width
	recentSessions = 50 // Max sessions to load
)

// scoreboardView selects the table shown by the scoreboard.
type scoreboardView int

const (
	viewTopScores scoreboardView = iota
	viewHistory
)

func (v scoreboardView) title() string {
	if v == viewHistory {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing the top scores and,
// when a session history is available, past sessions and their statistics.
type ScoreboardModel struct {
	scores   highscore.Store
	history  *storage.Store
	views    []scoreboardView
	cursor   int
	top      []highscore.Entry
	sessions []storage.SessionRecord
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model. history may be nil.
func NewScoreboardModel(scores highscore.Store, history *storage.Store, width, height int) ScoreboardModel {
	views := []scoreboardView{viewTopScores}
	if history != nil {
		views = append(views, viewHistory)
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		scores:  scores,
		history: history,
		views:   views,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) view() scoreboardView {
	return m.views[m.cursor]
}

// load reads everything the views show. Failures are kept for View.
func (m *ScoreboardModel) load() {
	m.loadErr = nil
	if m.scores != nil {
		entries, err := m.scores.LoadTopScores()
		if err != nil {
			m.loadErr = err
		}
		m.top = highscore.NewTable(entries).Entries()
	}
	if m.history == nil {
		return
	}
	sessions, err := m.history.RecentSessions(recentSessions)
	if err != nil {
		m.loadErr = err
	}
	m.sessions = sessions
	stats, err := m.history.Stats()
	if err != nil {
		m.loadErr = err
	}
	m.stats = stats
}

// createTable creates a new table with the columns of the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.view() {
	case viewHistory:
		columns = []table.Column{
			{Title: "#", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Hits", Width: 6},
			{Title: "Outcome", Width: 10},
			{Title: "Level", Width: 8},
			{Title: "Date", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
		// Use spare width for the date column
		if extra := m.width - 4 - tableMinWidth; extra > 0 {
			columns[2].Width = min(columns[2].Width+extra, 24)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, stats, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data of the current view.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view() {
	case viewHistory:
		rows = make([]table.Row, len(m.sessions))
		for i, s := range m.sessions {
			rows[i] = table.Row{
				fmt.Sprintf("%d", s.ID),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Intercepts),
				string(s.Outcome),
				s.Difficulty,
				s.CreatedAt.Local().Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.top))
		for i, e := range m.top {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", e.Score),
				e.RecordedAt.Local().Format("Jan 02 2006 15:04"),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchView(step int) {
	n := len(m.views)
	m.cursor = ((m.cursor+step)%n + n) % n
	m.table = m.createTable()
	m.updateTableRows()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(m.view().title(), m.width)))
	b.WriteString("\n\n")

	if m.stats != nil {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statsStyle.Render(centerText(formatStats(m.stats), m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.loadErr.Error()))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.top) == 0
	if m.view() == viewHistory {
		empty = len(m.sessions) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nDefend the planet to set a high score!")
	}

	return m.table.View()
}

func formatStats(s *storage.Stats) string {
	if s.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("games %d · best %d · avg %.1f · intercepts %d · last %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.TotalIntercepts,
		s.LastPlayed.Local().Format("Jan 02 15:04"))
}

// centerText pads s with spaces to centre it in width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(scores highscore.Store, history *storage.Store, width, height int) error {
	model := NewScoreboardModel(scores, history, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// FormatScores renders the top scores and statistics as plain text for
// non-interactive output.
func FormatScores(entries []highscore.Entry, stats *storage.Stats) string {
	var b strings.Builder
	b.WriteString("HIGH SCORES\n")
	if len(entries) == 0 {
		b.WriteString("  no scores recorded yet\n")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "  #%d  %6d  %s\n", i+1, e.Score, e.RecordedAt.Local().Format("2006-01-02 15:04"))
	}
	if stats != nil {
		b.WriteString("\n")
		b.WriteString(formatStats(stats))
		b.WriteString("\n")
	}
	return b.String()
}
