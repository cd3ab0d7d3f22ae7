// Package historyui provides the Bubble Tea session history interface.
package historyui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tenff-dev/tenff/internal/model"
	"github.com/tenff-dev/tenff/internal/store"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea history UI.
type Model struct {
	store *store.Store
	last  int

	sessions []model.SessionRecord
	errMsg   string

	table  table.Model
	width  int
	height int
}

// NewModel constructs a history UI model. last limits the table to the
// most recent N sessions when positive.
func NewModel(st *store.Store, last int) *Model {
	m := &Model{store: st, last: last}
	m.loadSessions()
	m.initTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg) + "\n"
	}
	if len(m.sessions) == 0 {
		return headerStyle.Render("No sessions recorded yet. Play a game first.") + "\n"
	}
	cards := m.renderCards()
	help := headerStyle.Render("↑/↓ scroll · g/G top/bottom · q quit")
	return cards + "\n" + m.table.View() + "\n" + help
}

func (m *Model) loadSessions() {
	sessions, err := m.store.ListSessions(context.Background())
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	if m.last > 0 && len(sessions) > m.last {
		sessions = sessions[len(sessions)-m.last:]
	}
	m.sessions = sessions
}

func (m *Model) initTable() {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Corpus", Width: 14},
		{Title: "Time", Width: 5},
		{Title: "WPM", Width: 6},
		{Title: "Accuracy", Width: 8},
		{Title: "Words +/-", Width: 10},
	}
	rows := make([]table.Row, 0, len(m.sessions))
	for i := len(m.sessions) - 1; i >= 0; i-- {
		rows = append(rows, sessionRow(m.sessions[i]))
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

func (m *Model) resizeTable() {
	if m.height <= 0 {
		return
	}
	height := m.height - 6
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
}

func (m *Model) renderCards() string {
	var bestWPM, totalWPM, totalAcc float64
	for _, rec := range m.sessions {
		wpm := sessionWPM(rec)
		totalWPM += wpm
		totalAcc += sessionAccuracy(rec)
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(m.sessions))
	cards := []string{
		renderCard("Sessions", fmt.Sprintf("%d", len(m.sessions))),
		renderCard("Avg WPM", fmt.Sprintf("%.1f", totalWPM/count)),
		renderCard("Best WPM", fmt.Sprintf("%.1f", bestWPM)),
		renderCard("Avg Accuracy", fmt.Sprintf("%.1f%%", totalAcc/count*100)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title, value string) string {
	content := cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value)
	return cardStyle.Render(content)
}

func sessionRow(rec model.SessionRecord) table.Row {
	return table.Row{
		rec.EndedAt.Local().Format("2006-01-02 15:04"),
		rec.Corpus,
		fmt.Sprintf("%ds", rec.TimeLimitSec),
		fmt.Sprintf("%.1f", sessionWPM(rec)),
		fmt.Sprintf("%.1f%%", sessionAccuracy(rec)*100),
		fmt.Sprintf("%d/%d", rec.CorrectWords, rec.WrongWords),
	}
}

// sessionWPM derives words per minute from correct characters over the
// session duration, using the conventional 5-character word.
func sessionWPM(rec model.SessionRecord) float64 {
	if rec.DurationMs <= 0 {
		return 0
	}
	cps := float64(rec.CorrectChars) / (float64(rec.DurationMs) / 1000.0)
	return cps * 60 / 5
}

func sessionAccuracy(rec model.SessionRecord) float64 {
	if rec.KeysPressed <= 0 {
		return 1
	}
	return float64(rec.CorrectChars) / float64(rec.KeysPressed)
}
