package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bakery-catch/internal/storage"
)

// maxHistory is the number of rounds loaded into the history table.
const maxHistory = 50

// historyView shows the rounds finished in this session.
type historyView struct {
	store  *storage.Store
	gameID string
	rounds []storage.Round
	stats  storage.SessionStats
	table  table.Model
	width  int
	height int
}

func newHistoryView(store *storage.Store, gameID string, width, height int) historyView {
	h := historyView{store: store, gameID: gameID, width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table sized to the view.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Caught", Width: 7},
		{Title: "Burnt", Width: 6},
		{Title: "Rocks", Width: 6},
		{Title: "Dropped", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, h.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload queries the ledger and refreshes the rows.
func (h *historyView) reload() error {
	if h.store == nil {
		h.rounds = nil
		h.updateTableRows()
		return nil
	}

	rounds, err := h.store.Rounds(h.gameID, maxHistory)
	if err != nil {
		return err
	}
	stats, err := h.store.Stats(h.gameID)
	if err != nil {
		return err
	}
	h.rounds = rounds
	h.stats = stats
	h.updateTableRows()
	return nil
}

func (h *historyView) updateTableRows() {
	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Number),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Caught),
			fmt.Sprintf("%d", r.Burnt),
			fmt.Sprintf("%d", r.Rocks),
			fmt.Sprintf("%d", r.Dropped),
			fmt.Sprintf("%.0fs", r.Duration().Seconds()),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

func (h historyView) update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h historyView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("THIS SESSION", h.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(h.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No rounds finished yet.\nCatch some bread!")), h.width))
		return b.String()
	}

	b.WriteString(centerText(boxStyle.Render(h.table.View()), h.width))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d rounds  best %d  average %.1f  caught %d",
		h.stats.Rounds, h.stats.Best, h.stats.AvgScore, h.stats.TotalCaught)
	b.WriteString(centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(summary), h.width))
	return b.String()
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
