package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stroop/internal/game"
	"github.com/vovakirdan/stroop/internal/storage"
)

const maxHistoryRows = 50

// recordsKeyMap defines bindings for the records screen.
type recordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k recordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k recordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

func defaultRecordsKeyMap() recordsKeyMap {
	return recordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// recordsModel renders best records and session history per mode.
type recordsModel struct {
	store   *storage.Store
	records game.Records
	keys    recordsKeyMap
	help    help.Model
	table   table.Model
	mode    int // index into game.AllModes
	width   int
	height  int
}

func newRecordsModel(store *storage.Store, records game.Records, width, height int) recordsModel {
	m := recordsModel{
		store:   store,
		records: records,
		keys:    defaultRecordsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.buildTable()
	return m
}

func (m *recordsModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Avg", Width: 8},
		{Title: "Played", Width: 17},
	}

	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.TopSessions(game.AllModes[m.mode], maxHistoryRows)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", e.Score),
					fmt.Sprintf("%.1f%%", e.Accuracy),
					fmt.Sprintf("%dms", e.AvgReactionMs),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}

	tableHeight := m.height - 10
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("15"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("14"))
	t.SetStyles(styles)
	return t
}

func (m *recordsModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.buildTable()
}

func (m *recordsModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.NextMode):
		m.mode = (m.mode + 1) % len(game.AllModes)
		m.table = m.buildTable()
	case key.Matches(msg, m.keys.PrevMode):
		m.mode = (m.mode - 1 + len(game.AllModes)) % len(game.AllModes)
		m.table = m.buildTable()
	default:
		m.table, _ = m.table.Update(msg)
	}
}

func (m *recordsModel) view() string {
	mode := game.AllModes[m.mode]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerLine(titleStyle.Render("Records — "+mode.Title()), m.width))
	b.WriteString("\n\n")

	if rec, ok := m.records.Best(mode); ok {
		best := fmt.Sprintf("best %d · %.1f%% · %dms avg",
			rec.Score, rec.Accuracy, rec.AvgReaction.Milliseconds())
		b.WriteString(centerLine(recordToastStyle.Render(best), m.width))
	} else {
		b.WriteString(centerLine(subtitleStyle.Render("no completed sessions yet"), m.width))
	}
	b.WriteString("\n\n")

	if m.store == nil {
		b.WriteString(centerLine(subtitleStyle.Render("history unavailable (no database)"), m.width))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")
	b.WriteString(centerLine(m.help.View(m.keys), m.width))
	return b.String()
}
