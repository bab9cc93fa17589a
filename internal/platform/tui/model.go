// Package tui provides the Bubble Tea presentation layer for the
// stroop game: menu, play view, results, records, and the SSH server.
// All game logic lives in internal/game; this package only delivers
// events to the session and redraws from its snapshots.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stroop/internal/config"
	"github.com/vovakirdan/stroop/internal/game"
	"github.com/vovakirdan/stroop/internal/storage"
)

// view selects which screen the model renders.
type view int

const (
	viewMenu view = iota
	viewPlaying
	viewFinished
	viewRecords
)

// feedbackMsg fires when the answer-feedback window elapses. It carries
// the session generation it was scheduled against; a stale message from
// an earlier session is dropped.
type feedbackMsg struct {
	generation uint64
}

// secondMsg is the one-second countdown tick for timed mode, guarded
// the same way.
type secondMsg struct {
	generation uint64
}

func feedbackCmd(delay time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackMsg{generation: generation}
	})
}

func secondCmd(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return secondMsg{generation: generation}
	})
}

// Model is the Bubble Tea model for a stroop session.
type Model struct {
	session *game.Session
	store   *storage.Store
	keys    KeyMap
	help    help.Model

	view       view
	width      int
	height     int
	cursor     int
	lastResult *game.Result
	records    *recordsModel
	quitting   bool
	initCmd    tea.Cmd
}

// NewModel builds a model around a fresh session. The store may be nil;
// when present it seeds the best-record table and journals results.
func NewModel(cfg config.GameConfig, store *storage.Store, seed int64) Model {
	session := game.NewSession(cfg.SessionConfig(seed))
	if store != nil {
		if stored, err := store.BestRecords(); err == nil {
			for _, mode := range game.AllModes {
				if rec, ok := stored.Best(mode); ok {
					session.Records().Seed(mode, rec)
				}
			}
		}
	}
	return Model{
		session: session,
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// StartIn puts the model directly into a game, skipping the menu.
func (m Model) StartIn(mode game.Mode) (Model, tea.Cmd) {
	return m.startGame(mode)
}

// Init implements tea.Model. It fires the deferred start command when
// the model was built to skip the menu.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.records != nil {
			m.records.resize(msg.Width, msg.Height)
		}
		return m, nil

	case feedbackMsg:
		return m.handleFeedback(msg)

	case secondMsg:
		return m.handleSecond(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere except while answer keys are live, where q
	// still quits but r/g/b/y mean colors.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.view {
	case viewMenu:
		return m.handleMenuKey(msg)
	case viewPlaying:
		return m.handlePlayKey(msg)
	case viewFinished:
		return m.handleFinishedKey(msg)
	case viewRecords:
		return m.handleRecordsKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(game.AllModes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.startGame(game.AllModes[m.cursor])
	case key.Matches(msg, m.keys.Records):
		return m.openRecords()
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		snap := m.session.Snapshot()
		if snap.Mode == game.ModeEndless {
			// Endless ends only on explicit exit; record the run.
			if result := m.session.End(); result != nil {
				return m.finishGame(result)
			}
			return m, nil
		}
		// Abandoning classic/timed mid-run does not count.
		m.session.Reset()
		m.view = viewMenu
		return m, nil
	}

	answer, ok := m.keys.Answer(msg)
	if !ok {
		return m, nil
	}
	res := m.session.Submit(answer)
	if !res.Accepted {
		return m, nil
	}
	return m, feedbackCmd(m.session.FeedbackDelay(), m.session.Snapshot().Generation)
}

func (m Model) handleFinishedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Replay):
		if m.lastResult != nil {
			return m.startGame(m.lastResult.Mode)
		}
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
		m.session.Reset()
		m.view = viewMenu
	case key.Matches(msg, m.keys.Records):
		return m.openRecords()
	}
	return m, nil
}

func (m Model) handleRecordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Back) {
		m.view = viewMenu
		m.records = nil
		return m, nil
	}
	if m.records != nil {
		m.records.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleFeedback(msg feedbackMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.session.Snapshot().Generation {
		return m, nil
	}
	if result := m.session.AdvanceRound(); result != nil {
		return m.finishGame(result)
	}
	return m, nil
}

func (m Model) handleSecond(msg secondMsg) (tea.Model, tea.Cmd) {
	snap := m.session.Snapshot()
	// A tick scheduled against an ended or replaced session must not
	// fire into the current one.
	if msg.generation != snap.Generation {
		return m, nil
	}
	if snap.Phase != game.PhasePlaying || snap.Mode != game.ModeTimed {
		return m, nil
	}
	if result := m.session.TickSecond(); result != nil {
		return m.finishGame(result)
	}
	return m, secondCmd(msg.generation)
}

func (m Model) startGame(mode game.Mode) (Model, tea.Cmd) {
	if !m.session.Start(mode) {
		return m, nil
	}
	m.view = viewPlaying
	m.lastResult = nil
	if mode == game.ModeTimed {
		return m, secondCmd(m.session.Snapshot().Generation)
	}
	return m, nil
}

func (m Model) finishGame(result *game.Result) (Model, tea.Cmd) {
	m.lastResult = result
	m.view = viewFinished
	if m.store != nil {
		//nolint:errcheck // Best-effort save, the session result stays on screen regardless
		m.store.SaveResult(*result)
	}
	return m, nil
}

func (m Model) openRecords() (Model, tea.Cmd) {
	rm := newRecordsModel(m.store, m.session.Records(), m.width, m.height)
	m.records = &rm
	m.view = viewRecords
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewPlaying:
		return m.viewPlay()
	case viewFinished:
		return m.viewFinished()
	case viewRecords:
		if m.records != nil {
			return m.records.view()
		}
		return ""
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerLine(titleStyle.Render("S T R O O P"), m.width))
	b.WriteString("\n")
	b.WriteString(centerLine(subtitleStyle.Render("Name the ink color, not the word"), m.width))
	b.WriteString("\n\n")

	for i, mode := range game.AllModes {
		marker := "  "
		line := fmt.Sprintf("%-8s  %s", mode.Title(), modeHint(mode))
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		entry := marker + line
		if rec, ok := m.session.Records().Best(mode); ok {
			entry += subtitleStyle.Render(fmt.Sprintf("   best %d (%.0f%%)", rec.Score, rec.Accuracy))
		}
		b.WriteString(centerLine(entry, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(m.help.View(m.keys), m.width))
	return b.String()
}

func modeHint(mode game.Mode) string {
	switch mode {
	case game.ModeClassic:
		return "fixed set of rounds"
	case game.ModeTimed:
		return "beat the clock"
	case game.ModeEndless:
		return "play until you stop"
	default:
		return ""
	}
}

func (m Model) viewPlay() string {
	snap := m.session.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerLine(m.statusLine(snap), m.width))
	b.WriteString("\n\n\n")

	if snap.HasRound {
		word := inkStyle(snap.Round.Ink).Render(snap.Round.Word.String())
		b.WriteString(centerLine(word, m.width))
	}
	b.WriteString("\n\n")

	switch snap.Feedback {
	case game.FeedbackCorrect:
		b.WriteString(centerLine(correctStyle.Render("✓ correct"), m.width))
	case game.FeedbackWrong:
		b.WriteString(centerLine(wrongStyle.Render("✗ wrong"), m.width))
	default:
		b.WriteString(centerLine(" ", m.width))
	}
	b.WriteString("\n\n")

	hints := make([]string, 0, len(game.Palette))
	for _, c := range game.Palette {
		hints = append(hints, keyHintStyles[c].Render(answerHint(c)))
	}
	b.WriteString(centerLine(strings.Join(hints, "   "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(helpStyle.Render("esc back · q quit"), m.width))
	return b.String()
}

func answerHint(c game.ColorName) string {
	switch c {
	case game.Red:
		return "[r] red"
	case game.Green:
		return "[g] green"
	case game.Blue:
		return "[b] blue"
	case game.Yellow:
		return "[y] yellow"
	default:
		return ""
	}
}

func (m Model) statusLine(snap game.Snapshot) string {
	score := fmt.Sprintf("%s %s", statLabelStyle.Render("score"),
		statValueStyle.Render(fmt.Sprintf("%d/%d", snap.Stats.Correct, snap.Stats.Total)))

	var budget string
	switch snap.Mode {
	case game.ModeClassic:
		budget = fmt.Sprintf("%s %s", statLabelStyle.Render("rounds left"),
			statValueStyle.Render(fmt.Sprintf("%d", snap.RoundsLeft)))
	case game.ModeTimed:
		budget = fmt.Sprintf("%s %s", statLabelStyle.Render("time left"),
			statValueStyle.Render(fmt.Sprintf("%ds", snap.TimeLeft)))
	case game.ModeEndless:
		budget = fmt.Sprintf("%s %s", statLabelStyle.Render("round"),
			statValueStyle.Render(fmt.Sprintf("%d", snap.Stats.Total+1)))
	}

	avg := ""
	if snap.Stats.Total > 0 {
		avg = fmt.Sprintf("   %s %s", statLabelStyle.Render("avg"),
			statValueStyle.Render(formatReaction(snap.Stats.AvgReaction)))
	}

	return fmt.Sprintf("%s   %s   %s%s",
		titleStyle.Render(snap.Mode.Title()), budget, score, avg)
}

func (m Model) viewFinished() string {
	res := m.lastResult
	if res == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerLine(titleStyle.Render("Session over — "+res.Mode.Title()), m.width))
	b.WriteString("\n\n")

	if res.Improved {
		b.WriteString(centerLine(recordToastStyle.Render(fmt.Sprintf("NEW RECORD: %d", res.Record.Score)), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerLine(statRow("score", fmt.Sprintf("%d of %d", res.Score, res.Total)), m.width))
	b.WriteString("\n")
	if res.Total > 0 {
		b.WriteString(centerLine(statRow("accuracy", fmt.Sprintf("%.1f%%", res.Accuracy)), m.width))
		b.WriteString("\n")
		b.WriteString(centerLine(statRow("avg reaction", formatReaction(res.AvgReaction)), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(centerLine(subtitleStyle.Render("no answers recorded"), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(helpStyle.Render("r play again · esc menu · tab records · q quit"), m.width))
	return b.String()
}

func statRow(label, value string) string {
	return fmt.Sprintf("%s  %s", statLabelStyle.Render(fmt.Sprintf("%12s", label)), statValueStyle.Render(value))
}

func formatReaction(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// Run starts the Bubble Tea program. When startMode is non-empty the
// menu is skipped and the game starts immediately in that mode. The
// width and height seed the layout until the first resize message.
func Run(cfg config.GameConfig, store *storage.Store, seed int64, startMode game.Mode, width, height int) error {
	model := NewModel(cfg, store, seed)
	if width > 0 && height > 0 {
		model.width = width
		model.height = height
	}

	if startMode != "" {
		started, cmd := model.StartIn(startMode)
		started.initCmd = cmd
		model = started
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
