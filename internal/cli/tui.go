package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
	"github.com/mcoot/pegsolitaire-go/internal/services/hint"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play a game locally in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			session := newLocalSession(engine.New(logger), hint.Strategies(random.New()))

			p := tea.NewProgram(newTUIModel(session),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}

// tuiKeyMap holds the key bindings for the terminal UI
type tuiKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Click   key.Binding
	Undo    key.Binding
	Restart key.Binding
	Hint    key.Binding
	Quit    key.Binding
}

var tuiKeys = tuiKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Click:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/jump")),
	Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Hint:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func (k tuiKeyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Click, k.Undo, k.Restart, k.Hint, k.Quit}
}

var (
	tuiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	tuiBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5A2B")).
			Padding(0, 2)
	tuiPegStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#D2691E"))
	tuiEmptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00BFFF"))
	tuiHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	tuiCursorStyle   = lipgloss.NewStyle().Reverse(true)
	tuiWinStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	tuiLoseStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4500"))
	tuiHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// tuiModel is the bubbletea model wrapping a local session
type tuiModel struct {
	session       *localSession
	keys          tuiKeyMap
	cursor        model.Position
	hint          *model.Move
	status        string
	width, height int
}

func newTUIModel(session *localSession) tuiModel {
	return tuiModel{
		session: session,
		keys:    tuiKeys,
		status:  "Pick a peg to jump.",
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor.Row > 0 {
				m.cursor.Row--
				m.cursor.Col = min(m.cursor.Col, m.cursor.Row)
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor.Row < model.BoardRows-1 {
				m.cursor.Row++
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor.Col < m.cursor.Row {
				m.cursor.Col++
			}
		case key.Matches(msg, m.keys.Click):
			m.click()
		case key.Matches(msg, m.keys.Undo):
			m.hint = nil
			if m.session.engine.Undo(&m.session.state) {
				m.session.moveCount--
				m.status = "Took back the last jump."
			} else {
				m.status = "Nothing to undo."
			}
		case key.Matches(msg, m.keys.Restart):
			m.hint = nil
			m.session.engine.Reset(&m.session.state)
			m.session.moveCount = 0
			m.status = "New board."
		case key.Matches(msg, m.keys.Hint):
			m.showHint()
		}
	}
	return m, nil
}

func (m *tuiModel) click() {
	if err := m.session.requirePlaying(); err != nil {
		m.status = err.Error()
		return
	}
	outcome, err := m.session.engine.Click(&m.session.state, m.cursor)
	if err != nil {
		m.status = err.Error()
		return
	}
	if outcome == nil {
		if sel := m.session.state.Selection; sel != nil {
			m.status = fmt.Sprintf("Selected (%d,%d).", sel.Row, sel.Col)
		} else {
			m.status = "Pick a peg to jump."
		}
		return
	}
	m.hint = nil
	m.session.moveCount++
	m.status = fmt.Sprintf("Jumped %s, %d pegs left.", moveFromModel(outcome.Move), outcome.PegsRemaining)
}

func (m *tuiModel) showHint() {
	if err := m.session.requirePlaying(); err != nil {
		m.status = err.Error()
		return
	}
	move, ok := m.session.strategies[model.DefaultHintStrategy].ChooseMove(m.session.state.Board)
	if !ok {
		m.status = model.ErrNoValidMoves.Error()
		return
	}
	m.hint = &move
	m.cursor = move.From
	m.status = fmt.Sprintf("Try %s.", moveFromModel(move))
}

func (m tuiModel) View() string {
	state := m.session.state

	var b strings.Builder
	for row, holes := range state.Board.Holes {
		b.WriteString(strings.Repeat(" ", model.BoardRows-1-row))
		for col, hole := range holes {
			pos := model.Position{Row: row, Col: col}
			cell := m.cell(pos, hole)
			if pos == m.cursor {
				cell = tuiCursorStyle.Render(cell)
			}
			if col > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell)
		}
		if row < len(state.Board.Holes)-1 {
			b.WriteString("\n")
		}
	}

	info := fmt.Sprintf("Pegs: %d  Moves: %d", state.Board.PegCount(), m.session.moveCount)
	status := m.status
	switch state.Status {
	case model.GameStatusWon:
		status = tuiWinStyle.Render(state.Message)
	case model.GameStatusLost:
		status = tuiLoseStyle.Render(state.Message)
	}

	help := make([]string, 0, len(m.keys.help()))
	for _, binding := range m.keys.help() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		tuiTitleStyle.Render("Peg Solitaire"),
		tuiBoxStyle.Render(b.String()),
		info,
		status,
		tuiHelpStyle.Render(strings.Join(help, " • ")),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m tuiModel) cell(pos model.Position, hole model.HoleState) string {
	switch {
	case m.session.state.IsSelected(pos):
		return tuiSelectedStyle.Render("@")
	case m.hint != nil && m.hint.To == pos:
		return tuiHintStyle.Render("*")
	case hole == model.HolePeg:
		return tuiPegStyle.Render("o")
	default:
		return tuiEmptyStyle.Render(".")
	}
}
