// Package tui is a mouse-driven terminal front end: click an empty cell to
// place, click one of your pieces and then a highlighted cell to slide.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/config"
	"github.com/fourline/fourline/game"
	"github.com/fourline/fourline/minimax"
	"github.com/fourline/fourline/move"
)

// headerLines is the number of screen lines above the board.
const headerLines = 1

type model struct {
	keys keyMap
	help help.Model

	config     *config.Config
	cellWidth  int
	cellHeight int

	game     *game.Game
	thinking bool
	status   string
	err      error // some displayed error
}

type keyMap struct {
	NewGame  key.Binding
	Classic  key.Binding
	Compact  key.Binding
	Computer key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewGame, k.Classic, k.Compact, k.Computer}, // First column
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	NewGame: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new game"),
	),
	Classic: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "classic 5x5"),
	),
	Compact: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "compact 4x4"),
	),
	Computer: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "4x4 against the computer"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// InitialModel starts a game of the configured variant, falling back to
// the computer variant if the configured one is unknown.
func InitialModel(cfg *config.Config) model {
	m := model{
		keys:       keys,
		help:       help.New(),
		config:     cfg,
		cellWidth:  max(cfg.GetInt(config.ConfigTUICellWidth), 1),
		cellHeight: max(cfg.GetInt(config.ConfigTUICellHeight), 1),
	}
	if err := m.newGame(game.Variant(cfg.GetString(config.ConfigVariant))); err != nil {
		m.err = err
		_ = m.newGame(game.VarComputer)
	}
	return m
}

func (m *model) newGame(v game.Variant) error {
	rules, err := game.NewBasicGameRules(v)
	if err != nil {
		return err
	}
	m.game = game.NewGame(rules)
	m.thinking = false
	m.status = "New " + string(v) + " game."
	return nil
}

// computerMovedMsg carries the computer's chosen ply back to Update.
type computerMovedMsg struct {
	turn int
	m    *move.Move
	err  error
}

// computerMove searches a copy of the board off the update loop.
func computerMove(b *board.Board, player board.Symbol, turn int) tea.Cmd {
	return func() tea.Msg {
		_, pv, err := minimax.NewSolver().Solve(context.Background(), b, player)
		if err != nil {
			return computerMovedMsg{turn: turn, err: err}
		}
		return computerMovedMsg{turn: turn, m: pv[0]}
	}
}

// maybeComputer schedules the computer's reply if it is on turn.
func (m *model) maybeComputer() tea.Cmd {
	if !m.game.IsComputerTurn() {
		return nil
	}
	if m.game.Stalled() {
		m.status = "Neither side can move."
		return nil
	}
	m.thinking = true
	return computerMove(m.game.Board(), m.game.PlayerOnTurn(), m.game.Turn())
}

// cellAt maps a screen offset to a board cell.
func (m model) cellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < headerLines {
		return 0, 0, false
	}
	row = (y - headerLines) / m.cellHeight
	col = x / m.cellWidth
	if row >= m.game.Rules().Dim() || col >= m.game.Rules().Dim() {
		return 0, 0, false
	}
	return row, col, true
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NewGame):
			m.err = m.newGame(m.game.Rules().Variant())
		case key.Matches(msg, m.keys.Classic):
			m.err = m.newGame(game.VarClassic)
		case key.Matches(msg, m.keys.Compact):
			m.err = m.newGame(game.VarCompact)
		case key.Matches(msg, m.keys.Computer):
			m.err = m.newGame(game.VarComputer)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		if m.thinking || m.game.IsComputerTurn() {
			break
		}
		row, col, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			break
		}
		m.err = nil
		mover := m.game.PlayerOnTurn()
		if m.game.AttemptPlaceOrSlide(mover, row, col) {
			m.status = fmt.Sprintf("%v played %s.", mover, m.game.LastMove().ShortDescription())
			log.Debug().Str("move", m.game.LastMove().ShortDescription()).Msg("tui-ply")
			return m, m.maybeComputer()
		}

	case computerMovedMsg:
		// a reply to a game that has since been replaced
		if !m.thinking || msg.turn != m.game.Turn() {
			break
		}
		m.thinking = false
		if msg.err != nil {
			m.err = msg.err
			break
		}
		if err := m.game.PlayMove(msg.m); err != nil {
			m.err = err
			break
		}
		m.status = fmt.Sprintf("Computer played %s.", msg.m.ShortDescription())
		// the human may have no move, in which case the computer goes again
		return m, m.maybeComputer()
	}

	return m, nil
}

func (m model) View() string {
	return renderView(m)
}
