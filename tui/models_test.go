package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/config"
	"github.com/fourline/fourline/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// leftClick presses the left button at the top-left character of a cell
// with the default 6x3 cells.
func leftClick(row, col int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      col * 6,
		Y:      headerLines + row*3,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func newTestModel(variant string) model {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigVariant, variant)
	return InitialModel(cfg)
}

func TestInitialModel(t *testing.T) {
	is := is.New(t)
	m := newTestModel("classic")
	is.Equal(m.game.Rules().Variant(), game.VarClassic)
	is.Equal(m.cellWidth, 6)
	is.Equal(m.cellHeight, 3)
	is.Equal(m.err, nil)

	m = newTestModel("hexagonal")
	is.Equal(m.game.Rules().Variant(), game.VarComputer)
	is.True(m.err != nil)
}

func TestCellAt(t *testing.T) {
	is := is.New(t)
	m := newTestModel("compact")
	_, _, ok := m.cellAt(3, 0)
	is.True(!ok) // the header
	row, col, ok := m.cellAt(13, 4)
	is.True(ok)
	is.Equal(row, 1)
	is.Equal(col, 2)
	row, col, ok = m.cellAt(23, 12)
	is.True(ok)
	is.Equal(row, 3)
	is.Equal(col, 3)
	_, _, ok = m.cellAt(24, 5)
	is.True(!ok)
	_, _, ok = m.cellAt(5, 13)
	is.True(!ok)
}

func TestKeys(t *testing.T) {
	is := is.New(t)
	m := newTestModel("computer")
	m, _ = update(t, m, keyPress("1"))
	is.Equal(m.game.Rules().Variant(), game.VarClassic)
	m, _ = update(t, m, keyPress("2"))
	is.Equal(m.game.Rules().Variant(), game.VarCompact)

	m, _ = update(t, m, leftClick(0, 0))
	is.Equal(m.game.Turn(), 1)
	m, _ = update(t, m, keyPress("n"))
	is.Equal(m.game.Turn(), 0)
	is.Equal(m.game.Rules().Variant(), game.VarCompact)

	m, _ = update(t, m, keyPress("?"))
	is.True(m.help.ShowAll)

	_, cmd := update(t, m, keyPress("q"))
	is.Equal(cmd(), tea.Quit())
}

func TestClicksPlaceAndSlide(t *testing.T) {
	is := is.New(t)
	m := newTestModel("compact")

	m, cmd := update(t, m, leftClick(1, 1))
	is.Equal(cmd, nil)
	is.Equal(m.game.Board().At(1, 1), board.X)
	is.Equal(m.status, "X played B2.")

	m, _ = update(t, m, leftClick(3, 3))
	is.Equal(m.game.Board().At(3, 3), board.O)

	// pick up B2, then drop it on A1
	m, _ = update(t, m, leftClick(1, 1))
	is.Equal(len(m.game.Candidates()), 8)
	is.True(strings.Contains(m.View(), "*"))
	m, _ = update(t, m, leftClick(0, 0))
	is.Equal(m.game.Board().At(0, 0), board.X)
	is.Equal(m.game.Board().At(1, 1), board.Empty)
	is.Equal(m.status, "X played B2-A1.")
}

func TestIgnoredMouseEvents(t *testing.T) {
	is := is.New(t)
	m := newTestModel("compact")
	click := leftClick(0, 0)
	click.Action = tea.MouseActionRelease
	m, _ = update(t, m, click)
	click = leftClick(0, 0)
	click.Button = tea.MouseButtonRight
	m, _ = update(t, m, click)
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	is.Equal(m.game.Turn(), 0)
}

func TestComputerReply(t *testing.T) {
	is := is.New(t)
	m := newTestModel("computer")

	m, cmd := update(t, m, leftClick(0, 0))
	is.True(cmd != nil)
	is.True(m.thinking)
	is.True(strings.Contains(m.View(), "computer is thinking"))

	// clicks wait for the computer
	m, _ = update(t, m, leftClick(3, 3))
	is.Equal(m.game.Turn(), 1)

	m, cmd = update(t, m, cmd())
	is.Equal(cmd, nil)
	is.True(!m.thinking)
	is.Equal(m.game.Turn(), 2)
	is.Equal(m.game.Board().Count(board.O), 1)
	is.True(strings.HasPrefix(m.status, "Computer played "))
	is.Equal(m.game.PlayerOnTurn(), board.X)
}

func TestStaleComputerReply(t *testing.T) {
	is := is.New(t)
	m := newTestModel("computer")
	m, cmd := update(t, m, leftClick(0, 0))
	reply := cmd()
	m, _ = update(t, m, keyPress("n"))
	m, _ = update(t, m, reply)
	is.Equal(m.game.Turn(), 0)
	is.Equal(m.game.Board().Count(board.O), 0)
}

func TestView(t *testing.T) {
	is := is.New(t)
	m := newTestModel("compact")
	v := m.View()
	lines := strings.Split(v, "\n")
	is.True(strings.Contains(lines[0], "fourline compact | turn 0 | X to move"))
	// header plus four rows of three lines each
	is.True(len(lines) >= 1+4*3)

	m, _ = update(t, m, leftClick(0, 0))
	// B1 and A2 are blocked for O
	is.True(strings.Contains(m.View(), "#"))
}
