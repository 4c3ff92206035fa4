// Package game owns the authoritative board of a running game and applies
// the players' clicks to it: placements, two-step slides, turn passing and
// the computer's reply.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/minimax"
	"github.com/fourline/fourline/move"
	"github.com/fourline/fourline/movegen"
)

var (
	ErrGameOver         = errors.New("game is over")
	ErrNotComputerTurn  = errors.New("it is not the computer's turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrStalled          = errors.New("neither side can move")
	ErrPositionMismatch = errors.New("position does not fit this variant")
)

// PlayState is the turn state of a game.
type PlayState uint8

const (
	TurnX PlayState = iota
	TurnO
	Final
)

func (p PlayState) String() string {
	switch p {
	case TurnX:
		return "X to move"
	case TurnO:
		return "O to move"
	case Final:
		return "game over"
	}
	return "unknown"
}

func turnFor(s board.Symbol) PlayState {
	if s == board.O {
		return TurnO
	}
	return TurnX
}

// Game is the turn controller. It is not safe for concurrent use.
type Game struct {
	rules   *GameRules
	board   *board.Board
	playing PlayState
	winner  board.Symbol

	// A pending slide: the piece the player picked up and the cells it can
	// go to. These are never written to the board.
	slideFrom  *board.Pos
	candidates []board.Pos

	solver   *minimax.Solver
	lastMove *move.Move
	turnnum  int
}

// NewGame starts a game with X to move on an empty board.
func NewGame(rules *GameRules) *Game {
	g := &Game{
		rules:  rules,
		solver: minimax.NewSolver(),
	}
	g.StartGame()
	return g
}

// StartGame resets the board.
func (g *Game) StartGame() {
	g.board = board.NewBoard(g.rules.Dim(), g.rules.Dim())
	g.playing = TurnX
	g.winner = board.Empty
	g.lastMove = nil
	g.turnnum = 0
	g.clearSlide()
	g.RefreshBlocked()
	log.Debug().Str("variant", string(g.rules.Variant())).Msg("new-game")
}

// LoadPosition replaces the board with b and gives the move to side. If b
// already holds a completed line the game is over. If side cannot move the
// turn passes to its opponent, as after a ply.
func (g *Game) LoadPosition(b *board.Board, side board.Symbol) error {
	if b.Rows() != g.rules.Dim() || b.Cols() != g.rules.Dim() {
		return fmt.Errorf("%w: %dx%d on %s", ErrPositionMismatch, b.Rows(), b.Cols(), g.rules.Variant())
	}
	if !side.IsPlayer() {
		return fmt.Errorf("%w: %v", board.ErrInvalidSymbol, side)
	}
	g.board = b.Clone()
	g.clearSlide()
	g.lastMove = nil
	if winner, done := g.board.Terminal(); done {
		g.playing = Final
		g.winner = winner
		g.board.ClearBlocked()
		return nil
	}
	g.winner = board.Empty
	g.playing = turnFor(side)
	g.RefreshBlocked()
	if g.board.HasAnyMove(side) {
		return nil
	}
	opp := board.MustOpponent(side)
	g.playing = turnFor(opp)
	g.RefreshBlocked()
	if !g.board.HasAnyMove(opp) {
		// nobody can move; side keeps the turn
		g.playing = turnFor(side)
		g.RefreshBlocked()
		return nil
	}
	log.Debug().Str("skipped", side.String()).Msg("turn-skipped")
	return nil
}

func (g *Game) Rules() *GameRules {
	return g.rules
}

// Board returns a copy of the authoritative board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// Candidates returns a copy of the pending-slide overlay.
func (g *Game) Candidates() []board.Pos {
	out := make([]board.Pos, len(g.candidates))
	copy(out, g.candidates)
	return out
}

// SlideSource is the piece picked up for a pending slide, if any.
func (g *Game) SlideSource() (board.Pos, bool) {
	if g.slideFrom == nil {
		return board.Pos{}, false
	}
	return *g.slideFrom, true
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// PlayerOnTurn returns X or O, or Empty once the game is over.
func (g *Game) PlayerOnTurn() board.Symbol {
	switch g.playing {
	case TurnX:
		return board.X
	case TurnO:
		return board.O
	}
	return board.Empty
}

// Winner is only set once the game is Final.
func (g *Game) Winner() board.Symbol {
	return g.winner
}

func (g *Game) LastMove() *move.Move {
	return g.lastMove
}

// Turn is the number of plies played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

// IsComputerTurn is true when the computer is the player to move.
func (g *Game) IsComputerTurn() bool {
	return g.rules.HasComputer() && g.playing != Final &&
		g.PlayerOnTurn() == g.rules.Computer()
}

// Stalled reports a position in which neither player can move. The game
// stays in its turn state; only a completed line ends it.
func (g *Game) Stalled() bool {
	if g.playing == Final {
		return false
	}
	mover := g.PlayerOnTurn()
	if g.board.HasAnyMove(mover) {
		return false
	}
	// the opponent's mask differs from the one on the board
	opp := g.board.Clone()
	_ = opp.RefreshBlocked(board.MustOpponent(mover))
	return !opp.HasAnyMove(board.MustOpponent(mover))
}

// RefreshBlocked recomputes the blocked mask for the player to move.
func (g *Game) RefreshBlocked() {
	if g.playing == Final {
		return
	}
	// PlayerOnTurn is always X or O here.
	_ = g.board.RefreshBlocked(g.PlayerOnTurn())
}

// HasAnyMove reports whether sym could move on the current board.
func (g *Game) HasAnyMove(sym board.Symbol) bool {
	return g.board.HasAnyMove(sym)
}

func (g *Game) clearSlide() {
	g.slideFrom = nil
	g.candidates = nil
}

func (g *Game) isCandidate(p board.Pos) bool {
	for _, c := range g.candidates {
		if c == p {
			return true
		}
	}
	return false
}

// AttemptPlaceOrSlide applies a click by symbol at (row, col). In order:
// a click on a slide candidate completes the pending slide; a click on an
// open Empty cell places a piece; a click on one of the player's own
// pieces cancels a pending slide, or else picks the piece up and shows
// where it can slide. It returns true only when a ply was made.
func (g *Game) AttemptPlaceOrSlide(symbol board.Symbol, row, col int) bool {
	if g.playing == Final || symbol != g.PlayerOnTurn() || !g.board.InBounds(row, col) {
		return false
	}
	target := board.Pos{Row: row, Col: col}

	if g.slideFrom != nil && g.isCandidate(target) {
		m := move.NewSlide(symbol, *g.slideFrom, target)
		g.clearSlide()
		g.applyPly(m)
		return true
	}
	if g.board.CanPlace(row, col) {
		m := move.NewPlacement(symbol, target)
		g.clearSlide()
		g.applyPly(m)
		return true
	}
	if g.board.At(row, col) == symbol {
		if g.slideFrom != nil {
			g.clearSlide()
			return false
		}
		targets := g.board.SlideTargets(row, col)
		if len(targets) > 0 {
			g.slideFrom = &target
			g.candidates = targets
		}
		return false
	}
	return false
}

// PlayMove validates m against the generated moves for the player to move
// and plays it.
func (g *Game) PlayMove(m *move.Move) error {
	if g.playing == Final {
		return ErrGameOver
	}
	if m.Player() != g.PlayerOnTurn() {
		return fmt.Errorf("%w: %v is not on turn", ErrIllegalMove, m.Player())
	}
	legal := false
	for _, p := range movegen.GenAll(g.board, m.Player()) {
		if p.Equals(m) {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m.ShortDescription())
	}
	g.clearSlide()
	g.applyPly(m)
	return nil
}

// applyPly writes a validated move to the board and advances the turn.
func (g *Game) applyPly(m *move.Move) {
	m.ApplyTo(g.board)
	g.lastMove = m
	g.turnnum++
	to := m.To()
	g.advance(m.Player(), g.board.IsLineComplete(to.Row, to.Col))
}

// advance ends the game on a completed line. Otherwise the turn passes to
// the opponent, unless the opponent cannot move, in which case the mover
// goes again.
func (g *Game) advance(mover board.Symbol, completed bool) {
	if completed {
		g.playing = Final
		g.winner = mover
		g.board.ClearBlocked()
		log.Debug().Str("winner", mover.String()).Int("turn", g.turnnum).Msg("line-completed")
		return
	}
	opp := board.MustOpponent(mover)
	g.playing = turnFor(opp)
	g.RefreshBlocked()
	if !g.board.HasAnyMove(opp) {
		log.Debug().Str("skipped", opp.String()).Msg("turn-skipped")
		g.playing = turnFor(mover)
		g.RefreshBlocked()
	}
}

// PlayComputerTurn lets the computer choose and play its ply. It is only
// valid in a variant with a computer player, on the computer's turn.
func (g *Game) PlayComputerTurn(ctx context.Context) (*move.Move, error) {
	if g.playing == Final {
		return nil, ErrGameOver
	}
	if !g.IsComputerTurn() {
		return nil, ErrNotComputerTurn
	}
	return g.PlayBestMove(ctx)
}

// PlayBestMove searches for the player to move, whichever side that is,
// and adopts the chosen successor board.
func (g *Game) PlayBestMove(ctx context.Context) (*move.Move, error) {
	if g.playing == Final {
		return nil, ErrGameOver
	}
	mover := g.PlayerOnTurn()
	if !g.board.HasAnyMove(mover) {
		return nil, ErrStalled
	}
	val, pv, err := g.solver.Solve(ctx, g.board, mover)
	if err != nil {
		return nil, err
	}
	m := pv[0]
	g.board = g.solver.BestBoard().Clone()
	g.clearSlide()
	g.lastMove = m
	g.turnnum++
	log.Info().
		Str("player", mover.String()).
		Str("move", m.ShortDescription()).
		Int("value", val).
		Uint64("nodes", g.solver.Nodes()).
		Uint64("fingerprint", g.board.Fingerprint()).
		Msg("searched-move")

	if winner, done := g.board.Terminal(); done {
		g.playing = Final
		g.winner = winner
		g.board.ClearBlocked()
		return m, nil
	}
	g.advance(mover, false)
	return m, nil
}

// Solver exposes the search used for computer moves.
func (g *Game) Solver() *minimax.Solver {
	return g.solver
}
