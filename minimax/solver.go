// Package minimax picks the computer's ply with a fixed-depth game-tree
// search. O is the maximizing side and X the minimizing side.
package minimax

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/equity"
	"github.com/fourline/fourline/move"
)

const (
	// DefaultDepth is the number of plies searched for the computer.
	DefaultDepth = 3
	// WinScore is the base score of a completed line.
	WinScore = 99
)

var (
	ErrNoMoves  = errors.New("no legal moves for the side to move")
	ErrBadDepth = errors.New("search depth must be at least 1")
)

type PVLine struct {
	Moves []*move.Move
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Get the best move from the principal variation line.
func (pvLine *PVLine) GetPVMove() *move.Move {
	if len(pvLine.Moves) == 0 {
		return nil
	}
	return pvLine.Moves[0]
}

func (pvLine PVLine) Score() int {
	return pvLine.score
}

func (pvLine PVLine) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("PV; val %d\n", pvLine.score))
	for i, m := range pvLine.Moves {
		s.WriteString(fmt.Sprintf("%d: %s (%v)\n", i+1, m.ShortDescription(), m.Player()))
	}
	return s.String()
}

func (pvLine PVLine) NLBString() string {
	// no line breaks
	var s strings.Builder
	s.WriteString(fmt.Sprintf("PV; val %d; ", pvLine.score))
	for i, m := range pvLine.Moves {
		s.WriteString(fmt.Sprintf("%d: %s; ", i+1, m.ShortDescription()))
	}
	return s.String()
}

// pvFromRoot follows the chosen children down from a solved root.
func pvFromRoot(root *Node) PVLine {
	pv := PVLine{score: root.estimation}
	for n := root.Chosen(); n != nil; n = n.Chosen() {
		pv.Moves = append(pv.Moves, n.move)
	}
	return pv
}

type Solver struct {
	searcher           Searcher
	depth              int
	root               *Node
	principalVariation PVLine
	logStream          io.Writer
}

// NewSolver returns a plain minimax solver at the default depth, scoring
// non-terminal leaves by open lines.
func NewSolver() *Solver {
	s := &Solver{}
	s.Init(NewPlainMinimax(equity.NewOpenLinesCalculator()))
	return s
}

// Init initializes the solver with a search strategy.
func (s *Solver) Init(searcher Searcher) {
	s.searcher = searcher
	s.depth = DefaultDepth
	s.root = nil
	s.principalVariation.Clear()
}

// SetDepth overrides the search depth. Only tests and analysis tools use
// this; the game always plays at DefaultDepth.
func (s *Solver) SetDepth(d int) {
	s.depth = d
}

// SetLogStream makes the next Solve write its full search tree, as YAML, to
// l. Pass nil to turn it off.
func (s *Solver) SetLogStream(l io.Writer) {
	s.logStream = l
}

// Solve searches b for player and returns the root's estimation together
// with the principal variation. b is cloned; the caller's board is not
// modified.
func (s *Solver) Solve(ctx context.Context, b *board.Board, player board.Symbol) (int, []*move.Move, error) {
	if !player.IsPlayer() {
		return 0, nil, fmt.Errorf("%w: %v", board.ErrInvalidSymbol, player)
	}
	if s.depth < 1 {
		return 0, nil, fmt.Errorf("%w: %d", ErrBadDepth, s.depth)
	}
	s.root = NewRoot(b.Clone(), player, s.depth)
	s.principalVariation.Clear()
	log.Debug().Int("depth", s.depth).Str("player", player.String()).
		Uint64("fingerprint", b.Fingerprint()).Msg("minimax-solve-config")

	tstart := time.Now()
	if err := s.searcher.Search(ctx, s.root); err != nil {
		return 0, nil, err
	}
	s.principalVariation = pvFromRoot(s.root)
	log.Debug().
		Int("value", s.root.estimation).
		Uint64("nodes", s.searcher.Nodes()).
		Dur("elapsed", time.Since(tstart)).
		Str("pv", s.principalVariation.NLBString()).
		Msg("best-val")

	if s.logStream != nil {
		if err := writeTrace(s.logStream, s.root); err != nil {
			return 0, nil, err
		}
	}
	return s.root.estimation, s.principalVariation.Moves, nil
}

// Root is the tree from the last Solve.
func (s *Solver) Root() *Node {
	return s.root
}

// BestBoard is the board of the chosen root child from the last Solve.
func (s *Solver) BestBoard() *board.Board {
	if s.root == nil || s.root.Chosen() == nil {
		return nil
	}
	return s.root.Chosen().Board()
}

func (s *Solver) PrincipalVariation() PVLine {
	return s.principalVariation
}

func (s *Solver) Nodes() uint64 {
	return s.searcher.Nodes()
}
