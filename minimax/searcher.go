package minimax

import (
	"context"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/equity"
)

// A Searcher resolves a root node: it fills in estimations down the tree
// and sets the chosen child at every internal node.
type Searcher interface {
	Search(ctx context.Context, root *Node) error
	// Nodes is the number of nodes visited by the last Search.
	Nodes() uint64
}

// PlainMinimax expands every node to its full depth with no pruning.
// Among equally scored children the first in generator order wins, so the
// result depends only on the position.
type PlainMinimax struct {
	evaluator equity.Evaluator
	nodes     uint64
}

func NewPlainMinimax(e equity.Evaluator) *PlainMinimax {
	return &PlainMinimax{evaluator: e}
}

func (m *PlainMinimax) Nodes() uint64 {
	return m.nodes
}

func (m *PlainMinimax) Search(ctx context.Context, root *Node) error {
	m.nodes = 0
	return m.minimax(ctx, root)
}

// leafScore scores a node that will not be expanded. A win with more plies
// still to go scores higher.
func (m *PlainMinimax) leafScore(n *Node, winner board.Symbol, terminal bool) int {
	if terminal {
		switch winner {
		case board.O:
			return WinScore + n.depth
		case board.X:
			return -WinScore + n.depth
		}
	}
	return m.evaluator.Evaluate(n.board)
}

// stuckScore scores an internal node where the side to move has no ply: it
// counts as a loss for that side.
func stuckScore(n *Node) int {
	if n.maximizing() {
		return -WinScore + n.depth
	}
	return WinScore + n.depth
}

func (m *PlainMinimax) minimax(ctx context.Context, n *Node) error {
	if n.parent == nil || n.parent.parent == nil {
		// only poll near the root; deeper levels finish quickly
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	m.nodes++
	winner, terminal := n.board.Terminal()
	if n.depth == 0 || terminal {
		n.setEstimation(m.leafScore(n, winner, terminal))
		return nil
	}
	n.expand()
	if len(n.children) == 0 {
		if n.parent == nil {
			return ErrNoMoves
		}
		n.setEstimation(stuckScore(n))
		return nil
	}
	best := 0
	for i, c := range n.children {
		if err := m.minimax(ctx, c); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		if n.maximizing() && c.estimation > n.children[best].estimation ||
			!n.maximizing() && c.estimation < n.children[best].estimation {
			best = i
		}
	}
	n.chosen = best
	n.setEstimation(n.children[best].estimation)
	return nil
}
