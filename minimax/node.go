package minimax

import (
	"fmt"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/move"
	"github.com/fourline/fourline/movegen"
)

// A Node is one position in the search tree. It owns its board; a board
// that has been put into a node is never mutated afterwards. The parent
// link is only for walking back up and does not own anything.
type Node struct {
	board  *board.Board
	player board.Symbol
	depth  int
	parent *Node
	// move is the ply that led here from the parent. nil at the root.
	move *move.Move

	estimation int
	evaluated  bool

	children []*Node
	chosen   int
}

// NewRoot wraps b for a search on behalf of player. b should be a copy the
// caller no longer touches.
func NewRoot(b *board.Board, player board.Symbol, depth int) *Node {
	return &Node{board: b, player: player, depth: depth, chosen: -1}
}

func (n *Node) Board() *board.Board {
	return n.board
}

// Player is the symbol to move at this node.
func (n *Node) Player() board.Symbol {
	return n.player
}

// Depth is the number of plies still to be searched below this node.
func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Move() *move.Move {
	return n.move
}

// Estimation returns the node's score and whether it has been set.
func (n *Node) Estimation() (int, bool) {
	return n.estimation, n.evaluated
}

func (n *Node) setEstimation(v int) {
	if n.evaluated {
		panic("estimation set twice")
	}
	n.estimation = v
	n.evaluated = true
}

func (n *Node) Children() []*Node {
	return n.children
}

// Chosen returns the selected child, or nil for a leaf.
func (n *Node) Chosen() *Node {
	if n.chosen < 0 {
		return nil
	}
	return n.children[n.chosen]
}

// maximizing is true when the side to move wants the highest score.
func (n *Node) maximizing() bool {
	return n.player == board.O
}

// expand creates one child per legal ply, in generator order. Each child
// has the other player to move and one less ply to go.
func (n *Node) expand() {
	opp := board.MustOpponent(n.player)
	plays := movegen.GenAll(n.board, n.player)
	n.children = make([]*Node, len(plays))
	for i, p := range plays {
		n.children[i] = &Node{
			board:  p.Successor(n.board),
			player: opp,
			depth:  n.depth - 1,
			parent: n,
			move:   p,
			chosen: -1,
		}
	}
}

func (n *Node) String() string {
	est := "?"
	if n.evaluated {
		est = fmt.Sprint(n.estimation)
	}
	return fmt.Sprintf("<node move: %v player: %v depth: %d est: %v children: %d>",
		n.move.ShortDescription(), n.player, n.depth, est, len(n.children))
}
