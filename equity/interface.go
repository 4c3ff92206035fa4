package equity

import (
	"github.com/fourline/fourline/board"
)

// Evaluator scores a non-terminal board. Positive values favour O, negative
// values favour X, whoever is to move.
type Evaluator interface {
	Evaluate(b *board.Board) int
}
