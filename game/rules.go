package game

import (
	"errors"
	"fmt"

	"github.com/fourline/fourline/board"
)

type Variant string

const (
	VarClassic  Variant = "classic"
	VarCompact  Variant = "compact"
	VarComputer Variant = "computer"
)

var Variants = []Variant{VarClassic, VarCompact, VarComputer}

var ErrUnknownVariant = errors.New("unknown variant")

// GameRules is a simple struct that encapsulates what differs between
// variants: the board size and whether the computer plays a side.
type GameRules struct {
	variant  Variant
	dim      int
	computer board.Symbol
}

// NewBasicGameRules returns the rules for a variant.
func NewBasicGameRules(variant Variant) (*GameRules, error) {
	switch variant {
	case VarClassic:
		return &GameRules{variant: variant, dim: board.ClassicDim}, nil
	case VarCompact:
		return &GameRules{variant: variant, dim: board.CompactDim}, nil
	case VarComputer:
		return &GameRules{variant: variant, dim: board.CompactDim, computer: board.O}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}

func (g GameRules) Variant() Variant {
	return g.variant
}

// Dim is the side of the square board.
func (g GameRules) Dim() int {
	return g.dim
}

// Computer is the symbol the computer plays, or board.Empty if both sides
// are human.
func (g GameRules) Computer() board.Symbol {
	return g.computer
}

func (g GameRules) HasComputer() bool {
	return g.computer != board.Empty
}
