package board

import (
	"errors"
	"fmt"
	"os"
)

var (
	ColorSupport = os.Getenv("FOURLINE_DISABLE_COLOR") != "on"
)

var ErrInvalidSymbol = errors.New("invalid player symbol")

// A Symbol is the content of a single cell. Only X and O are players;
// X always moves first and is the minimizing side in a search, O is the
// maximizing side.
type Symbol uint8

const (
	Empty Symbol = iota
	X
	O
)

func (s Symbol) String() string {
	switch s {
	case Empty:
		return "."
	case X:
		return "X"
	case O:
		return "O"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// IsPlayer is true for X and O.
func (s Symbol) IsPlayer() bool {
	return s == X || s == O
}

// Opponent returns the other player's symbol.
func Opponent(s Symbol) (Symbol, error) {
	switch s {
	case X:
		return O, nil
	case O:
		return X, nil
	}
	return Empty, fmt.Errorf("%w: %v", ErrInvalidSymbol, s)
}

// MustOpponent is Opponent for callers that have already validated the
// symbol. It panics otherwise.
func MustOpponent(s Symbol) Symbol {
	o, err := Opponent(s)
	if err != nil {
		panic(err)
	}
	return o
}

// SymbolFromString parses a player symbol, case-insensitively.
func SymbolFromString(s string) (Symbol, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "o", "O":
		return O, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
}

func (s Symbol) notation() byte {
	switch s {
	case X:
		return 'x'
	case O:
		return 'o'
	}
	return '.'
}

func (s Symbol) displayString() string {
	if !ColorSupport {
		return s.String()
	}
	switch s {
	case X:
		return fmt.Sprintf("\033[31m%s\033[0m", s.String())
	case O:
		return fmt.Sprintf("\033[36m%s\033[0m", s.String())
	}
	return s.String()
}
