package move

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fourline/fourline/board"
)

// MoveType is a type of move: a placement or a slide.
type MoveType uint8

const (
	MoveTypePlace MoveType = iota
	MoveTypeSlide
)

var ErrMoveFormat = errors.New("malformed move")

// Move is a single ply by one player. A placement only has a destination;
// a slide moves the player's piece at from into the Empty cell at to.
type Move struct {
	action MoveType
	player board.Symbol
	from   board.Pos
	to     board.Pos
}

var reSlide = regexp.MustCompile(`^([A-Za-z][0-9]+)\s*(?:-|\s)\s*([A-Za-z][0-9]+)$`)

// NewPlacement creates a placement of player's symbol at to.
func NewPlacement(player board.Symbol, to board.Pos) *Move {
	return &Move{action: MoveTypePlace, player: player, to: to}
}

// NewSlide creates a slide of player's piece from one cell to a neighbour.
func NewSlide(player board.Symbol, from, to board.Pos) *Move {
	return &Move{action: MoveTypeSlide, player: player, from: from, to: to}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("<action: place player: %v to: %v>", m.player, m.to)
	case MoveTypeSlide:
		return fmt.Sprintf("<action: slide player: %v from: %v to: %v>", m.player, m.from, m.to)
	}
	return "<Unhandled move>"
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlace:
		return "Place"
	case MoveTypeSlide:
		return "Slide"
	}
	return "UNHANDLED"
}

// ShortDescription provides a short description, useful for logging or
// user display: "B3" for a placement, "A1-B2" for a slide.
func (m *Move) ShortDescription() string {
	if m == nil {
		return "(none)"
	}
	switch m.action {
	case MoveTypePlace:
		return m.to.String()
	case MoveTypeSlide:
		return m.from.String() + "-" + m.to.String()
	}
	return "UNHANDLED"
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Player() board.Symbol {
	return m.player
}

// From is only meaningful for slides.
func (m *Move) From() board.Pos {
	return m.from
}

func (m *Move) To() board.Pos {
	return m.to
}

func (m *Move) Equals(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.action != o.action || m.player != o.player || m.to != o.to {
		return false
	}
	return m.action == MoveTypePlace || m.from == o.from
}

// ApplyTo writes the move onto b in place. The blocked mask is not touched.
func (m *Move) ApplyTo(b *board.Board) {
	if m.action == MoveTypeSlide {
		b.Set(m.from.Row, m.from.Col, board.Empty)
	}
	b.Set(m.to.Row, m.to.Col, m.player)
}

// Successor returns a copy of b with the move applied. The blocked mask is
// carried over unchanged.
func (m *Move) Successor(b *board.Board) *board.Board {
	n := b.Clone()
	m.ApplyTo(n)
	return n
}

// FromUserText parses "B3" as a placement or "A1-B2" / "A1 B2" as a slide
// for the given player. It does not check legality.
func FromUserText(player board.Symbol, s string) (*Move, error) {
	s = strings.TrimSpace(s)
	if sm := reSlide.FindStringSubmatch(s); len(sm) == 3 {
		from, err := board.ParsePos(sm[1])
		if err != nil {
			return nil, err
		}
		to, err := board.ParsePos(sm[2])
		if err != nil {
			return nil, err
		}
		return NewSlide(player, from, to), nil
	}
	to, err := board.ParsePos(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMoveFormat, s)
	}
	return NewPlacement(player, to), nil
}
