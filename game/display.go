package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fourline/fourline/board"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

// Position is the current board in position notation. Once the game is
// over the side recorded is the winner.
func (g *Game) Position() string {
	side := g.PlayerOnTurn()
	if side == board.Empty {
		side = g.winner
	}
	return g.board.Position(side)
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText(g.candidates...)
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 2

	log.Debug().Str("playing", g.playing.String()).Msg("todisplaytext")
	addText(bts, vpadding, hpadding, fmt.Sprintf("Variant: %s", g.rules.Variant()))
	addText(bts, vpadding+1, hpadding, fmt.Sprintf("Turn %d: %s", g.turnnum, g.playing))
	if g.lastMove != nil {
		addText(bts, vpadding+2, hpadding, fmt.Sprintf("Last: %v %s",
			g.lastMove.Player(), g.lastMove.ShortDescription()))
	}
	switch {
	case g.playing == Final:
		addText(bts, vpadding+3, hpadding, fmt.Sprintf("Game is over. %v wins.", g.winner))
	case g.Stalled():
		addText(bts, vpadding+3, hpadding, "Neither side can move.")
	case g.slideFrom != nil:
		addText(bts, vpadding+3, hpadding, fmt.Sprintf("Sliding %v", *g.slideFrom))
	}
	addText(bts, vpadding+4, hpadding, fmt.Sprintf("Fingerprint: %016x", g.board.Fingerprint()))
	return strings.Join(append(bts, g.Position()), "\n")
}
