package movegen

import (
	"github.com/fourline/fourline/move"
)

// PlayRecorderFunc is called once per generated play.
type PlayRecorderFunc func(*GridGenerator, *move.Move)

func AllPlaysRecorder(gen *GridGenerator, m *move.Move) {
	gen.plays = append(gen.plays, m)
}

// PlacementsOnlyRecorder drops slides.
func PlacementsOnlyRecorder(gen *GridGenerator, m *move.Move) {
	if m.Action() == move.MoveTypePlace {
		gen.plays = append(gen.plays, m)
	}
}
