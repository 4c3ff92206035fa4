// Package automatic plays computer-vs-computer games of fourline and
// collects statistics about how they end.
package automatic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/game"
	"github.com/fourline/fourline/movegen"
)

// MaxPlies caps a single automatic game. Sliding lets a game cycle forever.
const MaxPlies = 200

// Outcome is how an automatic game ended.
type Outcome uint8

const (
	OutcomeWin Outcome = iota
	OutcomeStalled
	OutcomeCapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeStalled:
		return "stalled"
	case OutcomeCapped:
		return "capped"
	}
	return "unknown"
}

// GameResult is the record of one finished automatic game.
type GameResult struct {
	Outcome Outcome
	// Winner is only set for OutcomeWin.
	Winner board.Symbol
	Plies  int
}

// GameRunner is the master struct here for the automatic game logic. A
// runner owns its game and is used by one goroutine at a time.
type GameRunner struct {
	game         *game.Game
	openingPlies int
}

// NewGameRunner returns a runner for compact (4x4) games in which both
// sides are played by the searcher after openingPlies random plies.
func NewGameRunner(openingPlies int) (*GameRunner, error) {
	rules, err := game.NewBasicGameRules(game.VarCompact)
	if err != nil {
		return nil, err
	}
	return &GameRunner{game: game.NewGame(rules), openingPlies: openingPlies}, nil
}

func (r *GameRunner) StartGame() {
	r.game.StartGame()
}

// Game is the game being played.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayRandomTurn plays a uniformly random legal move for the player on turn.
func (r *GameRunner) PlayRandomTurn() error {
	b := r.game.Board()
	plays := movegen.GenAll(b, r.game.PlayerOnTurn())
	if len(plays) == 0 {
		return game.ErrStalled
	}
	return r.game.PlayMove(plays[frand.Intn(len(plays))])
}

// PlayBestTurn lets the searcher play for whichever side is on turn.
func (r *GameRunner) PlayBestTurn(ctx context.Context) error {
	_, err := r.game.PlayBestMove(ctx)
	return err
}

// PlayGame plays a fresh game to the end and reports how it ended.
func (r *GameRunner) PlayGame(ctx context.Context) (GameResult, error) {
	r.StartGame()
	for r.game.Playing() != game.Final {
		if r.game.Turn() >= MaxPlies {
			return GameResult{Outcome: OutcomeCapped, Plies: r.game.Turn()}, nil
		}
		if r.game.Stalled() {
			return GameResult{Outcome: OutcomeStalled, Plies: r.game.Turn()}, nil
		}
		var err error
		if r.game.Turn() < r.openingPlies {
			err = r.PlayRandomTurn()
		} else {
			err = r.PlayBestTurn(ctx)
		}
		if err != nil {
			if errors.Is(err, game.ErrStalled) {
				return GameResult{Outcome: OutcomeStalled, Plies: r.game.Turn()}, nil
			}
			return GameResult{}, fmt.Errorf("turn %d: %w", r.game.Turn(), err)
		}
	}
	log.Debug().Str("winner", r.game.Winner().String()).Int("plies", r.game.Turn()).
		Str("position", r.game.Position()).Msg("game-over")
	return GameResult{Outcome: OutcomeWin, Winner: r.game.Winner(), Plies: r.game.Turn()}, nil
}
