package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/fourline/fourline/automatic"
	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/config"
	"github.com/fourline/fourline/equity"
	"github.com/fourline/fourline/game"
	"github.com/fourline/fourline/minimax"
	"github.com/fourline/fourline/move"
	"github.com/fourline/fourline/movegen"
)

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) Bool(key string) bool {
	return strings.ToLower(c[key]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) requireGame() error {
	if sc.game == nil {
		return errNoGame
	}
	return nil
}

func (sc *ShellController) startGame(v game.Variant) error {
	rules, err := game.NewBasicGameRules(v)
	if err != nil {
		return err
	}
	sc.game = game.NewGame(rules)
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	v := game.Variant(sc.config.GetString(config.ConfigVariant))
	if len(cmd.args) > 0 {
		v = game.Variant(cmd.args[0])
	}
	if err := sc.startGame(v); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

// computerReply lets the computer answer if it is now on turn.
func (sc *ShellController) computerReply() (string, error) {
	if !sc.game.IsComputerTurn() {
		return "", nil
	}
	m, err := sc.game.PlayComputerTurn(context.Background())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Computer plays %s\n", m.ShortDescription()), nil
}

func (sc *ShellController) click(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: click <coord>")
	}
	pos, err := board.ParsePos(cmd.args[0])
	if err != nil {
		return nil, err
	}
	mover := sc.game.PlayerOnTurn()
	if mover == board.Empty {
		return nil, game.ErrGameOver
	}
	var out strings.Builder
	if sc.game.AttemptPlaceOrSlide(mover, pos.Row, pos.Col) {
		reply, err := sc.computerReply()
		if err != nil {
			return nil, err
		}
		out.WriteString(reply)
	} else if _, sliding := sc.game.SlideSource(); !sliding {
		out.WriteString("No move made.\n")
	}
	out.WriteString(sc.game.ToDisplayText())
	return msg(out.String()), nil
}

// commit plays a validated move for the player on turn, then lets the
// computer reply.
func (sc *ShellController) commit(m *move.Move) (*Response, error) {
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	return msg(reply + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: place <coord>")
	}
	pos, err := board.ParsePos(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return sc.commit(move.NewPlacement(sc.game.PlayerOnTurn(), pos))
}

func (sc *ShellController) slide(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: slide <from> <to>")
	}
	m, err := move.FromUserText(sc.game.PlayerOnTurn(), cmd.args[0]+"-"+cmd.args[1])
	if err != nil {
		return nil, err
	}
	return sc.commit(m)
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	mover := sc.game.PlayerOnTurn()
	if mover == board.Empty {
		return nil, game.ErrGameOver
	}
	gen := movegen.NewGridGenerator()
	switch cmd.options.String("only") {
	case "":
	case "place":
		gen.SetPlayRecorder(movegen.PlacementsOnlyRecorder)
	default:
		return nil, errors.New("-only takes place")
	}
	plays := gen.GenAll(sc.game.Board(), mover)
	if len(plays) == 0 {
		return msg("No moves for " + mover.String()), nil
	}
	rows := lo.Map(plays, func(m *move.Move, i int) string {
		return fmt.Sprintf("%3d: %-8s%s", i+1, m.ShortDescription(), m.MoveTypeString())
	})
	return msg(fmt.Sprintf("%d moves for %v\n%s", len(plays), mover, strings.Join(rows, "\n"))), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	b := sc.game.Board()
	return msg(fmt.Sprintf("Open lines: X %d, O %d\nValue: %d",
		equity.OpenLines(board.X, b), equity.OpenLines(board.O, b),
		equity.NewOpenLinesCalculator().Evaluate(b))), nil
}

func (sc *ShellController) search(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	mover := sc.game.PlayerOnTurn()
	if mover == board.Empty {
		return nil, game.ErrGameOver
	}
	depth, err := cmd.options.IntDefault("depth", minimax.DefaultDepth)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", minimax.ErrBadDepth, depth)
	}
	solver := minimax.NewSolver()
	solver.SetDepth(depth)
	if tf := cmd.options.String("trace"); tf != "" {
		f, err := os.Create(tf)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		solver.SetLogStream(f)
	}
	val, pv, err := solver.Solve(context.Background(), sc.game.Board(), mover)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("value", val).Int("pv-length", len(pv)).Msg("shell-search")
	best := "no move"
	if len(pv) > 0 {
		best = pv[0].ShortDescription()
	}
	return msg(fmt.Sprintf("Best: %s\nValue: %d\nNodes: %d\n%s",
		best, val, solver.Nodes(), solver.PrincipalVariation())), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	m, err := sc.game.PlayComputerTurn(context.Background())
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Computer plays %s\n%s", m.ShortDescription(), sc.game.ToDisplayText())), nil
}

// variantForDim keeps the current variant when the board fits it.
func (sc *ShellController) variantForDim(dim int) (game.Variant, error) {
	if sc.game != nil && sc.game.Rules().Dim() == dim {
		return sc.game.Rules().Variant(), nil
	}
	switch dim {
	case board.ClassicDim:
		return game.VarClassic, nil
	case board.CompactDim:
		return game.VarCompact, nil
	}
	return "", fmt.Errorf("%w: %dx%d", game.ErrPositionMismatch, dim, dim)
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if err := sc.requireGame(); err != nil {
			return nil, err
		}
		return msg(sc.game.Position()), nil
	}
	b, side, err := board.ParsePosition(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	if b.Rows() != b.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", game.ErrPositionMismatch, b.Rows(), b.Cols())
	}
	v, err := sc.variantForDim(b.Rows())
	if err != nil {
		return nil, err
	}
	if sc.game == nil || sc.game.Rules().Variant() != v {
		if err := sc.startGame(v); err != nil {
			return nil, err
		}
	}
	if err := sc.game.LoadPosition(b, side); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	opening, err := cmd.options.IntDefault("opening", sc.config.GetInt(config.ConfigAutoplayOpeningPlies))
	if err != nil {
		return nil, err
	}
	sum, err := automatic.Run(context.Background(), automatic.Options{
		Games:        games,
		Threads:      threads,
		OpeningPlies: opening,
	})
	if err != nil {
		return nil, err
	}
	return msg(sum.String()), nil
}
