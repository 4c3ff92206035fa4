package automatic

// Data collection for automatic games: computer vs computer, many at a time.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/fourline/fourline/board"
)

var (
	ErrBadOptions     = errors.New("games and threads must be positive, opening plies not negative")
	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")
)

var (
	CVCCounter *expvar.Int
	isPlaying  atomic.Bool
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
}

// Options configures Run.
type Options struct {
	Games        int
	Threads      int
	OpeningPlies int
}

// Summary aggregates the results of a batch of automatic games.
type Summary struct {
	Games   int
	XWins   int
	OWins   int
	Stalled int
	Capped  int
	Plies   Statistic

	lengths []float64
}

func (s *Summary) Add(r GameResult) {
	s.Games++
	switch r.Outcome {
	case OutcomeWin:
		if r.Winner == board.X {
			s.XWins++
		} else {
			s.OWins++
		}
	case OutcomeStalled:
		s.Stalled++
	case OutcomeCapped:
		s.Capped++
	}
	s.Plies.Push(float64(r.Plies))
	s.lengths = append(s.lengths, float64(r.Plies))
}

// Median game length in plies.
func (s *Summary) Median() float64 {
	if len(s.lengths) == 0 {
		return 0
	}
	xs := slices.Clone(s.lengths)
	slices.Sort(xs)
	return stat.Quantile(0.5, stat.Empirical, xs, nil)
}

// Histogram renders the distribution of game lengths. It is empty when
// every game had the same length.
func (s *Summary) Histogram() string {
	if len(s.lengths) < 2 || slices.Min(s.lengths) == slices.Max(s.lengths) {
		return ""
	}
	var sb strings.Builder
	hist := histogram.Hist(10, s.lengths)
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("histogram")
		return ""
	}
	return sb.String()
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games: %d\n", s.Games)
	fmt.Fprintf(&sb, "X wins: %d\nO wins: %d\nStalled: %d\nCapped at %d plies: %d\n",
		s.XWins, s.OWins, s.Stalled, MaxPlies, s.Capped)
	fmt.Fprintf(&sb, "Plies: mean %.2f ± %.2f (95%%), stdev %.2f, median %.1f\n",
		s.Plies.Mean(), ZVal(95)*s.Plies.StandardError(), s.Plies.Stdev(), s.Median())
	if h := s.Histogram(); h != "" {
		sb.WriteString("Game length histogram:\n")
		sb.WriteString(h)
	}
	return sb.String()
}

// Run plays opts.Games independent games on opts.Threads goroutines and
// summarises them. The first error, including ctx cancellation, stops all
// workers.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Games < 1 || opts.Threads < 1 || opts.OpeningPlies < 0 {
		return nil, ErrBadOptions
	}
	if !isPlaying.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer isPlaying.Store(false)

	log.Debug().Int("games", opts.Games).Int("threads", opts.Threads).
		Int("opening", opts.OpeningPlies).Msg("starting-automatic-games")
	CVCCounter.Set(0)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan GameResult, opts.Games)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.Games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return ctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < opts.Threads; t++ {
		g.Go(func() error {
			r, err := NewGameRunner(opts.OpeningPlies)
			if err != nil {
				return err
			}
			for i := range jobs {
				res, err := r.PlayGame(ctx)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				results <- res
				CVCCounter.Add(1)
			}
			log.Debug().Int("thread", t).Msg("thread-exiting")
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}
	sum := &Summary{}
	for res := range results {
		sum.Add(res)
	}
	log.Info().Int("games", sum.Games).Int("xwins", sum.XWins).Int("owins", sum.OWins).
		Msg("automatic-games-finished")
	return sum, nil
}
