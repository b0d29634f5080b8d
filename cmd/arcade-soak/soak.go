package main

import (
	"io"
	"log"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/plus3/arcade/frame"
	"github.com/plus3/arcade/games"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
	"github.com/plus3/arcade/session"
)

// playerActions lists the keys a random player may press in each game.
var playerActions = map[string][]input.Action{
	"snake":  {input.Up, input.Down, input.Left, input.Right, input.Faster, input.Slower},
	"tetris": {input.Up, input.Down, input.Left, input.Right, input.Primary},
}

// GameStats aggregates finished games of one kind.
type GameStats struct {
	Name       string
	Games      int
	BestScore  int
	TotalScore int
	BestCount  int
	CountLabel string
}

func (g *GameStats) AvgScore() int {
	if g.Games == 0 {
		return 0
	}
	return g.TotalScore / g.Games
}

func (g *GameStats) record(st session.Stats) {
	g.Games++
	g.TotalScore += st.Score
	g.BestScore = max(g.BestScore, st.Score)
	g.BestCount = max(g.BestCount, st.Count)
	g.CountLabel = st.CountLabel
}

// Soak drives sessions of every game on recording surfaces with a simulated
// clock, restarting each one as soon as it ends.
type Soak struct {
	scheduler *frame.Scheduler
	rng       *rand.Rand
	sessions  []*session.Session
	actions   [][]input.Action
	results   map[string]*GameStats

	clock time.Time
	step  time.Duration
	// pressChance is the per-frame probability that a session gets a key press.
	pressChance float64
}

// NewSoak creates perGame sessions of every game kind.
func NewSoak(perGame int, seed uint64, step time.Duration, logger *log.Logger) (*Soak, error) {
	s := &Soak{
		scheduler:   frame.NewScheduler(),
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		results:     make(map[string]*GameStats),
		clock:       time.Unix(0, 0),
		step:        step,
		pressChance: 0.25,
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	for _, e := range games.All() {
		stats := &GameStats{Name: e.Name}
		s.results[e.Name] = stats

		for range perGame {
			game, err := e.New(rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64())))
			if err != nil {
				return nil, err
			}

			sess := session.New(game, s.scheduler, render.NewRecorder(e.Width, e.Height))
			sess.SetLogger(logger)
			if e.Preview > 0 {
				sess.SetPreview(render.NewRecorder(e.Preview, e.Preview))
			}
			sess.Subscribe(session.ListenerFuncs{
				OnOver: func(st session.Stats) {
					stats.record(st)
					s.scheduler.Defer(sess.Start)
				},
			})

			s.sessions = append(s.sessions, sess)
			s.actions = append(s.actions, playerActions[e.Name])
		}
	}
	return s, nil
}

// Start begins every session.
func (s *Soak) Start() {
	for _, sess := range s.sessions {
		sess.Start()
	}
}

// Frame advances the simulated clock by one step, presses random keys and runs
// one scheduler frame.
func (s *Soak) Frame() {
	s.clock = s.clock.Add(s.step)
	for i, sess := range s.sessions {
		if s.rng.Float64() >= s.pressChance {
			continue
		}
		actions := s.actions[i]
		sess.Input(actions[s.rng.IntN(len(actions))], s.clock)
	}
	s.scheduler.Once(s.clock)
}

// Elapsed returns the simulated time covered so far.
func (s *Soak) Elapsed() time.Duration {
	return s.clock.Sub(time.Unix(0, 0))
}

// Results returns per-game aggregates sorted by name.
func (s *Soak) Results() []*GameStats {
	out := make([]*GameStats, 0, len(s.results))
	for _, g := range s.results {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Soak) Scheduler() *frame.Scheduler { return s.scheduler }
