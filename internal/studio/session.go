// Package studio owns one game of Backlot Mogul: the ledger, talent
// relations, the rival, and the film in progress. Every player action is a
// method that records its entries and swaps in the new relation map in one
// step, so no caller ever sees half an update.
package studio

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/dialogue"
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/market"
	"github.com/talgya/backlot-mogul/internal/nova"
	"github.com/talgya/backlot-mogul/internal/playstyle"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Phase is where the current film stands.
type Phase string

const (
	PhaseIdle       Phase = "idle" // Between films
	PhasePreprod    Phase = "preprod"
	PhaseProduction Phase = "production"
	PhaseReleased   Phase = "released" // Premiere done, lot open
)

// Options configures a new game.
type Options struct {
	Seed       int64
	Reputation int // Starting reputation, 0–100
	Treasury   int // Starting cash in thousands
	Logger     *slog.Logger
}

// DefaultOptions returns the standard starting position.
func DefaultOptions() Options {
	return Options{Reputation: 35, Treasury: 3000}
}

// Session is one game in progress.
type Session struct {
	ID   uuid.UUID
	Seed int64

	counter   *ledger.Counter
	Ledger    ledger.Ledger
	Relations talent.Relations
	Nova      nova.State
	Market    *market.Market

	Reputation int
	Treasury   int
	Buildings  []string
	Rides      []string

	Film    consequence.Film
	Phase   Phase
	Quality int // 0–100, internal to the film in progress
	Hype    int // 0–100
	Costs   int // Spent on the film in progress

	walkouts    map[talent.Archetype]consequence.Consequence
	bluffCalled bool
	completed   int // Films finished
	rng         *rand.Rand
	log         *slog.Logger
}

// NewGame starts a fresh game.
func NewGame(opts Options) *Session {
	s := &Session{counter: ledger.NewCounter()}
	s.reset(opts)
	return s
}

// Reset throws the current game away and starts over with opts. This is
// the only place the turn counter restarts.
func (s *Session) Reset(opts Options) {
	s.counter.Reset()
	s.reset(opts)
}

func (s *Session) reset(opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s.ID = uuid.New()
	s.Seed = opts.Seed
	s.Ledger = nil
	s.Relations = talent.NewRelations()
	s.Nova = nova.New()
	s.Market = market.New(opts.Seed)
	s.Reputation = opts.Reputation
	s.Treasury = opts.Treasury
	s.Buildings = nil
	s.Rides = nil
	s.Film = consequence.Film{}
	s.Phase = PhaseIdle
	s.Quality, s.Hype, s.Costs = 0, 0, 0
	s.walkouts = nil
	s.bluffCalled = false
	s.completed = 0
	s.rng = rand.New(rand.NewSource(opts.Seed))
	s.log = logger.With("session", s.ID.String())
	s.log.Info("new game", "seed", opts.Seed, "reputation", s.Reputation, "treasury", s.Treasury)
}

// Turn returns the most recently issued ledger turn.
func (s *Session) Turn() int {
	return s.counter.Turn()
}

// Completed returns how many films have been finished.
func (s *Session) Completed() int {
	return s.completed
}

// record appends one entry for the film in progress.
func (s *Session) record(beat ledger.Beat, tag ledger.Tag, opts ...ledger.Option) ledger.Entry {
	e := s.counter.NewEntry(s.Film.Number, beat, tag, opts...)
	s.Ledger = s.Ledger.Append(e)
	s.log.Debug("ledger entry", "turn", e.Turn, "film", e.Film, "tag", e.Tag, "actor", e.Actor, "detail", e.Detail)
	return e
}

func (s *Session) requirePhase(want Phase) error {
	if s.Phase != want {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongPhase, s.Phase, want)
	}
	return nil
}

// Apply adds consequence effects to the film and studio.
func (s *Session) Apply(e *consequence.Effects) {
	if e == nil {
		return
	}
	s.Quality = clamp(s.Quality+e.Quality, 0, 100)
	s.Hype = clamp(s.Hype+e.Hype, 0, 100)
	s.Reputation = clamp(s.Reputation+e.Rep, 0, 100)
}

// ApplyAll applies every consequence's effects in order.
func (s *Session) ApplyAll(cs []consequence.Consequence) {
	for _, c := range cs {
		s.Apply(c.Effects)
	}
}

// spend takes cost out of the treasury, raiding reserves when it runs dry.
func (s *Session) spend(beat ledger.Beat, cost int, reason string) {
	s.Costs += cost
	s.Treasury -= cost
	if s.Treasury >= 0 {
		return
	}
	short := -s.Treasury
	s.Treasury = 0
	s.record(beat, ledger.TagTreasuryDip, ledger.WithDetail(reason), ledger.WithMeta("amount", short), ledger.WithSentiment(-1))
	s.Reputation = clamp(s.Reputation-1, 0, 100)
	s.log.Warn("treasury dip", "film", s.Film.Number, "shortfall", short, "reason", reason)
}

// DialogueCtx builds the context dialogue predicates see.
func (s *Session) DialogueCtx(key string, actor talent.Archetype) dialogue.Ctx {
	return dialogue.Ctx{
		Ledger:    s.Ledger,
		Film:      s.Film.Number,
		Key:       key,
		Relations: s.Relations,
		Actor:     actor,
		Rand:      s.rng,
	}
}

// PlayStyle derives the player's style so far.
func (s *Session) PlayStyle() playstyle.Result {
	return playstyle.Derive(s.Ledger)
}

// News returns the trade headlines and consumes what they report.
func (s *Session) News() []string {
	news, l := consequence.GenerateNews(s.Ledger, s.Nova)
	s.Ledger = l
	return news
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
