package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Pilot makes the player's choices for a film. Autopilot is the built-in
// one; a UI would be another.
type Pilot interface {
	Title(s *Session) string
	Preprod(s *Session) error // Market, concept, money and optional preprod work
	Cast(s *Session) []talent.Archetype
	Demand(s *Session, key talent.Archetype) bool
	Walkout(s *Session, c consequence.Consequence) string // Option ID
	Lot(s *Session) error
}

// Engine drives a session through whole films, one phase at a time.
type Engine struct {
	Films   int // Films to play; 0 means until cancelled
	Running bool

	// Callbacks for each phase, populated during setup.
	OnPreprod    func(s *Session, cs []consequence.Consequence)
	OnProduction func(s *Session, cs []consequence.Consequence)
	OnPremiere   func(s *Session, r PremiereReport)
	OnLot        func(s *Session, cs []consequence.Consequence, news []string)
}

// NewEngine creates an engine that plays films films.
func NewEngine(films int) *Engine {
	return &Engine{Films: films}
}

// Run plays films until the count is reached, ctx is cancelled, or Stop
// is called. Cancellation is checked between films.
func (e *Engine) Run(ctx context.Context, s *Session, p Pilot) error {
	e.Running = true
	defer func() { e.Running = false }()
	slog.Info("studio engine started", "session", s.ID.String(), "films", e.Films)

	for e.Running && (e.Films == 0 || s.Completed() < e.Films) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.step(s, p); err != nil {
			return fmt.Errorf("film %d: %w", s.Film.Number, err)
		}
	}

	slog.Info("studio engine stopped", "films", s.Completed(), "reputation", s.Reputation, "treasury", s.Treasury)
	return nil
}

// Stop halts the engine after the current film.
func (e *Engine) Stop() {
	e.Running = false
}

// step plays one film from pre-production to completion.
func (e *Engine) step(s *Session, p Pilot) error {
	cs, err := s.StartFilm(p.Title(s))
	if err != nil {
		return err
	}
	if e.OnPreprod != nil {
		e.OnPreprod(s, cs)
	}
	if err := p.Preprod(s); err != nil {
		return err
	}

	for _, key := range p.Cast(s) {
		if _, err := s.Hire(key); err != nil {
			if errors.Is(err, ErrRefused) {
				continue
			}
			return err
		}
		if t, _ := talent.Lookup(key); t.Demanding {
			if err := s.HandleDemand(key, p.Demand(s, key)); err != nil {
				return err
			}
		}
	}
	if err := s.LockCast(); err != nil {
		return err
	}

	cs, err = s.Production()
	if err != nil {
		return err
	}
	if e.OnProduction != nil {
		e.OnProduction(s, cs)
	}
	for _, c := range cs {
		if err := s.ResolveWalkout(c.Actor, p.Walkout(s, c)); err != nil {
			return err
		}
	}

	report, err := s.Premiere()
	if err != nil {
		return err
	}
	if e.OnPremiere != nil {
		e.OnPremiere(s, report)
	}

	if err := p.Lot(s); err != nil {
		return err
	}
	cs, err = s.Lot()
	if err != nil {
		return err
	}
	news := s.News()
	if e.OnLot != nil {
		e.OnLot(s, cs, news)
	}
	return s.CompleteFilm()
}
