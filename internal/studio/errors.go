package studio

import "errors"

// Errors returned when a session is driven out of order or with bad input.
// The narrative core never errors; only the session's bookkeeping does.
var (
	ErrNoFilm          = errors.New("no film in progress")
	ErrWrongPhase      = errors.New("action not allowed in this phase")
	ErrUnknownTalent   = errors.New("unknown talent")
	ErrAlreadyCast     = errors.New("talent already cast")
	ErrRefused         = errors.New("talent refused")
	ErrNotCast         = errors.New("talent not in cast")
	ErrUnknownGenre    = errors.New("unknown genre")
	ErrUnknownBudget   = errors.New("unknown budget tier")
	ErrUnknownFunding  = errors.New("unknown funding source")
	ErrUnknownBuilding = errors.New("unknown building")
	ErrAlreadyBuilt    = errors.New("already built")
	ErrNoRide          = errors.New("no such ride")
	ErrUnknownOption   = errors.New("unknown option")
	ErrCannotAfford    = errors.New("cannot afford")
)
