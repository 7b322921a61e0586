// Package consequence turns the ledger and talent relations into the
// narrative events shown at each phase of a film: walkouts, headlines,
// callbacks to earlier choices, warnings.
//
// Checks run in a fixed order and that order is presentation order.
// Callbacks drawn from a one-off moment in the ledger mark the backing entry
// surfaced, so a phase function that consumes entries also returns the
// updated ledger for the caller to keep.
package consequence

import (
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// StudioName is the player's studio as it appears in the trades.
const StudioName = "Pacific Dreams"

// Kind is the variant of a consequence.
type Kind string

const (
	KindWalkout  Kind = "walkout"
	KindMuse     Kind = "muse"
	KindHeadline Kind = "headline"
	KindCallback Kind = "callback"
	KindUpgrade  Kind = "upgrade"
	KindWarning  Kind = "warning"
)

// Phase is the game phase a consequence belongs to.
type Phase string

const (
	PhaseProduction Phase = "production"
	PhasePremiere   Phase = "premiere"
	PhasePreprod    Phase = "preprod"
	PhaseLot        Phase = "lot"
)

// Effects are deltas the caller applies to the film and studio.
type Effects struct {
	Quality int `json:"quality,omitempty"`
	Hype    int `json:"hype,omitempty"`
	Rep     int `json:"rep,omitempty"`
}

// Option is a player choice attached to a consequence.
type Option struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Effects *Effects `json:"effects,omitempty"`
}

// Consequence is one narrative event produced for display.
type Consequence struct {
	Kind        Kind             `json:"kind"`
	Phase       Phase            `json:"phase"`
	Actor       talent.Archetype `json:"actor,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Effects     *Effects         `json:"effects,omitempty"`
	Options     []Option         `json:"options,omitempty"`
	Dialogue    string           `json:"dialogue,omitempty"`
	Severity    talent.Severity  `json:"severity,omitempty"`
}

// Film is the read-only view of the film in progress.
type Film struct {
	Number  int                `json:"number"`
	Title   string             `json:"title"`
	Genre   string             `json:"genre"`
	Cast    []talent.Archetype `json:"cast"`
	Budget  string             `json:"budget"` // ledger.Budget* tier
	Funding ledger.Tag         `json:"funding"`
	Rating  string             `json:"rating"`
}

// HasCast reports whether key is in the film's cast.
func (f Film) HasCast(key talent.Archetype) bool {
	for _, c := range f.Cast {
		if c == key {
			return true
		}
	}
	return false
}

// Option IDs for walkout choices.
const (
	OptionAcceptDemand = "accept"
	OptionFire         = "fire"
)
