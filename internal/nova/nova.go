// Package nova models Nova Pictures, the rival studio that opens across the
// street in the second film and shadows the player's slate.
package nova

import (
	"fmt"
	"math/rand"

	"github.com/talgya/backlot-mogul/internal/ledger"
)

// ArrivalFilm is the player film during which Nova opens for business.
const ArrivalFilm = 2

// Film is one Nova release.
type Film struct {
	Title        string         `json:"title"`
	Genre        string         `json:"genre"`
	Verdict      ledger.Verdict `json:"verdict"`
	CopiedPlayer bool           `json:"copied_player"`
}

// State is everything tracked about the rival.
type State struct {
	Introduced  bool           `json:"introduced"`
	Films       []Film         `json:"films"`
	Reputation  int            `json:"reputation"`
	LastVerdict ledger.Verdict `json:"last_verdict,omitempty"`
}

// New returns a rival that has not arrived yet.
func New() State {
	return State{Reputation: 40}
}

// LastFilm returns Nova's most recent release.
func (s State) LastFilm() (Film, bool) {
	if len(s.Films) == 0 {
		return Film{}, false
	}
	return s.Films[len(s.Films)-1], true
}

var titleStems = []string{"Midnight", "Crimson", "Neon", "Silent", "Last", "Golden", "Broken", "Electric"}
var titleNouns = []string{"Frontier", "Harbor", "Signal", "Highway", "Kingdom", "Reunion", "Protocol", "Summer"}

// Advance releases Nova's film for the player's film number. Before the
// arrival film nothing happens. When the player has a favorite genre Nova
// copies it half the time.
func Advance(s State, film int, favoriteGenre string, genres []string, rng *rand.Rand) State {
	if film < ArrivalFilm || len(genres) == 0 {
		return s
	}
	s.Introduced = true

	genre := genres[rng.Intn(len(genres))]
	copied := false
	if favoriteGenre != "" && rng.Float64() < 0.5 {
		genre = favoriteGenre
		copied = true
	}

	roll := rng.Float64() + float64(s.Reputation-40)/200
	verdict := ledger.VerdictModest
	switch {
	case roll > 0.85:
		verdict = ledger.VerdictBlockbuster
	case roll > 0.6:
		verdict = ledger.VerdictHit
	case roll < 0.2:
		verdict = ledger.VerdictFlop
	}

	switch verdict {
	case ledger.VerdictBlockbuster:
		s.Reputation += 5
	case ledger.VerdictHit:
		s.Reputation += 2
	case ledger.VerdictFlop:
		s.Reputation -= 3
	}

	title := fmt.Sprintf("%s %s", titleStems[rng.Intn(len(titleStems))], titleNouns[rng.Intn(len(titleNouns))])
	s.Films = append(append([]Film(nil), s.Films...), Film{
		Title:        title,
		Genre:        genre,
		Verdict:      verdict,
		CopiedPlayer: copied,
	})
	s.LastVerdict = verdict
	return s
}
