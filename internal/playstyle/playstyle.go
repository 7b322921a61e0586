// Package playstyle reads the ledger and names the kind of mogul the
// player has been.
package playstyle

import "github.com/talgya/backlot-mogul/internal/ledger"

// Style is one of the six archetypes.
type Style string

const (
	Auteur   Style = "auteur"
	Mogul    Style = "mogul"
	Populist Style = "populist"
	Gambler  Style = "gambler"
	Loyalist Style = "loyalist"
	Shark    Style = "shark"
)

// Order is the scoring order; ties go to the earliest style.
var Order = []Style{Auteur, Mogul, Populist, Gambler, Loyalist, Shark}

type profile struct {
	Label       string
	Description string
}

var profiles = map[Style]profile{
	Auteur:   {"The Auteur", "You made the pictures you wanted to make and let the market catch up."},
	Mogul:    {"The Mogul", "Big budgets, bigger stars, biggest openings. You built an empire."},
	Populist: {"The Crowd-Pleaser", "You gave audiences what they wanted, and they kept coming back."},
	Gambler:  {"The Gambler", "Cold genres, bluffed budgets, all-in bets. Some of them even paid off."},
	Loyalist: {"The Loyalist", "You kept your people close and they did their best work for you."},
	Shark:    {"The Shark", "Cheap casts, hard bargains, nobody's friend. The books looked great."},
}

// weight is one signal's contribution to a style.
type weight struct {
	style Style
	mult  int
}

// signal counts one pattern in the ledger.
type signal struct {
	count   func(ledger.Ledger) int
	weights []weight
}

func tag(t ledger.Tag) func(ledger.Ledger) int {
	return func(l ledger.Ledger) int { return l.CountTag(t) }
}

func budget(tier string) func(ledger.Ledger) int {
	return func(l ledger.Ledger) int { return l.CountDetail(ledger.TagBudgetTier, tier) }
}

var signals = []signal{
	{tag(ledger.TagDemandAccepted), []weight{{Auteur, 2}, {Loyalist, 2}}},
	{budget(ledger.BudgetIndie), []weight{{Auteur, 1}, {Shark, 1}}},
	{tag(ledger.TagGenreColdPick), []weight{{Auteur, 2}, {Gambler, 3}}},
	{tag(ledger.TagCheapCast), []weight{{Auteur, -1}, {Shark, 2}}},
	{budget(ledger.BudgetBlockbuster), []weight{{Mogul, 3}, {Gambler, 1}}},
	{tag(ledger.TagAllStarCast), []weight{{Mogul, 2}, {Populist, 1}}},
	{tag(ledger.TagFilmBlockbuster), []weight{{Mogul, 2}}},
	{tag(ledger.TagFilmHit), []weight{{Populist, 2}}},
	{tag(ledger.TagBudgetBluffed), []weight{{Gambler, 2}}},
	{tag(ledger.TagTalentRehired), []weight{{Loyalist, 3}}},
	{tag(ledger.TagMuseUnlocked), []weight{{Loyalist, 5}}},
	{tag(ledger.TagDemandDenied), []weight{{Shark, 3}}},
	{tag(ledger.TagRideDemolished), []weight{{Shark, 2}}},
}

// Result is the derived play style.
type Result struct {
	Style       Style         `json:"style"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Scores      map[Style]int `json:"scores"`
}

// Scores computes every style's score. Scores never go below zero.
func Scores(l ledger.Ledger) map[Style]int {
	scores := make(map[Style]int, len(Order))
	for _, s := range Order {
		scores[s] = 0
	}
	for _, sig := range signals {
		n := sig.count(l)
		if n == 0 {
			continue
		}
		for _, w := range sig.weights {
			scores[w.style] += n * w.mult
		}
	}
	for s, v := range scores {
		if v < 0 {
			scores[s] = 0
		}
	}
	return scores
}

// Derive picks the style with the strictly highest score.
func Derive(l ledger.Ledger) Result {
	scores := Scores(l)
	best := Auteur
	for _, s := range Order {
		if scores[s] > scores[best] {
			best = s
		}
	}
	p := profiles[best]
	return Result{Style: best, Label: p.Label, Description: p.Description, Scores: scores}
}
