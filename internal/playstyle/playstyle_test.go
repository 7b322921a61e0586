package playstyle

import (
	"testing"

	"github.com/talgya/backlot-mogul/internal/ledger"
)

func build(tags ...ledger.Tag) ledger.Ledger {
	c := ledger.NewCounter()
	var l ledger.Ledger
	for _, t := range tags {
		l = l.Append(c.NewEntry(1, ledger.BeatTalent, t))
	}
	return l
}

func TestEmptyLedgerIsAuteur(t *testing.T) {
	r := Derive(nil)
	if r.Style != Auteur || r.Label != "The Auteur" {
		t.Errorf("got %+v", r)
	}
	for s, v := range r.Scores {
		if v != 0 {
			t.Errorf("%s scored %d on an empty ledger", s, v)
		}
	}
	if len(r.Scores) != 6 {
		t.Errorf("expected 6 scores, got %d", len(r.Scores))
	}
}

func TestScoresNeverNegative(t *testing.T) {
	scores := Scores(build(ledger.TagCheapCast, ledger.TagCheapCast))
	if scores[Auteur] != 0 || scores[Shark] != 4 {
		t.Errorf("got %v", scores)
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		l    ledger.Ledger
		want Style
	}{
		{"loyalist", build(ledger.TagMuseUnlocked, ledger.TagTalentRehired), Loyalist},
		{"shark", build(ledger.TagDemandDenied, ledger.TagRideDemolished), Shark},
		{"populist", build(ledger.TagFilmHit, ledger.TagFilmHit, ledger.TagAllStarCast), Populist},
		{"gambler", build(ledger.TagGenreColdPick, ledger.TagBudgetBluffed), Gambler},
		// Accepted demands score auteur and loyalist equally; auteur comes first.
		{"tie", build(ledger.TagDemandAccepted), Auteur},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.l); got.Style != tt.want {
				t.Errorf("got %s (%v), want %s", got.Style, got.Scores, tt.want)
			}
		})
	}
}

func TestBudgetTiers(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{
		c.NewEntry(1, ledger.BeatMoney, ledger.TagBudgetTier, ledger.WithDetail(ledger.BudgetBlockbuster)),
		c.NewEntry(2, ledger.BeatMoney, ledger.TagBudgetTier, ledger.WithDetail(ledger.BudgetBlockbuster)),
		c.NewEntry(3, ledger.BeatMoney, ledger.TagBudgetTier, ledger.WithDetail(ledger.BudgetIndie)),
	}
	scores := Scores(l)
	if scores[Mogul] != 6 || scores[Gambler] != 2 || scores[Auteur] != 1 || scores[Shark] != 1 {
		t.Errorf("got %v", scores)
	}
	if got := Derive(l).Style; got != Mogul {
		t.Errorf("expected mogul, got %s", got)
	}
}
