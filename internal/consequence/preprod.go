package consequence

import (
	"fmt"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// CheckPreprod runs the pre-production rules before filmNumber starts. It
// returns the consequences and the ledger with every consumed entry marked
// surfaced; the caller must keep that ledger.
func CheckPreprod(l ledger.Ledger, rels talent.Relations, filmNumber int, rival nova.State) ([]Consequence, ledger.Ledger) {
	var out []Consequence
	add := func(c Consequence) {
		c.Phase = PhasePreprod
		out = append(out, c)
	}

	// The first building, remembered.
	if filmNumber == 3 {
		if e, ok := l.FirstBuilding(); ok && !e.Surfaced {
			add(Consequence{
				Kind:        KindCallback,
				Title:       "WHERE IT ALL STARTED",
				Description: fmt.Sprintf("The crew still eats lunch outside the %s, the first thing you ever built on this lot.", buildingName(e.Detail)),
				Effects:     &Effects{Hype: 2},
			})
			l = l.MarkSurfaced(e.Turn)
		}
	}

	if g := l.GenreStreak(); g != "" && filmNumber >= 4 {
		add(Consequence{
			Kind:        KindWarning,
			Title:       "AUDIENCE FATIGUE",
			Description: fmt.Sprintf("Three %s pictures in a row. Exhibitors say audiences know what a %s film looks like by now.", g, StudioName),
			Effects:     &Effects{Hype: -5},
		})
	}

	if l.IndieStreak() >= 3 && filmNumber >= 4 {
		add(Consequence{
			Kind:        KindWarning,
			Title:       "SMALL-TIME REPUTATION",
			Description: "Another shoestring budget. Agents are starting to call this a farm team.",
			Effects:     &Effects{Rep: -1},
		})
	}

	for _, t := range talent.Roster() {
		rel := rels.Get(t.Key)
		if rel.TimesHired != talent.MuseHires {
			continue
		}
		if e, ok := lastUnlock(l, t.Key); ok {
			if e.Surfaced {
				continue
			}
			l = l.MarkSurfaced(e.Turn)
		}
		add(Consequence{
			Kind:        KindMuse,
			Actor:       t.Key,
			Title:       fmt.Sprintf("%s IS YOUR MUSE", headlineName(t.Key)),
			Description: fmt.Sprintf("Three pictures together. %s now works for a discount and brings their best to every set.", t.Name),
			Effects:     &Effects{Quality: 5},
			Dialogue:    "Wherever you shoot next, I'm there.",
		})
	}

	for _, t := range talent.Roster() {
		rel := rels.Get(t.Key)
		if rel.Grudge < 3 || rel.IsBlacklisted {
			continue
		}
		add(Consequence{
			Kind:        KindHeadline,
			Actor:       t.Key,
			Title:       "BAD BLOOD: " + headlineName(t.Key) + " VS. PACIFIC DREAMS",
			Description: fmt.Sprintf("%s is telling anyone who will listen that the studio cannot be trusted.", t.Name),
			Effects:     &Effects{Rep: -1},
		})
	}

	if l.SelfFundStreak() >= 3 && filmNumber >= 4 {
		add(Consequence{
			Kind:        KindCallback,
			Title:       "TRUST ISSUES",
			Description: "Three pictures paid out of pocket. The bank wonders why you never let anyone else in.",
		})
	}

	if l.CountTag(ledger.TagTreasuryDip) >= 3 && filmNumber >= 3 {
		add(Consequence{
			Kind:        KindWarning,
			Title:       "TREASURY RAID",
			Description: "The accountants have flagged another withdrawal. The studio's reserves are running on fumes.",
			Effects:     &Effects{Rep: -1},
		})
	}

	if e, ok := l.LastByTag(ledger.TagFundingDistributor); ok && !e.Surfaced {
		if v, ok := l.LastVerdict(); ok {
			switch verdict := ledger.Verdict(v.Detail); {
			case verdict.Success():
				add(Consequence{
					Kind:        KindCallback,
					Actor:       talent.Archetype(e.Actor),
					Title:       "THE DISTRIBUTOR CALLS BACK",
					Description: "The distributor that backed your last picture wants first look at the next one. Their terms just got friendlier.",
					Effects:     &Effects{Rep: 1},
				})
				l = l.MarkSurfaced(e.Turn)
			case verdict == ledger.VerdictFlop:
				add(Consequence{
					Kind:        KindCallback,
					Actor:       talent.Archetype(e.Actor),
					Title:       "THE DISTRIBUTOR GOES QUIET",
					Description: "The distributor that backed your last picture has stopped taking meetings.",
					Effects:     &Effects{Rep: -1},
				})
				l = l.MarkSurfaced(e.Turn)
			}
		}
	}

	if filmNumber >= 4 {
		if e, ok := l.LastByTag(ledger.TagNovaCopiedGenre); ok && !e.Surfaced {
			title := e.MetaString("title")
			if f, ok := rival.LastFilm(); ok && title == "" {
				title = f.Title
			}
			add(Consequence{
				Kind:        KindCallback,
				Title:       "NOVA IS WATCHING",
				Description: fmt.Sprintf("Nova Pictures just announced %s, a %s picture. Sound familiar?", title, e.Detail),
				Effects:     &Effects{Hype: -3},
			})
			l = l.MarkSurfaced(e.Turn)
		}
	}

	if e, ok := l.LastByTag(ledger.TagRideDemolished); ok && !e.Surfaced {
		loyal := ridePeople(l, rels, e.Detail)
		desc := fmt.Sprintf("The %s came down this week. Nobody on the lot seemed to mind.", rideName(e.Detail))
		var eff *Effects
		if len(loyal) > 0 {
			desc = fmt.Sprintf("The %s came down this week. %s, who shot the picture it was built for, took it personally.", rideName(e.Detail), joinNames(loyal))
			eff = &Effects{Hype: -2}
		}
		add(Consequence{
			Kind:        KindCallback,
			Title:       "END OF AN ERA",
			Description: desc,
			Effects:     eff,
		})
		l = l.MarkSurfaced(e.Turn)
	}

	return out, l
}

func lastUnlock(l ledger.Ledger, key talent.Archetype) (ledger.Entry, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Tag == ledger.TagMuseUnlocked && l[i].Actor == string(key) {
			return l[i], true
		}
	}
	return ledger.Entry{}, false
}

// ridePeople finds talent hired on the film that built ride who still
// have positive loyalty.
func ridePeople(l ledger.Ledger, rels talent.Relations, ride string) []talent.Archetype {
	built := -1
	for _, e := range l.ByTag(ledger.TagRideBuilt) {
		if e.Detail == ride {
			built = e.Film
		}
	}
	if built < 0 {
		return nil
	}
	var out []talent.Archetype
	seen := make(map[talent.Archetype]bool)
	for _, e := range l.ByFilm(built) {
		if e.Tag != ledger.TagTalentHired {
			continue
		}
		key := talent.Archetype(e.Actor)
		if seen[key] || rels.Get(key).Loyalty <= 0 {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
