package consequence

import (
	"fmt"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Premiere headline titles referenced by callers and tests.
const (
	TitleColdStreak = "TROUBLE AT PACIFIC DREAMS"
	TitleHotStreak  = "PACIFIC DREAMS ON A ROLL"
	TitleHotStreak3 = "PACIFIC DREAMS CAN'T MISS"
	TitleAllStar    = "ALL THOSE STARS, NOWHERE TO HIDE"
	TitleComeback   = "THE COMEBACK IS REAL"
)

// CheckPremiere runs every premiere-night rule for film given its verdict.
// l is the ledger as it stood before this verdict was recorded. The rules
// are independent; any number of them may fire.
func CheckPremiere(l ledger.Ledger, rels talent.Relations, film Film, verdict ledger.Verdict) []Consequence {
	var out []Consequence
	add := func(c Consequence) {
		c.Phase = PhasePremiere
		out = append(out, c)
	}

	// Special archetypes.
	if film.HasCast(talent.HasBeen) {
		switch {
		case verdict == ledger.VerdictBlockbuster:
			add(Consequence{
				Kind:        KindCallback,
				Actor:       talent.HasBeen,
				Title:       TitleComeback,
				Description: fmt.Sprintf("Nobody returned their calls for a decade. After %s, everybody is calling.", film.Title),
				Effects:     &Effects{Hype: 5, Rep: 2},
				Dialogue:    "You took a chance on me when nobody else would. I won't forget it.",
			})
			if !rels.Get(talent.HasBeen).IsUpgraded {
				add(Consequence{
					Kind:        KindUpgrade,
					Actor:       talent.HasBeen,
					Title:       "A STAR IS REBORN",
					Description: "The Has-Been is bankable again. Their craft and star power are permanently boosted.",
				})
			}
		case verdict == ledger.VerdictFlop:
			add(Consequence{
				Kind:        KindHeadline,
				Actor:       talent.HasBeen,
				Title:       "STILL HAS-BEEN",
				Description: fmt.Sprintf("Critics say %s proved the old star had nothing left.", film.Title),
				Effects:     &Effects{Rep: -1},
			})
		}
	}
	if film.HasCast(talent.NepoBaby) && verdict == ledger.VerdictFlop {
		add(Consequence{
			Kind:        KindHeadline,
			Actor:       talent.NepoBaby,
			Title:       "FAMILY NAME CAN'T SAVE IT",
			Description: "The Nepo Baby's famous parents were seen leaving the premiere early.",
			Effects:     &Effects{Rep: -1},
		})
	}
	if film.HasCast(talent.Influencer) && verdict.Success() {
		add(Consequence{
			Kind:        KindHeadline,
			Actor:       talent.Influencer,
			Title:       "FOLLOWERS BECOME TICKET BUYERS",
			Description: "The Influencer's fans turned out in force. Twelve million posts and counting.",
			Effects:     &Effects{Hype: 5},
		})
	}

	// Expensive failure.
	if verdict == ledger.VerdictFlop {
		for _, e := range l.ByTag(ledger.TagAllStarCast) {
			if e.Film != film.Number {
				continue
			}
			add(Consequence{
				Kind:        KindHeadline,
				Title:       TitleAllStar,
				Description: fmt.Sprintf("%s stacked the marquee for %s and the audience stayed home anyway.", StudioName, film.Title),
				Effects:     &Effects{Rep: -3},
			})
			break
		}
	}

	// A-listers take it personally.
	for _, key := range film.Cast {
		t, ok := talent.Lookup(key)
		if !ok || t.Tier != talent.TierA {
			continue
		}
		rel := rels.Get(key)
		switch {
		case verdict == ledger.VerdictFlop && rel.Grudge >= 1:
			add(Consequence{
				Kind:        KindHeadline,
				Actor:       key,
				Title:       fmt.Sprintf("%s BLAMES THE STUDIO", headlineName(key)),
				Description: fmt.Sprintf("%s tells reporters the studio's meddling sank %s.", t.Name, film.Title),
				Effects:     &Effects{Rep: -2},
				Dialogue:    "I warned them. Nobody listens to the talent.",
			})
		case verdict == ledger.VerdictBlockbuster && rel.Loyalty >= 3:
			add(Consequence{
				Kind:        KindHeadline,
				Actor:       key,
				Title:       headlineName(key) + " THANKS PACIFIC DREAMS",
				Description: fmt.Sprintf("%s calls the studio family in an emotional premiere-night speech.", t.Name),
				Effects:     &Effects{Rep: 2, Hype: 3},
				Dialogue:    "This studio believed in me. This one's for them.",
			})
		}
	}

	// Streaks.
	prior := l.VerdictStreak()
	run := 1
	if prior.Type == verdict {
		run = prior.Count + 1
	}
	if verdict.Success() && run >= 2 {
		c := Consequence{
			Kind:        KindHeadline,
			Title:       TitleHotStreak,
			Description: fmt.Sprintf("%d in a row. Rival studios are studying the %s playbook.", run, StudioName),
			Effects:     &Effects{Hype: 5, Rep: 1},
		}
		if run >= 3 {
			c.Title = TitleHotStreak3
			c.Description = fmt.Sprintf("%d straight. The trades have run out of superlatives for %s.", run, StudioName)
			c.Effects = &Effects{Hype: 10, Rep: 2}
		}
		add(c)
	}
	if verdict == ledger.VerdictFlop && prior.Type == ledger.VerdictFlop && prior.Count >= 1 {
		add(Consequence{
			Kind:        KindWarning,
			Title:       TitleColdStreak,
			Description: fmt.Sprintf("%d flops in a row. Investors are asking questions and agents have stopped returning calls.", run),
			Effects:     &Effects{Rep: -2},
		})
	}

	return out
}
