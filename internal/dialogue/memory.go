// Memory candidates: lines that only make sense because of something the
// player did earlier. Higher priority wins; equal priority goes to the
// candidate listed first.
package dialogue

import (
	"fmt"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Speakers.
const (
	Marty   Character = "marty"   // Talent agent
	Dolores Character = "dolores" // Studio accountant
	Vivian  Character = "vivian"  // Trade critic
	Rex     Character = "rex"     // Head of Nova Pictures
	Pip     Character = "pip"     // Assistant
)

// Contexts.
const (
	Greeting Context = "greeting"
	Market   Context = "market"
	Casting  Context = "casting"
	Budget   Context = "budget"
	Funding  Context = "funding"
	Premiere Context = "premiere"
	Rating   Context = "rating"
	Walkout  Context = "walkout"
	Lot      Context = "lot"
	Taunt    Context = "taunt"
	Farewell Context = "farewell"
)

func registerMemories(e *Engine) {
	e.Register(Marty, Greeting,
		Candidate{
			Name:     "flop-streak",
			Priority: 100,
			When: func(c Ctx) bool {
				s := c.Ledger.VerdictStreak()
				return s.Type == ledger.VerdictFlop && s.Count >= 2
			},
			Say: Computed(func(c Ctx) string {
				return fmt.Sprintf("%d bombs in a row, kid. People are starting to say your name in the past tense.", c.Ledger.VerdictStreak().Count)
			}),
		},
		Candidate{
			Name:     "genre-rut",
			Priority: 80,
			When:     func(c Ctx) bool { return c.Ledger.GenreStreak() != "" },
			Say: Computed(func(c Ctx) string {
				return fmt.Sprintf("Another %s picture? I love you, but the audience might not.", c.Ledger.GenreStreak())
			}),
		},
		Candidate{
			Name:     "muse",
			Priority: 70,
			When:     func(c Ctx) bool { return museOf(c) != "" },
			Say: Computed(func(c Ctx) string {
				return fmt.Sprintf("%s keeps asking when the next one shoots. That's loyalty, kid.", talent.Name(museOf(c)))
			}),
		},
		Candidate{
			Name:     "first-hit",
			Priority: 60,
			When: func(c Ctx) bool {
				return c.Ledger.CountTag(ledger.TagFilmHit) == 1 && c.Ledger.CountTag(ledger.TagFilmBlockbuster) == 0
			},
			Say: Fixed("Still riding that first hit? Good. Ride it. It won't last."),
		},
	)

	e.Register(Marty, Casting,
		Candidate{
			Name:     "blacklist",
			Priority: 100,
			When:     func(c Ctx) bool { return c.Actor != "" && c.Relations.Get(c.Actor).IsBlacklisted },
			Say: Computed(func(c Ctx) string {
				return fmt.Sprintf("%s? After what happened? Their lawyer won't even let me say your name.", talent.Name(c.Actor))
			}),
		},
		Candidate{
			Name:     "grudge",
			Priority: 90,
			When:     func(c Ctx) bool { return c.Actor != "" && c.Relations.Get(c.Actor).Grudge >= 2 },
			Say: Computed(func(c Ctx) string {
				return fmt.Sprintf("%s remembers every 'no' you ever gave them. Expect to pay for it.", talent.Name(c.Actor))
			}),
		},
		Candidate{
			Name:     "rehire",
			Priority: 50,
			When:     func(c Ctx) bool { return c.Actor != "" && c.Ledger.TimesHired(string(c.Actor)) > 0 },
			Say: Computed(func(c Ctx) string {
				n := c.Ledger.TimesHired(string(c.Actor))
				if n == 1 {
					return fmt.Sprintf("%s again? They'll like that.", talent.Name(c.Actor))
				}
				return fmt.Sprintf("%s, picture number %d together. People will talk.", talent.Name(c.Actor), n+1)
			}),
		},
	)

	e.Register(Dolores, Budget,
		Candidate{
			Name:     "treasury-raids",
			Priority: 100,
			When:     func(c Ctx) bool { return c.Ledger.CountTag(ledger.TagTreasuryDip) >= 2 },
			Say:      Fixed("Before you ask: no, we cannot dip into the reserves again."),
		},
		Candidate{
			Name:     "indie-habit",
			Priority: 80,
			When:     func(c Ctx) bool { return c.Ledger.IndieStreak() >= 2 },
			Say:      Fixed("Another shoestring? I'm not complaining. I'm noticing."),
		},
		Candidate{
			Name:     "bluffed",
			Priority: 60,
			When:     func(c Ctx) bool { return c.Ledger.Has(ledger.TagBluffCalled, "") },
			Say:      Fixed("And this time, let's give the bank the real numbers."),
		},
	)

	e.Register(Vivian, Rating,
		Candidate{
			Name:     "always-r",
			Priority: 100,
			When:     func(c Ctx) bool { return c.Ledger.AlwaysRating("R") },
			Say:      Fixed("Another R. Does this studio know any other letter?"),
		},
		Candidate{
			Name:     "always-pg",
			Priority: 100,
			When:     func(c Ctx) bool { return c.Ledger.AlwaysRating("PG") },
			Say:      Fixed("Family-friendly again. Someone at that studio is afraid of the dark."),
		},
	)

	e.Register(Vivian, Premiere,
		Candidate{
			Name:     "signature-genre",
			Priority: 70,
			When: func(c Ctx) bool {
				_, n := c.Ledger.FavoriteGenre()
				return n >= 3
			},
			Say: Computed(func(c Ctx) string {
				g, _ := c.Ledger.FavoriteGenre()
				if c.Key == string(ledger.VerdictFlop) {
					return fmt.Sprintf("The studio that lives and dies by %s has, this weekend, died.", g)
				}
				// Falls through to the keyed review.
				return ""
			}),
		},
	)

	e.Register(Rex, Taunt,
		Candidate{
			Name:     "copied",
			Priority: 100,
			When:     func(c Ctx) bool { return c.Ledger.Has(ledger.TagNovaCopiedGenre, "") },
			Say: Computed(func(c Ctx) string {
				e, _ := c.Ledger.LastByTag(ledger.TagNovaCopiedGenre)
				return fmt.Sprintf("Imitation is flattery. So consider our %s picture a compliment.", e.Detail)
			}),
		},
	)

	e.Register(Pip, Lot,
		Candidate{
			Name:     "demolished",
			Priority: 90,
			When:     func(c Ctx) bool { return c.Ledger.Has(ledger.TagRideDemolished, "") },
			Say:      Fixed("People keep leaving flowers where the old ride used to be."),
		},
	)
}

// museOf returns the first muse on the roster, if any.
func museOf(c Ctx) talent.Archetype {
	for _, t := range talent.Roster() {
		if c.Relations.Get(t.Key).IsMuse {
			return t.Key
		}
	}
	return ""
}
