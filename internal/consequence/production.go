package consequence

import (
	"fmt"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// CheckProduction returns a walkout for every cast member ready to leave
// the set. Several can walk at once.
func CheckProduction(_ ledger.Ledger, rels talent.Relations, film Film) []Consequence {
	var out []Consequence
	for _, key := range film.Cast {
		w := talent.CheckWalkout(rels, key)
		if w == nil {
			continue
		}
		name := talent.Name(key)

		title := fmt.Sprintf("%s WALKS OFF SET", headlineName(key))
		desc := fmt.Sprintf("%s has had %d demands refused and is done being ignored. Production on %s has stopped.", name, w.Denied, film.Title)
		line := "I told you what I needed. Twice."
		if w.Severity == talent.SeverityExtreme {
			title = fmt.Sprintf("%s QUITS IN A RAGE", headlineName(key))
			desc = fmt.Sprintf("%s tore up the call sheet in front of the crew. The trades already know.", name)
			line = "Find yourself another star. I'm finished with this studio."
		}

		out = append(out, Consequence{
			Kind:        KindWalkout,
			Phase:       PhaseProduction,
			Actor:       key,
			Title:       title,
			Description: desc,
			Dialogue:    line,
			Severity:    w.Severity,
			Options: []Option{
				{ID: OptionAcceptDemand, Label: "Give in to the original demand", Effects: &Effects{Quality: 10}},
				{ID: OptionFire, Label: "Fire them and promote the understudy", Effects: &Effects{Quality: -15}},
			},
		})
	}
	return out
}
