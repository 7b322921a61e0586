package consequence

import (
	"fmt"
	"strings"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// GenerateNews builds the ticker of one-line trade headlines. Building
// purchases and demand outcomes are reported once; the entries behind them
// are surfaced in the returned ledger.
func GenerateNews(l ledger.Ledger, rival nova.State) ([]string, ledger.Ledger) {
	var news []string

	if v, ok := l.LastVerdict(); ok {
		title := v.MetaString("title")
		if title == "" {
			title = fmt.Sprintf("%s's latest", StudioName)
		}
		switch ledger.Verdict(v.Detail) {
		case ledger.VerdictBlockbuster:
			news = append(news, fmt.Sprintf("%s SHATTERS OPENING WEEKEND RECORDS", strings.ToUpper(title)))
		case ledger.VerdictHit:
			news = append(news, fmt.Sprintf("Audiences line up around the block for %s", title))
		case ledger.VerdictModest:
			news = append(news, fmt.Sprintf("%s turns a quiet profit", title))
		case ledger.VerdictCult:
			news = append(news, fmt.Sprintf("Midnight crowds adopt %s as their own", title))
		case ledger.VerdictFlop:
			news = append(news, fmt.Sprintf("%s sinks without a trace", title))
		}
	}

	if e, ok := lastUnsurfaced(l, ledger.TagBuildingBought); ok {
		news = append(news, fmt.Sprintf("%s breaks ground on a new %s", StudioName, buildingName(e.Detail)))
		l = l.MarkSurfaced(e.Turn)
	}

	if g, n := l.FavoriteGenre(); n >= 3 {
		news = append(news, fmt.Sprintf("Is %s becoming the %s studio? Insiders say yes", StudioName, g))
	}

	if f, ok := rival.LastFilm(); ok && f.Verdict == ledger.VerdictBlockbuster {
		news = append(news, fmt.Sprintf("Nova Pictures scores a blockbuster with %s", f.Title))
	}

	for {
		e, next, ok := l.SurfaceOne(ledger.TagDemandAccepted, ledger.TagDemandDenied)
		if !ok {
			break
		}
		l = next
		name := talent.Name(talent.Archetype(e.Actor))
		if e.Tag == ledger.TagDemandAccepted {
			news = append(news, fmt.Sprintf("%s gets their way again, sources say", name))
		} else {
			news = append(news, fmt.Sprintf("%s storms out of a meeting after the studio says no", name))
		}
	}

	return news, l
}

func lastUnsurfaced(l ledger.Ledger, tag ledger.Tag) (ledger.Entry, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Tag == tag && !l[i].Surfaced {
			return l[i], true
		}
	}
	return ledger.Entry{}, false
}
