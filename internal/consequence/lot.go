package consequence

import (
	"fmt"
	"strings"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
)

// Building is a permanent structure on the studio lot.
type Building struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// Buildings lists everything the lot can hold, cheapest first.
var Buildings = []Building{
	{ID: "commissary", Name: "Commissary", Cost: 200},
	{ID: "screening_room", Name: "Screening Room", Cost: 350},
	{ID: "soundstage", Name: "Soundstage 7", Cost: 500},
	{ID: "talent_bungalows", Name: "Talent Bungalows", Cost: 600},
	{ID: "vfx_lab", Name: "VFX Lab", Cost: 800},
	{ID: "backlot_street", Name: "New York Street Backlot", Cost: 900},
}

func buildingName(id string) string {
	for _, b := range Buildings {
		if b.ID == id {
			return b.Name
		}
	}
	return strings.ReplaceAll(id, "_", " ")
}

// RideID names the theme park ride built for a film's genre.
func RideID(genre string) string {
	return "ride_" + genre
}

func rideName(id string) string {
	genre := strings.TrimPrefix(id, "ride_")
	if genre == "" {
		return "ride"
	}
	return strings.ToUpper(genre[:1]) + genre[1:] + " Ride"
}

// CheckLot runs the studio lot rules for filmNumber.
func CheckLot(l ledger.Ledger, filmNumber int, rival nova.State) []Consequence {
	var out []Consequence
	add := func(c Consequence) {
		c.Phase = PhaseLot
		out = append(out, c)
	}

	if filmNumber == nova.ArrivalFilm && !l.Has(ledger.TagNovaIntroduced, "") {
		desc := "A rival studio has opened across the street. Nova Pictures says it will make the films you won't."
		if rival.Reputation > 0 {
			desc = fmt.Sprintf("%s Its opening-day reputation: %d.", desc, rival.Reputation)
		}
		add(Consequence{
			Kind:        KindHeadline,
			Title:       "NOVA PICTURES OPENS ITS GATES",
			Description: desc,
			Effects:     &Effects{Hype: -2},
		})
	}

	// Milestones fire on the film in which the count was reached.
	bought := l.ByTag(ledger.TagBuildingBought)
	if n := len(bought); (n == 1 || n == 3) && bought[n-1].Film == filmNumber {
		last := bought[n-1]
		if n == 1 {
			add(Consequence{
				Kind:        KindCallback,
				Title:       "BREAKING GROUND",
				Description: fmt.Sprintf("The %s is up. %s is no longer just a rented office.", buildingName(last.Detail), StudioName),
				Effects:     &Effects{Rep: 1},
			})
		} else {
			add(Consequence{
				Kind:        KindCallback,
				Title:       "A REAL STUDIO LOT",
				Description: fmt.Sprintf("Three buildings and counting. Tour buses have started stopping outside %s.", StudioName),
				Effects:     &Effects{Rep: 2, Hype: 3},
			})
		}
	}

	return out
}
