package studio

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Autopilot plays a studio with a seeded temperament. The same seed and
// rates against the same session seed always play the same game.
type Autopilot struct {
	AcceptRate float64 // Chance to give in to demands and walkouts
	BluffRate  float64 // Chance to bluff an outside backer
	LoyalRate  float64 // Chance to rehire someone who liked the last set
	HotRate    float64 // Chance to chase the hottest genre

	rng *rand.Rand
}

// NewAutopilot returns a middle-of-the-road studio head.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{
		AcceptRate: 0.5,
		BluffRate:  0.2,
		LoyalRate:  0.6,
		HotRate:    0.6,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

var (
	titleOpeners  = []string{"Return of the", "Night of the", "Attack of the", "The Last", "Beyond the", "Revenge of the", "Dawn of the", "Curse of the"}
	titleSubjects = []string{"Drifter", "Mummy", "Comet", "Cowboy", "Starlet", "Phantom", "Machine", "Heiress"}
)

func (a *Autopilot) Title(s *Session) string {
	return fmt.Sprintf("%s %s", titleOpeners[a.rng.Intn(len(titleOpeners))], titleSubjects[a.rng.Intn(len(titleSubjects))])
}

func (a *Autopilot) Preprod(s *Session) error {
	ranked, _, err := s.ViewMarket()
	if err != nil {
		return err
	}
	genre := ranked[0]
	if a.rng.Float64() >= a.HotRate {
		genre = ranked[a.rng.Intn(len(ranked))]
	}
	if err := s.PickGenre(genre); err != nil {
		return err
	}
	if err := s.ChooseRating(Ratings[a.rng.Intn(len(Ratings))]); err != nil {
		return err
	}

	tier := ledger.BudgetIndie
	switch {
	case s.Treasury >= 5000:
		tier = ledger.BudgetBlockbuster
	case s.Treasury >= 1800:
		tier = ledger.BudgetStudio
	}
	if err := s.SetBudget(tier); err != nil {
		return err
	}

	source := ledger.TagFundingSelf
	if s.Treasury < BudgetCost[tier]*2 {
		source = ledger.TagFundingDistributor
		if a.rng.Intn(2) == 0 {
			source = ledger.TagFundingInvestor
		}
	}
	bluff := source != ledger.TagFundingSelf && a.rng.Float64() < a.BluffRate
	if err := s.Fund(source, bluff); err != nil {
		return err
	}

	switch {
	case s.Treasury > 1500 && a.rng.Float64() < 0.4:
		return s.ScriptDoctor()
	case s.Treasury > 800 && a.rng.Float64() < 0.3:
		return s.TestScreening()
	}
	return s.SkipPreprod()
}

// Cast picks two to four names, loyal regulars first.
func (a *Autopilot) Cast(s *Session) []talent.Archetype {
	size := 2 + a.rng.Intn(3)
	var picks []talent.Archetype
	for _, t := range talent.Roster() {
		rel := s.Relations.Get(t.Key)
		if len(picks) < size && rel.Loyalty > 0 && !rel.IsBlacklisted && a.rng.Float64() < a.LoyalRate {
			picks = append(picks, t.Key)
		}
	}

	roster := talent.Roster()
	budget := s.Treasury / 2
	for tries := 0; len(picks) < size && tries < 4*len(roster); tries++ {
		t := roster[a.rng.Intn(len(roster))]
		if slices.Contains(picks, t.Key) || t.BaseCost > budget {
			continue
		}
		picks = append(picks, t.Key)
		budget -= t.BaseCost
	}
	return picks
}

func (a *Autopilot) Demand(s *Session, key talent.Archetype) bool {
	return a.rng.Float64() < a.AcceptRate
}

func (a *Autopilot) Walkout(s *Session, c consequence.Consequence) string {
	if a.rng.Float64() < a.AcceptRate {
		return consequence.OptionAcceptDemand
	}
	return consequence.OptionFire
}

// Lot buys the cheapest building it can comfortably afford and sometimes
// builds a ride off a hit.
func (a *Autopilot) Lot(s *Session) error {
	for _, b := range consequence.Buildings {
		if slices.Contains(s.Buildings, b.ID) {
			continue
		}
		if s.Treasury >= b.Cost+500 {
			if err := s.BuyBuilding(b.ID); err != nil {
				return err
			}
		}
		break
	}

	if v, ok := s.Ledger.LastVerdict(); ok && ledger.Verdict(v.Detail).Success() && s.Treasury >= RideCost+300 && a.rng.Float64() < 0.5 {
		if _, err := s.BuildRide(); err != nil && !errors.Is(err, ErrAlreadyBuilt) {
			return err
		}
	}
	if len(s.Rides) > 2 && a.rng.Float64() < 0.3 {
		return s.DemolishRide(s.Rides[0])
	}
	return nil
}
