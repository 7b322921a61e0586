package studio

import (
	"fmt"
	"slices"

	"github.com/talgya/backlot-mogul/internal/boxoffice"
	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/market"
	"github.com/talgya/backlot-mogul/internal/nova"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// BudgetCost is what each budget tier costs, in thousands.
var BudgetCost = map[string]int{
	ledger.BudgetIndie:       300,
	ledger.BudgetStudio:      1000,
	ledger.BudgetBlockbuster: 2500,
}

// Ratings the board will hand out.
var Ratings = []string{"G", "PG", "PG-13", "R"}

// Fixed prices for optional pre-production work and the lot.
const (
	ScriptDoctorCost  = 150
	TestScreeningCost = 100
	RideCost          = 400
	RideSalvage       = 100
)

// funderCut is the share of earnings a backer keeps.
var funderCut = map[ledger.Tag]float64{
	ledger.TagFundingSelf:        0,
	ledger.TagFundingDistributor: 0.40,
	ledger.TagFundingInvestor:    0.30,
}

// StartFilm opens pre-production on the next film. The returned
// consequences have already been applied.
func (s *Session) StartFilm(title string) ([]consequence.Consequence, error) {
	if err := s.requirePhase(PhaseIdle); err != nil {
		return nil, err
	}
	s.Film = consequence.Film{Number: s.completed + 1, Title: title}
	s.Phase = PhasePreprod
	s.Quality, s.Hype, s.Costs = 30, 10, 0
	s.walkouts = nil
	s.bluffCalled = false

	s.record(ledger.BeatConcept, ledger.TagTitleChosen, ledger.WithDetail(title))

	cs, l := consequence.CheckPreprod(s.Ledger, s.Relations, s.Film.Number, s.Nova)
	s.Ledger = l
	s.ApplyAll(cs)
	s.log.Info("film started", "film", s.Film.Number, "title", title, "consequences", len(cs))
	return cs, nil
}

// ViewMarket reports genre heat for the film in progress, hottest first.
func (s *Session) ViewMarket() ([]string, map[string]float64, error) {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return nil, nil, err
	}
	s.record(ledger.BeatMarket, ledger.TagMarketViewed)
	return s.Market.Ranked(s.Film.Number), s.Market.Heat(s.Film.Number), nil
}

// PickGenre sets the film's genre and tags it against the market.
func (s *Session) PickGenre(genre string) error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	if !slices.Contains(market.Genres, genre) {
		return fmt.Errorf("pick genre %q: %w", genre, ErrUnknownGenre)
	}
	s.Film.Genre = genre
	s.record(ledger.BeatConcept, ledger.TagGenrePicked, ledger.WithDetail(genre))

	switch s.Market.Temperature(s.Film.Number, genre) {
	case market.Hot:
		s.record(ledger.BeatMarket, ledger.TagGenreHotPick, ledger.WithDetail(genre), ledger.WithSentiment(1))
		s.Hype = clamp(s.Hype+12, 0, 100)
	case market.Cold:
		s.record(ledger.BeatMarket, ledger.TagGenreColdPick, ledger.WithDetail(genre), ledger.WithSentiment(-1))
		s.Hype = clamp(s.Hype-8, 0, 100)
	}
	return nil
}

// ChooseRating sets the film's rating.
func (s *Session) ChooseRating(rating string) error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	if !slices.Contains(Ratings, rating) {
		return fmt.Errorf("choose rating %q: %w", rating, ErrUnknownOption)
	}
	s.Film.Rating = rating
	s.record(ledger.BeatConcept, ledger.TagRatingChosen, ledger.WithDetail(rating))
	return nil
}

// SetBudget picks the budget tier.
func (s *Session) SetBudget(tier string) error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	if _, ok := BudgetCost[tier]; !ok {
		return fmt.Errorf("set budget %q: %w", tier, ErrUnknownBudget)
	}
	s.Film.Budget = tier
	s.record(ledger.BeatMoney, ledger.TagBudgetTier, ledger.WithDetail(tier))

	switch tier {
	case ledger.BudgetStudio:
		s.Quality = clamp(s.Quality+5, 0, 100)
		s.Hype = clamp(s.Hype+5, 0, 100)
	case ledger.BudgetBlockbuster:
		s.Quality = clamp(s.Quality+10, 0, 100)
		s.Hype = clamp(s.Hype+12, 0, 100)
	}
	return nil
}

// Fund decides who pays for the budget. Bluffing to an outside backer
// understates the budget to get better terms and may be called.
func (s *Session) Fund(source ledger.Tag, bluff bool) error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	if _, ok := funderCut[source]; !ok {
		return fmt.Errorf("fund with %q: %w", source, ErrUnknownFunding)
	}
	cost, ok := BudgetCost[s.Film.Budget]
	if !ok {
		return fmt.Errorf("fund before budget: %w", ErrUnknownBudget)
	}
	s.Film.Funding = source
	s.record(ledger.BeatMoney, source, ledger.WithDetail(s.Film.Budget), ledger.WithMeta("amount", cost))

	if source == ledger.TagFundingSelf {
		s.spend(ledger.BeatMoney, cost, "budget")
		return nil
	}
	if bluff {
		s.record(ledger.BeatMoney, ledger.TagBudgetBluffed, ledger.WithDetail(string(source)))
		if s.rng.Float64() < 0.35 {
			s.bluffCalled = true
			s.record(ledger.BeatMoney, ledger.TagBluffCalled, ledger.WithDetail(string(source)), ledger.WithSentiment(-2))
			s.Reputation = clamp(s.Reputation-3, 0, 100)
			s.log.Info("bluff called", "film", s.Film.Number, "funder", source)
		}
	}
	return nil
}

// ScriptDoctor pays for a polish pass on the script.
func (s *Session) ScriptDoctor() error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	s.spend(ledger.BeatPreprod, ScriptDoctorCost, "script doctor")
	s.Quality = clamp(s.Quality+6, 0, 100)
	s.record(ledger.BeatPreprod, ledger.TagScriptDoctored, ledger.WithMeta("amount", ScriptDoctorCost))
	return nil
}

// TestScreening shows a rough cut to a test audience. The reaction moves
// hype either way depending on how good the film already is.
func (s *Session) TestScreening() error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	s.spend(ledger.BeatPreprod, TestScreeningCost, "test screening")
	delta := (s.Quality - 45) / 5
	s.Hype = clamp(s.Hype+delta, 0, 100)
	s.record(ledger.BeatPreprod, ledger.TagTestScreening, ledger.WithMeta("hype", delta), ledger.WithSentiment(sign(delta)))
	return nil
}

// SkipPreprod records that the player went straight to casting.
func (s *Session) SkipPreprod() error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	s.record(ledger.BeatPreprod, ledger.TagPreprodSkipped)
	return nil
}

// Hire casts key at its relation-adjusted fee. A refusal is recorded and
// returned as ErrRefused.
func (s *Session) Hire(key talent.Archetype) (int, error) {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return 0, err
	}
	t, ok := talent.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("hire %q: %w", key, ErrUnknownTalent)
	}
	if s.Film.HasCast(key) {
		return 0, fmt.Errorf("hire %s: %w", t.Name, ErrAlreadyCast)
	}
	if r := talent.CheckRefusal(s.Relations, key, s.Reputation); r.Refused {
		s.record(ledger.BeatTalent, ledger.TagTalentRefused, ledger.WithActor(string(key)), ledger.WithDetail(string(r.Reason)), ledger.WithSentiment(-1))
		s.log.Info("talent refused", "film", s.Film.Number, "talent", key, "reason", r.Reason)
		return 0, fmt.Errorf("hire %s (%s): %w", t.Name, r.Reason, ErrRefused)
	}

	cost := talent.ModifiedCost(s.Relations, key, t.BaseCost)
	before := s.Relations.Get(key)
	s.spend(ledger.BeatTalent, cost, "talent")
	s.Film.Cast = append(s.Film.Cast, key)
	s.record(ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor(string(key)), ledger.WithMeta("cost", cost))
	if before.TimesHired > 0 {
		s.record(ledger.BeatTalent, ledger.TagTalentRehired, ledger.WithActor(string(key)), ledger.WithMeta("times", before.TimesHired+1))
	}

	s.Relations = talent.RecordHire(s.Relations, key, s.Film.Number)
	if after := s.Relations.Get(key); after.IsMuse && !before.IsMuse {
		s.record(ledger.BeatTalent, ledger.TagMuseUnlocked, ledger.WithActor(string(key)), ledger.WithSentiment(2))
		s.log.Info("muse unlocked", "talent", key)
	}
	return cost, nil
}

// HandleDemand settles a demanding cast member's ask.
func (s *Session) HandleDemand(key talent.Archetype, accept bool) error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	t, ok := talent.Lookup(key)
	if !ok {
		return fmt.Errorf("demand from %q: %w", key, ErrUnknownTalent)
	}
	if !s.Film.HasCast(key) {
		return fmt.Errorf("demand from %s: %w", t.Name, ErrNotCast)
	}
	if accept {
		extra := t.BaseCost / 5
		s.spend(ledger.BeatTalent, extra, "demand")
		s.Hype = clamp(s.Hype+2, 0, 100)
		s.record(ledger.BeatTalent, ledger.TagDemandAccepted, ledger.WithActor(string(key)), ledger.WithMeta("amount", extra), ledger.WithSentiment(1))
		s.Relations = talent.RecordDemandAccepted(s.Relations, key, s.Film.Number)
		return nil
	}
	s.record(ledger.BeatTalent, ledger.TagDemandDenied, ledger.WithActor(string(key)), ledger.WithSentiment(-1))
	s.Relations = talent.RecordDemandDenied(s.Relations, key, s.Film.Number)
	return nil
}

// LockCast ends pre-production and rolls cameras. Star power and craft of
// the cast feed the film.
func (s *Session) LockCast() error {
	if err := s.requirePhase(PhasePreprod); err != nil {
		return err
	}
	if s.Film.Genre == "" || s.Film.Budget == "" || s.Film.Funding == "" {
		return fmt.Errorf("lock cast: genre, budget and funding must be set: %w", ErrWrongPhase)
	}

	var aList, cList, craft, star int
	for _, key := range s.Film.Cast {
		t, _ := talent.Lookup(key)
		t = t.Effective(s.Relations.Get(key))
		craft += t.Craft
		star += t.StarPower
		switch t.Tier {
		case talent.TierA:
			aList++
		case talent.TierC:
			cList++
		}
	}
	if aList >= 2 {
		s.record(ledger.BeatTalent, ledger.TagAllStarCast, ledger.WithMeta("count", aList))
	}
	if len(s.Film.Cast) > 0 && cList == len(s.Film.Cast) {
		s.record(ledger.BeatTalent, ledger.TagCheapCast, ledger.WithMeta("count", cList))
	}
	s.Quality = clamp(s.Quality+min(craft/2, 35), 0, 100)
	s.Hype = clamp(s.Hype+min(star/2, 35), 0, 100)
	s.Phase = PhaseProduction
	return nil
}

// Production runs the shoot and returns any walkouts. Each walkout must
// be resolved before the premiere.
func (s *Session) Production() ([]consequence.Consequence, error) {
	if err := s.requirePhase(PhaseProduction); err != nil {
		return nil, err
	}
	cs := consequence.CheckProduction(s.Ledger, s.Relations, s.Film)
	s.walkouts = make(map[talent.Archetype]consequence.Consequence, len(cs))
	for _, c := range cs {
		s.walkouts[c.Actor] = c
		s.record(ledger.BeatProduction, ledger.TagWalkout, ledger.WithActor(string(c.Actor)), ledger.WithDetail(string(c.Severity)), ledger.WithSentiment(-2))
		s.log.Warn("walkout", "film", s.Film.Number, "talent", c.Actor, "severity", c.Severity)
	}
	if len(cs) == 0 {
		s.record(ledger.BeatProduction, ledger.TagOnSchedule)
	}
	return cs, nil
}

// Pending returns walkouts still waiting on a decision.
func (s *Session) Pending() []talent.Archetype {
	var out []talent.Archetype
	for _, key := range s.Film.Cast {
		if _, ok := s.walkouts[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

// ResolveWalkout applies the player's answer to a walkout.
func (s *Session) ResolveWalkout(key talent.Archetype, optionID string) error {
	if err := s.requirePhase(PhaseProduction); err != nil {
		return err
	}
	c, ok := s.walkouts[key]
	if !ok {
		return fmt.Errorf("resolve walkout %q: %w", key, ErrNotCast)
	}
	var opt *consequence.Option
	for i := range c.Options {
		if c.Options[i].ID == optionID {
			opt = &c.Options[i]
		}
	}
	if opt == nil {
		return fmt.Errorf("resolve walkout %s with %q: %w", key, optionID, ErrUnknownOption)
	}

	switch optionID {
	case consequence.OptionAcceptDemand:
		s.record(ledger.BeatProduction, ledger.TagWalkoutForgiven, ledger.WithActor(string(key)), ledger.WithSentiment(1))
		s.Relations = talent.RecordWalkoutForgiven(s.Relations, key)
	case consequence.OptionFire:
		s.record(ledger.BeatProduction, ledger.TagWalkoutFired, ledger.WithActor(string(key)), ledger.WithSentiment(-2))
		s.Relations = talent.RecordWalkoutFired(s.Relations, key)
		s.Film.Cast = slices.DeleteFunc(slices.Clone(s.Film.Cast), func(k talent.Archetype) bool { return k == key })
	}
	s.Apply(opt.Effects)
	delete(s.walkouts, key)
	return nil
}

// PremiereReport is what opening weekend produced.
type PremiereReport struct {
	boxoffice.Result
	Net          int // Earnings after the backer's cut
	Consequences []consequence.Consequence
}

// Premiere releases the film. Premiere rules see the ledger as it stood
// before this verdict.
func (s *Session) Premiere() (PremiereReport, error) {
	if err := s.requirePhase(PhaseProduction); err != nil {
		return PremiereReport{}, err
	}
	if p := s.Pending(); len(p) > 0 {
		return PremiereReport{}, fmt.Errorf("premiere with %d unresolved walkouts: %w", len(p), ErrWrongPhase)
	}

	cost := BudgetCost[s.Film.Budget]
	res := boxoffice.Simulate(boxoffice.Input{Quality: s.Quality, Hype: s.Hype, Budget: cost}, s.rng)
	cs := consequence.CheckPremiere(s.Ledger, s.Relations, s.Film, res.Verdict)

	s.record(ledger.BeatPremiere, ledger.TagFilmVerdict,
		ledger.WithDetail(string(res.Verdict)),
		ledger.WithMeta("title", s.Film.Title),
		ledger.WithMeta("earnings", res.Earnings),
		ledger.WithMeta("critics", res.Critics),
		ledger.WithSentiment(verdictSentiment(res.Verdict)))
	s.record(ledger.BeatPremiere, ledger.VerdictTag(res.Verdict), ledger.WithDetail(s.Film.Genre))
	switch {
	case res.Critics >= 80:
		s.record(ledger.BeatPremiere, ledger.TagCriticsRave, ledger.WithMeta("critics", res.Critics))
	case res.Critics <= 35:
		s.record(ledger.BeatPremiere, ledger.TagCriticsPan, ledger.WithMeta("critics", res.Critics))
	}

	for _, key := range s.Film.Cast {
		before := s.Relations.Get(key)
		s.Relations = talent.RecordFilmResult(s.Relations, key, res.Verdict)
		if !before.IsUpgraded && s.Relations.Get(key).IsUpgraded {
			s.record(ledger.BeatPremiere, ledger.TagTalentUpgraded, ledger.WithActor(string(key)), ledger.WithSentiment(2))
		}
	}

	cut := funderCut[s.Film.Funding]
	if s.bluffCalled {
		cut += 0.15
	}
	net := int(float64(res.Earnings) * (1 - cut))
	s.Treasury += net
	s.Reputation = clamp(s.Reputation+verdictRep(res.Verdict), 0, 100)
	s.ApplyAll(cs)
	s.Phase = PhaseReleased

	s.log.Info("film released",
		"film", s.Film.Number,
		"title", s.Film.Title,
		"verdict", res.Verdict,
		"earnings", res.Earnings,
		"net", net,
		"critics", res.Critics,
	)
	return PremiereReport{Result: res, Net: net, Consequences: cs}, nil
}

// Lot opens the studio lot after a release.
func (s *Session) Lot() ([]consequence.Consequence, error) {
	if err := s.requirePhase(PhaseReleased); err != nil {
		return nil, err
	}
	cs := consequence.CheckLot(s.Ledger, s.Film.Number, s.Nova)
	s.ApplyAll(cs)
	return cs, nil
}

// BuyBuilding adds a building to the lot.
func (s *Session) BuyBuilding(id string) error {
	if err := s.requirePhase(PhaseReleased); err != nil {
		return err
	}
	i := slices.IndexFunc(consequence.Buildings, func(b consequence.Building) bool { return b.ID == id })
	if i < 0 {
		return fmt.Errorf("buy %q: %w", id, ErrUnknownBuilding)
	}
	b := consequence.Buildings[i]
	if slices.Contains(s.Buildings, id) {
		return fmt.Errorf("buy %s: %w", b.Name, ErrAlreadyBuilt)
	}
	if s.Treasury < b.Cost {
		return fmt.Errorf("buy %s for %d with %d: %w", b.Name, b.Cost, s.Treasury, ErrCannotAfford)
	}
	s.Treasury -= b.Cost
	s.Buildings = append(s.Buildings, id)
	s.record(ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail(id), ledger.WithMeta("cost", b.Cost))
	if len(s.Buildings) == 1 {
		s.record(ledger.BeatLot, ledger.TagFirstBuilding, ledger.WithDetail(id))
	}
	s.log.Info("building bought", "building", id, "treasury", s.Treasury)
	return nil
}

// BuildRide opens a theme park ride for the released film's genre.
func (s *Session) BuildRide() (string, error) {
	if err := s.requirePhase(PhaseReleased); err != nil {
		return "", err
	}
	id := consequence.RideID(s.Film.Genre)
	if slices.Contains(s.Rides, id) {
		return "", fmt.Errorf("build %s: %w", id, ErrAlreadyBuilt)
	}
	if s.Treasury < RideCost {
		return "", fmt.Errorf("build %s for %d with %d: %w", id, RideCost, s.Treasury, ErrCannotAfford)
	}
	s.Treasury -= RideCost
	s.Rides = append(s.Rides, id)
	s.record(ledger.BeatLot, ledger.TagRideBuilt, ledger.WithDetail(id), ledger.WithMeta("title", s.Film.Title))
	return id, nil
}

// DemolishRide tears a ride down for salvage.
func (s *Session) DemolishRide(id string) error {
	if err := s.requirePhase(PhaseReleased); err != nil {
		return err
	}
	i := slices.Index(s.Rides, id)
	if i < 0 {
		return fmt.Errorf("demolish %q: %w", id, ErrNoRide)
	}
	s.Rides = slices.Delete(slices.Clone(s.Rides), i, i+1)
	s.Treasury += RideSalvage
	s.record(ledger.BeatLot, ledger.TagRideDemolished, ledger.WithDetail(id), ledger.WithSentiment(-1))
	return nil
}

// CompleteFilm closes out the released film: grudges cool once, Nova
// releases its picture, and the studio goes idle.
func (s *Session) CompleteFilm() error {
	if err := s.requirePhase(PhaseReleased); err != nil {
		return err
	}
	s.record(ledger.BeatLot, ledger.TagFilmCompleted, ledger.WithDetail(s.Film.Title))
	s.Relations = talent.DecayGrudges(s.Relations)

	fav, _ := s.Ledger.FavoriteGenre()
	before := s.Nova
	s.Nova = nova.Advance(s.Nova, s.Film.Number, fav, market.Genres, s.rng)
	if !before.Introduced && s.Nova.Introduced {
		s.record(ledger.BeatLot, ledger.TagNovaIntroduced)
	}
	if len(s.Nova.Films) > len(before.Films) {
		f, _ := s.Nova.LastFilm()
		if f.CopiedPlayer {
			s.record(ledger.BeatLot, ledger.TagNovaCopiedGenre, ledger.WithDetail(f.Genre), ledger.WithMeta("title", f.Title))
		}
		if f.Verdict == ledger.VerdictBlockbuster {
			s.record(ledger.BeatLot, ledger.TagNovaBlockbuster, ledger.WithDetail(f.Genre), ledger.WithMeta("title", f.Title))
		}
		s.log.Info("nova release", "title", f.Title, "genre", f.Genre, "verdict", f.Verdict, "copied", f.CopiedPlayer)
	}

	s.completed++
	s.Phase = PhaseIdle
	return nil
}

func verdictRep(v ledger.Verdict) int {
	switch v {
	case ledger.VerdictFlop:
		return -3
	case ledger.VerdictHit:
		return 2
	case ledger.VerdictBlockbuster:
		return 4
	case ledger.VerdictCult:
		return 1
	}
	return 0
}

func verdictSentiment(v ledger.Verdict) int {
	switch v {
	case ledger.VerdictFlop:
		return -2
	case ledger.VerdictHit, ledger.VerdictCult:
		return 1
	case ledger.VerdictBlockbuster:
		return 2
	}
	return 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
