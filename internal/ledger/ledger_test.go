package ledger

import "testing"

func genres(c *Counter, gs ...string) Ledger {
	var l Ledger
	for i, g := range gs {
		l = l.Append(c.NewEntry(i+1, BeatMarket, TagGenrePicked, WithDetail(g)))
	}
	return l
}

func verdicts(c *Counter, vs ...Verdict) Ledger {
	var l Ledger
	for i, v := range vs {
		l = l.Append(c.NewEntry(i+1, BeatPremiere, TagFilmVerdict, WithDetail(string(v))))
	}
	return l
}

func TestTurnMonotonic(t *testing.T) {
	c := NewCounter()
	prev := 0
	for i := 0; i < 50; i++ {
		e := c.NewEntry(1, BeatTalent, TagTalentHired)
		if e.Turn <= prev {
			t.Fatalf("turn %d not greater than %d", e.Turn, prev)
		}
		prev = e.Turn
	}

	c.Reset()
	if e := c.NewEntry(1, BeatMarket, TagGenrePicked); e.Turn != 1 {
		t.Errorf("expected turn 1 after reset, got %d", e.Turn)
	}
}

func TestCountersAreIndependent(t *testing.T) {
	a, b := NewCounter(), NewCounter()
	a.NewEntry(1, BeatMarket, TagGenrePicked)
	a.NewEntry(1, BeatMarket, TagGenrePicked)
	if e := b.NewEntry(1, BeatMarket, TagGenrePicked); e.Turn != 1 {
		t.Errorf("second session shares turns: got %d", e.Turn)
	}
}

func TestSentimentClamped(t *testing.T) {
	c := NewCounter()
	if e := c.NewEntry(1, BeatTalent, TagDemandDenied, WithSentiment(9)); e.Sentiment != 3 {
		t.Errorf("expected 3, got %d", e.Sentiment)
	}
	if e := c.NewEntry(1, BeatTalent, TagDemandDenied, WithSentiment(-5)); e.Sentiment != -3 {
		t.Errorf("expected -3, got %d", e.Sentiment)
	}
}

func TestGenreStreak(t *testing.T) {
	c := NewCounter()
	l := genres(c, "horror", "horror", "comedy", "horror", "horror", "horror")
	if got := l.GenreStreak(); got != "horror" {
		t.Fatalf("expected horror streak, got %q", got)
	}

	l = l.Append(c.NewEntry(7, BeatMarket, TagGenrePicked, WithDetail("western")))
	if got := l.GenreStreak(); got != "" {
		t.Errorf("streak should break, got %q", got)
	}

	if got := genres(NewCounter(), "horror", "horror").GenreStreak(); got != "" {
		t.Errorf("two picks cannot streak, got %q", got)
	}
}

func TestVerdictStreak(t *testing.T) {
	tests := []struct {
		name string
		in   []Verdict
		want Streak
	}{
		{"empty", nil, Streak{}},
		{"broken by latest", []Verdict{VerdictHit, VerdictHit, VerdictFlop}, Streak{VerdictFlop, 1}},
		{"three hits", []Verdict{VerdictHit, VerdictHit, VerdictHit}, Streak{VerdictHit, 3}},
		{"trailing only", []Verdict{VerdictFlop, VerdictHit, VerdictHit}, Streak{VerdictHit, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verdicts(NewCounter(), tt.in...).VerdictStreak()
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVerdictStreakIgnoresOtherTags(t *testing.T) {
	c := NewCounter()
	l := verdicts(c, VerdictFlop, VerdictFlop)
	l = l.Append(c.NewEntry(3, BeatLot, TagBuildingBought, WithDetail("flop")))
	if got := l.VerdictStreak(); got.Count != 2 {
		t.Errorf("expected count 2, got %+v", got)
	}
}

func TestFavoriteGenreFirstSeenWinsTie(t *testing.T) {
	l := genres(NewCounter(), "drama", "scifi", "scifi", "drama")
	g, n := l.FavoriteGenre()
	if g != "drama" || n != 2 {
		t.Errorf("expected drama x2, got %s x%d", g, n)
	}

	if g, n := (Ledger{}).FavoriteGenre(); g != "" || n != 0 {
		t.Errorf("empty ledger should have no favorite, got %s x%d", g, n)
	}
}

func TestIndieStreak(t *testing.T) {
	c := NewCounter()
	var l Ledger
	for _, tier := range []string{BudgetIndie, BudgetBlockbuster, BudgetIndie, BudgetIndie} {
		l = l.Append(c.NewEntry(1, BeatMoney, TagBudgetTier, WithDetail(tier)))
	}
	if got := l.IndieStreak(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestSelfFundStreak(t *testing.T) {
	c := NewCounter()
	l := Ledger{
		c.NewEntry(1, BeatMoney, TagFundingDistributor),
		c.NewEntry(2, BeatMoney, TagFundingSelf),
		c.NewEntry(2, BeatMoney, TagBudgetTier, WithDetail(BudgetIndie)),
		c.NewEntry(3, BeatMoney, TagFundingSelf),
	}
	if got := l.SelfFundStreak(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestAlwaysRating(t *testing.T) {
	c := NewCounter()
	l := Ledger{c.NewEntry(1, BeatConcept, TagRatingChosen, WithDetail("R"))}
	if l.AlwaysRating("R") {
		t.Error("one rating is not a habit")
	}
	l = l.Append(c.NewEntry(2, BeatConcept, TagRatingChosen, WithDetail("R")))
	if !l.AlwaysRating("R") {
		t.Error("expected always R")
	}
	l = l.Append(c.NewEntry(3, BeatConcept, TagRatingChosen, WithDetail("PG")))
	if l.AlwaysRating("R") {
		t.Error("PG breaks always R")
	}
}

func TestHasAndTimesHired(t *testing.T) {
	c := NewCounter()
	l := Ledger{
		c.NewEntry(1, BeatTalent, TagTalentHired, WithActor("diva")),
		c.NewEntry(2, BeatTalent, TagTalentHired, WithActor("diva")),
		c.NewEntry(2, BeatTalent, TagTalentHired, WithActor("megastar")),
	}
	if got := l.TimesHired("diva"); got != 2 {
		t.Errorf("expected 2 hires, got %d", got)
	}
	if !l.Has(TagTalentHired, "") || !l.Has(TagTalentHired, "megastar") {
		t.Error("expected hires to be found")
	}
	if l.Has(TagTalentHired, "has_been") {
		t.Error("has_been was never hired")
	}
	if got := len(l.ByFilm(2)); got != 2 {
		t.Errorf("expected 2 entries in film 2, got %d", got)
	}
}

func TestMarkSurfacedReturnsCopy(t *testing.T) {
	c := NewCounter()
	l := Ledger{
		c.NewEntry(1, BeatLot, TagBuildingBought, WithDetail("soundstage")),
		c.NewEntry(2, BeatLot, TagBuildingBought, WithDetail("backlot")),
	}
	next := l.MarkSurfaced(l[1].Turn)
	if l[1].Surfaced {
		t.Error("original ledger was mutated")
	}
	if !next[1].Surfaced || next[0].Surfaced {
		t.Errorf("wrong entry surfaced: %+v", next)
	}
	if again := next.MarkSurfaced(next[1].Turn); &again[0] != &next[0] {
		t.Error("surfacing twice should be a no-op")
	}
}

func TestSurfaceOne(t *testing.T) {
	c := NewCounter()
	l := Ledger{
		c.NewEntry(1, BeatTalent, TagDemandAccepted, WithActor("diva")),
		c.NewEntry(1, BeatTalent, TagDemandDenied, WithActor("megastar")),
	}

	e, l, ok := l.SurfaceOne(TagDemandDenied, TagDemandAccepted)
	if !ok || e.Actor != "diva" || !e.Surfaced {
		t.Fatalf("expected first matching entry, got %+v", e)
	}
	e, l, ok = l.SurfaceOne(TagDemandDenied, TagDemandAccepted)
	if !ok || e.Actor != "megastar" {
		t.Fatalf("expected second entry, got %+v", e)
	}
	if _, _, ok = l.SurfaceOne(TagDemandDenied, TagDemandAccepted); ok {
		t.Error("everything is surfaced already")
	}
}

func TestMetaAccessors(t *testing.T) {
	e := NewCounter().NewEntry(1, BeatMoney, TagTreasuryDip, WithMeta("amount", 500), WithMeta("title", "Heatwave"))
	if e.MetaInt("amount") != 500 || e.MetaString("title") != "Heatwave" {
		t.Errorf("meta not stored: %+v", e.Meta)
	}
	if e.MetaInt("missing") != 0 || e.MetaString("amount") != "" {
		t.Error("missing or mistyped meta should be zero")
	}
}
