package consequence

import (
	"strings"
	"testing"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
	"github.com/talgya/backlot-mogul/internal/talent"
)

func find(cs []Consequence, title string) (Consequence, bool) {
	for _, c := range cs {
		if c.Title == title {
			return c, true
		}
	}
	return Consequence{}, false
}

func countKind(cs []Consequence, k Kind) int {
	n := 0
	for _, c := range cs {
		if c.Kind == k {
			n++
		}
	}
	return n
}

func denyTwice(rels talent.Relations, keys ...talent.Archetype) talent.Relations {
	for _, k := range keys {
		rels = talent.RecordDemandDenied(rels, k, 1)
		rels = talent.RecordDemandDenied(rels, k, 2)
	}
	return rels
}

func TestProductionWalkouts(t *testing.T) {
	rels := denyTwice(talent.NewRelations(), talent.Diva, talent.Megastar)
	film := Film{Number: 3, Title: "Heatwave", Cast: []talent.Archetype{talent.Diva, talent.Veteran, talent.Megastar}}

	cs := CheckProduction(nil, rels, film)
	if len(cs) != 2 {
		t.Fatalf("expected 2 walkouts, got %d", len(cs))
	}
	for _, c := range cs {
		if c.Kind != KindWalkout || c.Phase != PhaseProduction || len(c.Options) != 2 {
			t.Errorf("malformed walkout: %+v", c)
		}
		if c.Options[0].Effects.Quality != 10 || c.Options[1].Effects.Quality != -15 {
			t.Errorf("wrong option effects: %+v", c.Options)
		}
	}
	if cs[0].Actor != talent.Diva || cs[1].Actor != talent.Megastar {
		t.Errorf("walkouts out of cast order: %s, %s", cs[0].Actor, cs[1].Actor)
	}
}

func TestPremiereColdStreak(t *testing.T) {
	c := ledger.NewCounter()
	var l ledger.Ledger
	for film := 1; film <= 3; film++ {
		l = l.Append(c.NewEntry(film, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail(string(ledger.VerdictFlop))))
	}
	film := Film{Number: 4, Title: "Dust"}

	for i := 0; i < 2; i++ {
		cs := CheckPremiere(l, talent.NewRelations(), film, ledger.VerdictFlop)
		w, ok := find(cs, TitleColdStreak)
		if !ok {
			t.Fatalf("call %d: missing cold streak warning in %+v", i+1, cs)
		}
		if w.Kind != KindWarning || w.Effects == nil || w.Effects.Rep != -2 {
			t.Errorf("call %d: wrong warning %+v", i+1, w)
		}
	}

	if cs := CheckPremiere(l, talent.NewRelations(), film, ledger.VerdictHit); len(cs) != 0 {
		t.Errorf("a hit ends the cold streak, got %+v", cs)
	}
}

func TestPremiereHotStreak(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{c.NewEntry(1, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail("hit"))}
	film := Film{Number: 2}

	if _, ok := find(CheckPremiere(l, talent.NewRelations(), film, ledger.VerdictHit), TitleHotStreak); !ok {
		t.Error("second hit should start a hot streak")
	}

	l = l.Append(c.NewEntry(2, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail("hit")))
	cs := CheckPremiere(l, talent.NewRelations(), Film{Number: 3}, ledger.VerdictHit)
	if h, ok := find(cs, TitleHotStreak3); !ok || h.Effects.Hype != 10 {
		t.Errorf("third hit should escalate, got %+v", cs)
	}

	if _, ok := find(CheckPremiere(nil, talent.NewRelations(), Film{Number: 1}, ledger.VerdictHit), TitleHotStreak); ok {
		t.Error("first film cannot be a streak")
	}
}

func TestPremiereAllStarFlopSameFilmOnly(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{c.NewEntry(2, ledger.BeatTalent, ledger.TagAllStarCast)}

	if _, ok := find(CheckPremiere(l, talent.NewRelations(), Film{Number: 2}, ledger.VerdictFlop), TitleAllStar); !ok {
		t.Error("all-star flop in the same film should headline")
	}
	if _, ok := find(CheckPremiere(l, talent.NewRelations(), Film{Number: 3}, ledger.VerdictFlop), TitleAllStar); ok {
		t.Error("an old all-star cast must not be blamed")
	}
	if _, ok := find(CheckPremiere(l, talent.NewRelations(), Film{Number: 2}, ledger.VerdictHit), TitleAllStar); ok {
		t.Error("only flops are expensive failures")
	}
}

func TestPremiereALister(t *testing.T) {
	rels := talent.NewRelations()
	rels = talent.RecordDemandDenied(rels, talent.Diva, 1)
	rels[talent.Megastar] = talent.Relation{Loyalty: 4}
	film := Film{Number: 2, Cast: []talent.Archetype{talent.Diva, talent.Megastar, talent.Unknown}}

	cs := CheckPremiere(nil, rels, film, ledger.VerdictFlop)
	if _, ok := find(cs, "DIVA BLAMES THE STUDIO"); !ok {
		t.Errorf("diva should blame the studio, got %+v", cs)
	}
	if len(cs) != 1 {
		t.Errorf("expected only the blame headline, got %d", len(cs))
	}

	cs = CheckPremiere(nil, rels, film, ledger.VerdictBlockbuster)
	if _, ok := find(cs, "MEGASTAR THANKS PACIFIC DREAMS"); !ok {
		t.Errorf("loyal megastar should give thanks, got %+v", cs)
	}
}

func TestPremiereUnderdog(t *testing.T) {
	film := Film{Number: 2, Title: "Second Act", Cast: []talent.Archetype{talent.HasBeen}}
	rels := talent.NewRelations()

	cs := CheckPremiere(nil, rels, film, ledger.VerdictBlockbuster)
	if _, ok := find(cs, TitleComeback); !ok {
		t.Fatalf("missing comeback callback: %+v", cs)
	}
	if countKind(cs, KindUpgrade) != 1 {
		t.Errorf("expected an upgrade, got %+v", cs)
	}

	rels = talent.RecordFilmResult(rels, talent.HasBeen, ledger.VerdictBlockbuster)
	if countKind(CheckPremiere(nil, rels, film, ledger.VerdictBlockbuster), KindUpgrade) != 0 {
		t.Error("upgrade can only happen once")
	}
}

func TestPreprodFirstBuildingSurfacesOnce(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{
		c.NewEntry(1, ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail("soundstage")),
		c.NewEntry(1, ledger.BeatLot, ledger.TagFirstBuilding, ledger.WithDetail("soundstage")),
	}
	rels := talent.NewRelations()

	cs, next := CheckPreprod(l, rels, 3, nova.New())
	cb, ok := find(cs, "WHERE IT ALL STARTED")
	if !ok || !strings.Contains(cb.Description, "Soundstage 7") {
		t.Fatalf("missing first building callback: %+v", cs)
	}
	if l[1].Surfaced {
		t.Error("input ledger must not change")
	}

	cs, _ = CheckPreprod(next, rels, 3, nova.New())
	if _, ok := find(cs, "WHERE IT ALL STARTED"); ok {
		t.Error("callback repeated after surfacing")
	}
}

func TestPreprodDistributor(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{
		c.NewEntry(1, ledger.BeatMoney, ledger.TagFundingDistributor),
		c.NewEntry(1, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail("flop")),
	}
	rels := talent.NewRelations()

	cs, next := CheckPreprod(l, rels, 2, nova.New())
	if _, ok := find(cs, "THE DISTRIBUTOR GOES QUIET"); !ok {
		t.Fatalf("expected flop branch, got %+v", cs)
	}
	if cs, _ = CheckPreprod(next, rels, 2, nova.New()); len(cs) != 0 {
		t.Errorf("distributor callback repeated: %+v", cs)
	}

	l[1].Detail = "blockbuster"
	if cs, _ := CheckPreprod(l, rels, 2, nova.New()); len(cs) != 1 || cs[0].Title != "THE DISTRIBUTOR CALLS BACK" {
		t.Errorf("expected success branch, got %+v", cs)
	}

	l[1].Detail = "modest"
	cs, next = CheckPreprod(l, rels, 2, nova.New())
	if len(cs) != 0 || next[0].Surfaced {
		t.Errorf("a modest result says nothing and keeps the entry: %+v", cs)
	}
}

func TestPreprodMuseAnnouncedOnce(t *testing.T) {
	c := ledger.NewCounter()
	rels := talent.NewRelations()
	var l ledger.Ledger
	for film := 1; film <= 3; film++ {
		rels = talent.RecordHire(rels, talent.Veteran, film)
		l = l.Append(c.NewEntry(film, ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor(string(talent.Veteran))))
	}
	l = l.Append(c.NewEntry(3, ledger.BeatTalent, ledger.TagMuseUnlocked, ledger.WithActor(string(talent.Veteran))))

	cs, next := CheckPreprod(l, rels, 4, nova.New())
	if countKind(cs, KindMuse) != 1 || cs[0].Actor != talent.Veteran {
		t.Fatalf("expected muse announcement, got %+v", cs)
	}
	if cs, _ = CheckPreprod(next, rels, 4, nova.New()); countKind(cs, KindMuse) != 0 {
		t.Error("muse announced twice")
	}

	rels = talent.RecordHire(rels, talent.Veteran, 4)
	if cs, _ = CheckPreprod(l, rels, 5, nova.New()); countKind(cs, KindMuse) != 0 {
		t.Error("muse is announced only at exactly three hires")
	}
}

func TestPreprodBadBlood(t *testing.T) {
	rels := talent.NewRelations()
	for i := 0; i < 3; i++ {
		rels = talent.RecordDemandDenied(rels, talent.Comedian, i+1)
		rels = talent.RecordDemandDenied(rels, talent.Ingenue, i+1)
	}
	rels = talent.RecordWalkoutFired(rels, talent.Ingenue)

	cs, _ := CheckPreprod(nil, rels, 4, nova.New())
	if len(cs) != 1 || cs[0].Actor != talent.Comedian || cs[0].Kind != KindHeadline {
		t.Errorf("only the un-blacklisted comedian has bad blood: %+v", cs)
	}
}

func TestPreprodStreakWarnings(t *testing.T) {
	c := ledger.NewCounter()
	var l ledger.Ledger
	for film := 1; film <= 3; film++ {
		l = l.Append(
			c.NewEntry(film, ledger.BeatMarket, ledger.TagGenrePicked, ledger.WithDetail("western")),
			c.NewEntry(film, ledger.BeatMoney, ledger.TagBudgetTier, ledger.WithDetail(ledger.BudgetIndie)),
			c.NewEntry(film, ledger.BeatMoney, ledger.TagFundingSelf),
			c.NewEntry(film, ledger.BeatMoney, ledger.TagTreasuryDip),
		)
	}
	rels := talent.NewRelations()

	early, _ := CheckPreprod(l, rels, 3, nova.New())
	if len(early) != 1 || early[0].Title != "TREASURY RAID" {
		t.Errorf("film 3 should only raise the treasury warning, got %+v", early)
	}

	for i := 0; i < 2; i++ {
		cs, next := CheckPreprod(l, rels, 4, nova.New())
		for _, title := range []string{"AUDIENCE FATIGUE", "SMALL-TIME REPUTATION", "TRUST ISSUES", "TREASURY RAID"} {
			if _, ok := find(cs, title); !ok {
				t.Errorf("call %d: missing %s", i+1, title)
			}
		}
		l = next
	}
}

func TestPreprodNovaCopy(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{c.NewEntry(3, ledger.BeatLot, ledger.TagNovaCopiedGenre, ledger.WithDetail("horror"), ledger.WithMeta("title", "Neon Harbor"))}

	if cs, _ := CheckPreprod(l, talent.NewRelations(), 3, nova.New()); len(cs) != 0 {
		t.Errorf("too early for Nova callbacks: %+v", cs)
	}
	cs, next := CheckPreprod(l, talent.NewRelations(), 4, nova.New())
	if len(cs) != 1 || !strings.Contains(cs[0].Description, "Neon Harbor") {
		t.Fatalf("expected Nova callback, got %+v", cs)
	}
	if cs, _ = CheckPreprod(next, talent.NewRelations(), 5, nova.New()); len(cs) != 0 {
		t.Errorf("Nova callback repeated: %+v", cs)
	}
}

func TestPreprodRideDemolition(t *testing.T) {
	c := ledger.NewCounter()
	rels := talent.NewRelations()
	rels = talent.RecordHire(rels, talent.ScreamQueen, 1)
	l := ledger.Ledger{
		c.NewEntry(1, ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor(string(talent.ScreamQueen))),
		c.NewEntry(1, ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor(string(talent.Unknown))),
		c.NewEntry(1, ledger.BeatLot, ledger.TagRideBuilt, ledger.WithDetail(RideID("horror"))),
		c.NewEntry(2, ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor(string(talent.Comedian))),
		c.NewEntry(4, ledger.BeatLot, ledger.TagRideDemolished, ledger.WithDetail(RideID("horror"))),
	}
	rels = talent.RecordHire(rels, talent.Comedian, 2)

	cs, next := CheckPreprod(l, rels, 5, nova.New())
	if len(cs) != 1 {
		t.Fatalf("expected one callback, got %+v", cs)
	}
	desc := cs[0].Description
	if !strings.Contains(desc, "The Scream Queen") || strings.Contains(desc, "The Unknown") || strings.Contains(desc, "Comedian") {
		t.Errorf("wrong talent named: %s", desc)
	}
	if !next[4].Surfaced {
		t.Error("demolition should be surfaced")
	}
	if cs, _ = CheckPreprod(next, rels, 5, nova.New()); len(cs) != 0 {
		t.Errorf("demolition callback repeated: %+v", cs)
	}
}

func TestLotNovaIntro(t *testing.T) {
	if cs := CheckLot(nil, 1, nova.New()); len(cs) != 0 {
		t.Errorf("no Nova in film 1: %+v", cs)
	}
	if cs := CheckLot(nil, 2, nova.New()); len(cs) != 1 || cs[0].Title != "NOVA PICTURES OPENS ITS GATES" {
		t.Errorf("expected Nova intro, got %+v", cs)
	}
	c := ledger.NewCounter()
	l := ledger.Ledger{c.NewEntry(2, ledger.BeatLot, ledger.TagNovaIntroduced)}
	if cs := CheckLot(l, 2, nova.New()); len(cs) != 0 {
		t.Errorf("Nova introduced twice: %+v", cs)
	}
}

func TestLotMilestones(t *testing.T) {
	c := ledger.NewCounter()
	l := ledger.Ledger{c.NewEntry(1, ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail("commissary"))}
	if cs := CheckLot(l, 1, nova.New()); len(cs) != 1 || cs[0].Title != "BREAKING GROUND" {
		t.Errorf("expected first building milestone, got %+v", cs)
	}
	if cs := CheckLot(l, 3, nova.New()); len(cs) != 0 {
		t.Errorf("milestone belongs to the film it happened in: %+v", cs)
	}

	l = l.Append(
		c.NewEntry(3, ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail("vfx_lab")),
		c.NewEntry(4, ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail("soundstage")),
	)
	if cs := CheckLot(l, 4, nova.New()); len(cs) != 1 || cs[0].Title != "A REAL STUDIO LOT" {
		t.Errorf("expected third building milestone, got %+v", cs)
	}
}

func TestGenerateNews(t *testing.T) {
	c := ledger.NewCounter()
	var l ledger.Ledger
	for film := 1; film <= 3; film++ {
		l = l.Append(c.NewEntry(film, ledger.BeatMarket, ledger.TagGenrePicked, ledger.WithDetail("horror")))
	}
	l = l.Append(
		c.NewEntry(3, ledger.BeatTalent, ledger.TagDemandAccepted, ledger.WithActor(string(talent.Diva))),
		c.NewEntry(3, ledger.BeatTalent, ledger.TagDemandDenied, ledger.WithActor(string(talent.Megastar))),
		c.NewEntry(3, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail("blockbuster"), ledger.WithMeta("title", "Night Shift")),
		c.NewEntry(3, ledger.BeatLot, ledger.TagBuildingBought, ledger.WithDetail("vfx_lab")),
	)
	rival := nova.State{Introduced: true, Films: []nova.Film{{Title: "Golden Signal", Verdict: ledger.VerdictBlockbuster}}}

	news, next := GenerateNews(l, rival)
	want := []string{
		"NIGHT SHIFT SHATTERS OPENING WEEKEND RECORDS",
		"Pacific Dreams breaks ground on a new VFX Lab",
		"Is Pacific Dreams becoming the horror studio? Insiders say yes",
		"Nova Pictures scores a blockbuster with Golden Signal",
		"The Diva gets their way again, sources say",
		"The Megastar storms out of a meeting after the studio says no",
	}
	if len(news) != len(want) {
		t.Fatalf("got %d headlines: %q", len(news), news)
	}
	for i := range want {
		if news[i] != want[i] {
			t.Errorf("headline %d: got %q, want %q", i, news[i], want[i])
		}
	}

	again, _ := GenerateNews(next, nova.New())
	if len(again) != 2 {
		t.Errorf("surfaced headlines repeated: %q", again)
	}
}
