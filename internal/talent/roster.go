// Talent archetypes: the fixed roster of 18 recurring performers and
// directors the studio can hire. The roster is closed: relations exist for
// exactly these keys and recorders ignore anything else.
package talent

// Archetype is the key of one roster entry.
type Archetype string

const (
	Megastar       Archetype = "megastar"
	MethodActor    Archetype = "method_actor"
	Diva           Archetype = "diva"
	Heartthrob     Archetype = "heartthrob"
	AuteurDirector Archetype = "auteur_director"
	ActionHero     Archetype = "action_hero"
	CharacterActor Archetype = "character_actor"
	Comedian       Archetype = "comedian"
	ScreamQueen    Archetype = "scream_queen"
	Ingenue        Archetype = "ingenue"
	Veteran        Archetype = "veteran"
	StuntLegend    Archetype = "stunt_legend"
	HasBeen        Archetype = "has_been"
	Unknown        Archetype = "unknown"
	Influencer     Archetype = "influencer"
	NepoBaby       Archetype = "nepo_baby"
	TheaterKid     Archetype = "theater_kid"
	HackDirector   Archetype = "hack_director"
)

// Underdog is the archetype whose blockbuster unlocks a permanent upgrade.
const Underdog = HasBeen

// Tier is a talent's billing level.
type Tier string

const (
	TierA Tier = "a"
	TierB Tier = "b"
	TierC Tier = "c"
)

// Talent is the static profile of an archetype.
type Talent struct {
	Key         Archetype `json:"key"`
	Name        string    `json:"name"`
	Tier        Tier      `json:"tier"`
	BaseCost    int       `json:"base_cost"`    // Thousands per film
	RefuseBelow int       `json:"refuse_below"` // Reputation an A-lister demands
	Craft       int       `json:"craft"`        // Quality contribution, 0–20
	StarPower   int       `json:"star_power"`   // Hype contribution, 0–20
	Demanding   bool      `json:"demanding"`    // Makes demands during talent beat
}

// roster holds every archetype in presentation order.
var roster = []Talent{
	{Key: Megastar, Name: "The Megastar", Tier: TierA, BaseCost: 900, RefuseBelow: 60, Craft: 10, StarPower: 20, Demanding: true},
	{Key: MethodActor, Name: "The Method Actor", Tier: TierA, BaseCost: 700, RefuseBelow: 50, Craft: 18, StarPower: 10, Demanding: true},
	{Key: Diva, Name: "The Diva", Tier: TierA, BaseCost: 800, RefuseBelow: 55, Craft: 12, StarPower: 17, Demanding: true},
	{Key: Heartthrob, Name: "The Heartthrob", Tier: TierA, BaseCost: 650, RefuseBelow: 45, Craft: 8, StarPower: 18, Demanding: true},
	{Key: AuteurDirector, Name: "The Auteur", Tier: TierA, BaseCost: 600, RefuseBelow: 50, Craft: 20, StarPower: 8, Demanding: true},
	{Key: ActionHero, Name: "The Action Hero", Tier: TierA, BaseCost: 750, RefuseBelow: 40, Craft: 7, StarPower: 16, Demanding: true},
	{Key: CharacterActor, Name: "The Character Actor", Tier: TierB, BaseCost: 300, Craft: 14, StarPower: 5},
	{Key: Comedian, Name: "The Comedian", Tier: TierB, BaseCost: 350, Craft: 9, StarPower: 11, Demanding: true},
	{Key: ScreamQueen, Name: "The Scream Queen", Tier: TierB, BaseCost: 250, Craft: 10, StarPower: 9},
	{Key: Ingenue, Name: "The Ingenue", Tier: TierB, BaseCost: 280, Craft: 9, StarPower: 12},
	{Key: Veteran, Name: "The Veteran", Tier: TierB, BaseCost: 320, Craft: 15, StarPower: 6, Demanding: true},
	{Key: StuntLegend, Name: "The Stunt Legend", Tier: TierB, BaseCost: 200, Craft: 8, StarPower: 8},
	{Key: HasBeen, Name: "The Has-Been", Tier: TierC, BaseCost: 120, Craft: 11, StarPower: 4},
	{Key: Unknown, Name: "The Unknown", Tier: TierC, BaseCost: 60, Craft: 7, StarPower: 2},
	{Key: Influencer, Name: "The Influencer", Tier: TierC, BaseCost: 150, Craft: 2, StarPower: 13, Demanding: true},
	{Key: NepoBaby, Name: "The Nepo Baby", Tier: TierC, BaseCost: 180, Craft: 4, StarPower: 10, Demanding: true},
	{Key: TheaterKid, Name: "The Theater Kid", Tier: TierC, BaseCost: 80, Craft: 10, StarPower: 3},
	{Key: HackDirector, Name: "The Hack", Tier: TierC, BaseCost: 100, Craft: 5, StarPower: 4},
}

var rosterIndex = func() map[Archetype]Talent {
	m := make(map[Archetype]Talent, len(roster))
	for _, t := range roster {
		m[t.Key] = t
	}
	return m
}()

// Roster returns every talent profile in presentation order.
func Roster() []Talent {
	out := make([]Talent, len(roster))
	copy(out, roster)
	return out
}

// Lookup returns the profile for key.
func Lookup(key Archetype) (Talent, bool) {
	t, ok := rosterIndex[key]
	return t, ok
}

// Known reports whether key is on the roster.
func Known(key Archetype) bool {
	_, ok := rosterIndex[key]
	return ok
}

// Name returns the display name for key, or the raw key when unknown.
func Name(key Archetype) string {
	if t, ok := rosterIndex[key]; ok {
		return t.Name
	}
	return string(key)
}

// Effective applies the permanent upgrade to a talent's numbers.
func (t Talent) Effective(rel Relation) Talent {
	if rel.IsUpgraded {
		t.Craft += 6
		t.StarPower += 8
	}
	return t
}
