package talent

import "math"

// RefusalReason explains why talent turned the studio down.
type RefusalReason string

const (
	RefuseNone        RefusalReason = ""
	RefuseBlacklisted RefusalReason = "blacklisted"
	RefuseGrudge      RefusalReason = "grudge"
	RefuseReputation  RefusalReason = "reputation"
)

// Refusal is the outcome of asking talent to sign on.
type Refusal struct {
	Refused bool          `json:"refused"`
	Reason  RefusalReason `json:"reason,omitempty"`
}

// CheckRefusal decides whether key declines to work for a studio with
// reputation rep. Blacklisting and deep grudges win over reputation.
func CheckRefusal(rels Relations, key Archetype, rep int) Refusal {
	t, ok := Lookup(key)
	if !ok {
		return Refusal{}
	}
	rel := rels.Get(key)
	switch {
	case rel.IsBlacklisted:
		return Refusal{Refused: true, Reason: RefuseBlacklisted}
	case rel.Grudge >= 3:
		return Refusal{Refused: true, Reason: RefuseGrudge}
	case t.Tier == TierA && rep < t.RefuseBelow:
		return Refusal{Refused: true, Reason: RefuseReputation}
	}
	return Refusal{}
}

// Severity grades a walkout threat.
type Severity string

const (
	SeveritySerious Severity = "serious"
	SeverityExtreme Severity = "extreme"
)

// Walkout is a mid-production threat from a cast member.
type Walkout struct {
	Actor    Archetype `json:"actor"`
	Severity Severity  `json:"severity"`
	Grudge   int       `json:"grudge"`
	Denied   int       `json:"denied"`
}

// CheckWalkout returns a walkout when key has had at least two demands
// denied and still holds a grudge of two or more.
func CheckWalkout(rels Relations, key Archetype) *Walkout {
	if !Known(key) {
		return nil
	}
	rel := rels.Get(key)
	denied := rel.DeniedDemands()
	if denied < 2 || rel.Grudge < 2 {
		return nil
	}
	sev := SeveritySerious
	if rel.Grudge >= 4 {
		sev = SeverityExtreme
	}
	return &Walkout{Actor: key, Severity: sev, Grudge: rel.Grudge, Denied: denied}
}

// ModifiedCost adjusts a base fee for history. Loyal talent gives a
// discount; a grudge of two or more costs at least a 15% premium, which no
// discount can undercut.
func ModifiedCost(rels Relations, key Archetype, baseCost int) int {
	rel := rels.Get(key)
	mult := 1.0
	if rel.Loyalty >= 5 {
		mult = 0.80
	} else if rel.Loyalty >= 3 {
		mult = 0.90
	}
	if rel.Grudge >= 2 {
		mult = math.Max(mult, 1.15)
	}
	return int(math.Round(float64(baseCost) * mult))
}

// RelationStatus is the display label for a relation.
type RelationStatus string

const (
	StatusBlacklisted RelationStatus = "Blacklisted"
	StatusMuse        RelationStatus = "Muse"
	StatusDevoted     RelationStatus = "Devoted"
	StatusFriendly    RelationStatus = "Friendly"
	StatusHostile     RelationStatus = "Hostile"
	StatusResentful   RelationStatus = "Resentful"
	StatusWary        RelationStatus = "Wary"
	StatusWorkedWith  RelationStatus = "Worked Together"
	StatusStranger    RelationStatus = "Stranger"
)

// Status labels key's relation. The first matching state wins.
func Status(rels Relations, key Archetype) RelationStatus {
	rel := rels.Get(key)
	switch {
	case rel.IsBlacklisted:
		return StatusBlacklisted
	case rel.IsMuse:
		return StatusMuse
	case rel.Loyalty >= 5:
		return StatusDevoted
	case rel.Loyalty >= 3:
		return StatusFriendly
	case rel.Grudge >= 3:
		return StatusHostile
	case rel.Grudge >= 2:
		return StatusResentful
	case rel.Grudge >= 1:
		return StatusWary
	case rel.TimesHired > 0:
		return StatusWorkedWith
	}
	return StatusStranger
}
