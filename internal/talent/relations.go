// Relationship dynamics: loyalty, grudges, muse and blacklist states for
// recurring talent. Every recorder returns a new map and leaves its input
// untouched; callers swap the result in as the new state.
package talent

import "github.com/talgya/backlot-mogul/internal/ledger"

// BlacklistGrudge is the grudge sentinel written when talent is fired.
const BlacklistGrudge = 99

// MuseHires is the hire count at which talent becomes a muse.
const MuseHires = 3

// Demand is one request a talent made and how the studio answered.
type Demand struct {
	Film     int  `json:"film"`
	Accepted bool `json:"accepted"`
}

// Relation is the studio's history with one archetype. IsMuse, IsUpgraded
// and IsBlacklisted are one-way: once set they stay set.
type Relation struct {
	Loyalty       int      `json:"loyalty"`
	Grudge        int      `json:"grudge"`
	TimesHired    int      `json:"times_hired"`
	LastFilm      *int     `json:"last_film,omitempty"`
	DemandHistory []Demand `json:"demand_history"`
	IsMuse        bool     `json:"is_muse"`
	IsUpgraded    bool     `json:"is_upgraded"`
	IsBlacklisted bool     `json:"is_blacklisted"`
}

// DeniedDemands counts refused demands.
func (r Relation) DeniedDemands() int {
	n := 0
	for _, d := range r.DemandHistory {
		if !d.Accepted {
			n++
		}
	}
	return n
}

func (r Relation) clone() Relation {
	if r.LastFilm != nil {
		f := *r.LastFilm
		r.LastFilm = &f
	}
	r.DemandHistory = append([]Demand(nil), r.DemandHistory...)
	return r
}

// Relations maps every roster archetype to its relation.
type Relations map[Archetype]Relation

// NewRelations creates a zeroed relation for every roster archetype.
func NewRelations() Relations {
	rels := make(Relations, len(roster))
	for _, t := range roster {
		rels[t.Key] = Relation{}
	}
	return rels
}

// Get returns the relation for key; unknown keys yield a zero relation.
func (rels Relations) Get(key Archetype) Relation {
	return rels[key]
}

func (rels Relations) clone() Relations {
	out := make(Relations, len(rels))
	for k, v := range rels {
		out[k] = v
	}
	return out
}

// update copies rels, applies fn to a deep copy of key's relation and
// stores it. Keys off the roster return rels unchanged. A blacklisted
// grudge is pinned at BlacklistGrudge whatever fn does.
func (rels Relations) update(key Archetype, fn func(*Relation)) Relations {
	rel, ok := rels[key]
	if !ok || !Known(key) {
		return rels
	}
	rel = rel.clone()
	fn(&rel)
	if rel.IsBlacklisted {
		rel.Grudge = BlacklistGrudge
	}
	out := rels.clone()
	out[key] = rel
	return out
}

// RecordHire counts a hire in film. The third hire makes a muse.
func RecordHire(rels Relations, key Archetype, film int) Relations {
	return rels.update(key, func(r *Relation) {
		r.TimesHired++
		r.LastFilm = &film
		r.Loyalty++
		if r.TimesHired >= MuseHires {
			r.IsMuse = true
		}
	})
}

// RecordDemandAccepted notes a granted demand. Granting heals one grudge.
func RecordDemandAccepted(rels Relations, key Archetype, film int) Relations {
	return rels.update(key, func(r *Relation) {
		r.DemandHistory = append(r.DemandHistory, Demand{Film: film, Accepted: true})
		r.Loyalty += 2
		if r.Grudge > 0 {
			r.Grudge--
		}
	})
}

// RecordDemandDenied notes a refused demand.
func RecordDemandDenied(rels Relations, key Archetype, film int) Relations {
	return rels.update(key, func(r *Relation) {
		r.DemandHistory = append(r.DemandHistory, Demand{Film: film, Accepted: false})
		r.Grudge++
	})
}

// RecordFilmResult applies a released film's verdict to a cast member.
// A flop deepens an existing grudge but never starts one.
func RecordFilmResult(rels Relations, key Archetype, verdict ledger.Verdict) Relations {
	return rels.update(key, func(r *Relation) {
		switch verdict {
		case ledger.VerdictBlockbuster, ledger.VerdictHit:
			r.Loyalty++
			if key == Underdog && verdict == ledger.VerdictBlockbuster && !r.IsUpgraded {
				r.IsUpgraded = true
			}
		case ledger.VerdictFlop:
			if r.Loyalty > 0 {
				r.Loyalty--
			}
			if r.Grudge > 0 {
				r.Grudge++
			}
		}
	})
}

// RecordWalkoutFired blacklists talent that was fired after walking out.
// This cannot be undone.
func RecordWalkoutFired(rels Relations, key Archetype) Relations {
	return rels.update(key, func(r *Relation) {
		r.IsBlacklisted = true
		r.Grudge = BlacklistGrudge
		r.Loyalty = 0
	})
}

// RecordWalkoutForgiven eases a grudge after the studio gave in.
func RecordWalkoutForgiven(rels Relations, key Archetype) Relations {
	return rels.update(key, func(r *Relation) {
		r.Grudge -= 2
		if r.Grudge < 0 {
			r.Grudge = 0
		}
		r.Loyalty++
	})
}

// DecayGrudges is the between-films tick: every grudge that is not a
// blacklisting fades by one. Run it exactly once per completed film.
func DecayGrudges(rels Relations) Relations {
	out := rels.clone()
	for k, r := range out {
		if r.IsBlacklisted || r.Grudge <= 0 {
			continue
		}
		r = r.clone()
		r.Grudge--
		out[k] = r
	}
	return out
}
