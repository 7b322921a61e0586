// Derived queries over the ledger. None of these assume entries are grouped
// by film; everything scans in recorded order.
package ledger

// ByTag returns entries with the given tag, in order.
func (l Ledger) ByTag(tag Tag) []Entry {
	var out []Entry
	for _, e := range l {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// ByActor returns entries involving actor, in order.
func (l Ledger) ByActor(actor string) []Entry {
	var out []Entry
	for _, e := range l {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// ByFilm returns entries recorded during film, in order.
func (l Ledger) ByFilm(film int) []Entry {
	var out []Entry
	for _, e := range l {
		if e.Film == film {
			out = append(out, e)
		}
	}
	return out
}

// LastByTag returns the most recent entry with tag.
func (l Ledger) LastByTag(tag Tag) (Entry, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Tag == tag {
			return l[i], true
		}
	}
	return Entry{}, false
}

// CountTag counts entries with tag.
func (l Ledger) CountTag(tag Tag) int {
	n := 0
	for _, e := range l {
		if e.Tag == tag {
			n++
		}
	}
	return n
}

// CountDetail counts entries with tag whose detail equals detail.
func (l Ledger) CountDetail(tag Tag, detail string) int {
	n := 0
	for _, e := range l {
		if e.Tag == tag && e.Detail == detail {
			n++
		}
	}
	return n
}

// TimesHired counts TALENT_HIRED entries for actor.
func (l Ledger) TimesHired(actor string) int {
	n := 0
	for _, e := range l {
		if e.Tag == TagTalentHired && e.Actor == actor {
			n++
		}
	}
	return n
}

// Has reports whether any entry carries tag. A non-empty actor narrows the
// match to that actor.
func (l Ledger) Has(tag Tag, actor string) bool {
	for _, e := range l {
		if e.Tag == tag && (actor == "" || e.Actor == actor) {
			return true
		}
	}
	return false
}

// LastVerdict returns the most recent FILM_VERDICT entry.
func (l Ledger) LastVerdict() (Entry, bool) {
	return l.LastByTag(TagFilmVerdict)
}

// Streak is a run of identical trailing verdicts.
type Streak struct {
	Type  Verdict `json:"type"` // Empty when there are no verdicts
	Count int     `json:"count"`
}

// VerdictStreak counts how many of the latest FILM_VERDICT entries share
// the most recent verdict.
func (l Ledger) VerdictStreak() Streak {
	verdicts := l.ByTag(TagFilmVerdict)
	if len(verdicts) == 0 {
		return Streak{}
	}
	last := verdicts[len(verdicts)-1].Detail
	count := 0
	for i := len(verdicts) - 1; i >= 0; i-- {
		if verdicts[i].Detail != last {
			break
		}
		count++
	}
	return Streak{Type: Verdict(last), Count: count}
}

// GenreStreak returns the genre when the last three genre picks are the
// same one, or "" otherwise.
func (l Ledger) GenreStreak() string {
	picks := l.ByTag(TagGenrePicked)
	if len(picks) < 3 {
		return ""
	}
	tail := picks[len(picks)-3:]
	if tail[0].Detail == tail[1].Detail && tail[1].Detail == tail[2].Detail {
		return tail[0].Detail
	}
	return ""
}

// FavoriteGenre returns the most picked genre and its count. Ties go to the
// genre picked first.
func (l Ledger) FavoriteGenre() (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, e := range l.ByTag(TagGenrePicked) {
		if _, seen := counts[e.Detail]; !seen {
			order = append(order, e.Detail)
		}
		counts[e.Detail]++
	}
	best, bestCount := "", 0
	for _, g := range order {
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best, bestCount
}

// IndieStreak counts trailing BUDGET_TIER entries with the indie tier.
func (l Ledger) IndieStreak() int {
	tiers := l.ByTag(TagBudgetTier)
	n := 0
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].Detail != BudgetIndie {
			break
		}
		n++
	}
	return n
}

// SelfFundStreak counts how many of the latest funding decisions in a row
// were paid out of the studio's own pocket.
func (l Ledger) SelfFundStreak() int {
	n := 0
	for i := len(l) - 1; i >= 0; i-- {
		switch l[i].Tag {
		case TagFundingSelf:
			n++
		case TagFundingDistributor, TagFundingInvestor:
			return n
		}
	}
	return n
}

// AlwaysRating reports whether at least two ratings were chosen and every
// one of them was rating.
func (l Ledger) AlwaysRating(rating string) bool {
	ratings := l.ByTag(TagRatingChosen)
	if len(ratings) < 2 {
		return false
	}
	for _, e := range ratings {
		if e.Detail != rating {
			return false
		}
	}
	return true
}

// FirstBuilding returns the FIRST_BUILDING entry, if one was recorded.
func (l Ledger) FirstBuilding() (Entry, bool) {
	return l.LastByTag(TagFirstBuilding)
}
