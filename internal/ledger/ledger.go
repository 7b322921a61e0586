package ledger

// Ledger is the ordered event log of one game. Entries are never removed
// or reordered.
type Ledger []Entry

// Append returns the ledger with entries added at the end.
func (l Ledger) Append(entries ...Entry) Ledger {
	return append(l, entries...)
}

// MarkSurfaced returns a copy of the ledger with the entry for turn flagged
// as surfaced. The receiver is left untouched. Unknown turns and entries
// already surfaced leave the contents unchanged.
func (l Ledger) MarkSurfaced(turn int) Ledger {
	for i := range l {
		if l[i].Turn != turn {
			continue
		}
		if l[i].Surfaced {
			return l
		}
		next := make(Ledger, len(l))
		copy(next, l)
		next[i].Surfaced = true
		return next
	}
	return l
}

// SurfaceOne finds the first entry not yet surfaced whose tag is any of
// tags, and returns it with the ledger that records its consumption.
func (l Ledger) SurfaceOne(tags ...Tag) (Entry, Ledger, bool) {
	for _, e := range l {
		if e.Surfaced || !hasTag(tags, e.Tag) {
			continue
		}
		next := l.MarkSurfaced(e.Turn)
		e.Surfaced = true
		return e, next, true
	}
	return Entry{}, l, false
}

// Entry returns the entry for turn.
func (l Ledger) Entry(turn int) (Entry, bool) {
	for _, e := range l {
		if e.Turn == turn {
			return e, true
		}
	}
	return Entry{}, false
}

func hasTag(tags []Tag, t Tag) bool {
	for _, tag := range tags {
		if tag == t {
			return true
		}
	}
	return false
}
