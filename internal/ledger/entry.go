// Package ledger records player decisions as an append-only event log and
// derives patterns (streaks, favorites, firsts) from it.
package ledger

// Entry is one recorded event. Only Surfaced ever changes after creation,
// and only through MarkSurfaced or SurfaceOne.
type Entry struct {
	Film      int            `json:"film"`
	Beat      Beat           `json:"beat"`
	Tag       Tag            `json:"tag"`
	Actor     string         `json:"actor,omitempty"`  // Talent archetype or NPC name
	Detail    string         `json:"detail,omitempty"` // Genre id, building id, verdict, ...
	Meta      map[string]any `json:"meta,omitempty"`
	Sentiment int            `json:"sentiment"` // -3..3
	Turn      int            `json:"turn"`      // Unique per session, strictly increasing
	Surfaced  bool           `json:"surfaced"`
}

// MetaInt returns an integer meta value, or 0 when absent.
func (e Entry) MetaInt(key string) int {
	switch v := e.Meta[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// MetaString returns a string meta value, or "" when absent.
func (e Entry) MetaString(key string) string {
	s, _ := e.Meta[key].(string)
	return s
}

// Option configures an entry at creation.
type Option func(*Entry)

// WithActor sets the talent or NPC involved.
func WithActor(actor string) Option {
	return func(e *Entry) { e.Actor = actor }
}

// WithDetail sets the freeform payload.
func WithDetail(detail string) Option {
	return func(e *Entry) { e.Detail = detail }
}

// WithMeta adds an auxiliary value.
func WithMeta(key string, value any) Option {
	return func(e *Entry) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// WithSentiment sets the sentiment, clamped to [-3, 3].
func WithSentiment(s int) Option {
	return func(e *Entry) {
		if s > 3 {
			s = 3
		}
		if s < -3 {
			s = -3
		}
		e.Sentiment = s
	}
}

// Counter hands out turn numbers for one game session. Each session owns
// its own counter so concurrent games (and tests) never share ordering.
type Counter struct {
	last int
}

// NewCounter creates a counter whose first entry gets turn 1.
func NewCounter() *Counter {
	return &Counter{}
}

// NewEntry creates an entry stamped with the next turn.
func (c *Counter) NewEntry(film int, beat Beat, tag Tag, opts ...Option) Entry {
	c.last++
	e := Entry{Film: film, Beat: beat, Tag: tag, Turn: c.last}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Turn returns the most recently issued turn (0 before any entry).
func (c *Counter) Turn() int {
	return c.last
}

// Reset starts numbering over. Only a new game may call this; resetting
// mid-session would break the ordering every streak query relies on.
func (c *Counter) Reset() {
	c.last = 0
}
