// Package dialogue picks what a character says. Each character has a bank
// of context sections; a section can hold memory candidates (a predicate
// over the game so far, a priority, and a line producer), lines keyed by a
// sub-selector, and a generic fallback.
//
// Resolution order for one request:
//
//  1. Unknown character or context: Filler.
//  2. The highest-priority memory candidate whose predicate passes speaks.
//     An empty line from that candidate falls through to step 3, never to
//     a lower-priority candidate.
//  3. A line under Ctx.Key.
//  4. The generic line.
//  5. Placeholder.
package dialogue

import (
	"math/rand"
	"sort"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/talent"
)

// Filler is said when a character or context has no authored content.
const Filler = "Hmm."

// Placeholder is said when a section exists but nothing in it resolves.
const Placeholder = "..."

// Character identifies a speaker.
type Character string

// Context identifies the moment a line is requested for.
type Context string

// Ctx is what predicates and producers can see.
type Ctx struct {
	Ledger    ledger.Ledger
	Film      int
	Key       string           // Optional sub-selector, e.g. a sentiment bucket
	Relations talent.Relations // Optional
	Actor     talent.Archetype // Optional talent the line is about
	Rand      *rand.Rand       // Nil uses the global source
}

func (c Ctx) intn(n int) int {
	if c.Rand != nil {
		return c.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// Line is a resolvable piece of dialogue: Fixed, Choice, or Computed.
type Line interface {
	resolve(ctx Ctx) string
}

// Fixed always says the same thing.
type Fixed string

func (f Fixed) resolve(Ctx) string { return string(f) }

// Choice says one of its lines, picked uniformly at random.
type Choice []string

func (c Choice) resolve(ctx Ctx) string {
	if len(c) == 0 {
		return ""
	}
	return c[ctx.intn(len(c))]
}

// Computed builds its line from the context. Returning "" opts out.
type Computed func(ctx Ctx) string

func (f Computed) resolve(ctx Ctx) string {
	if f == nil {
		return ""
	}
	return f(ctx)
}

// Candidate is a memory-conditioned line.
type Candidate struct {
	Name     string
	Priority int
	When     func(ctx Ctx) bool
	Say      Line
}

// Section is everything a character can say in one context.
type Section struct {
	Generic Line
	Keys    map[string]Line
	Memory  []Candidate
}

// Bank maps contexts to sections for one character.
type Bank map[Context]Section

// Engine resolves lines against a set of banks.
type Engine struct {
	banks map[Character]Bank
}

// NewEngine creates an engine over banks. The engine owns the map.
func NewEngine(banks map[Character]Bank) *Engine {
	if banks == nil {
		banks = make(map[Character]Bank)
	}
	return &Engine{banks: banks}
}

// Register adds memory candidates to a character's context, creating the
// bank and section when missing.
func (e *Engine) Register(ch Character, context Context, cands ...Candidate) {
	bank, ok := e.banks[ch]
	if !ok {
		bank = make(Bank)
		e.banks[ch] = bank
	}
	sec := bank[context]
	sec.Memory = append(sec.Memory, cands...)
	bank[context] = sec
}

// Characters returns the speakers with a bank, sorted.
func (e *Engine) Characters() []Character {
	out := make([]Character, 0, len(e.banks))
	for ch := range e.banks {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contexts returns the contexts authored for ch, sorted.
func (e *Engine) Contexts(ch Character) []Context {
	bank := e.banks[ch]
	out := make([]Context, 0, len(bank))
	for c := range bank {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Get returns the line ch says in context.
func (e *Engine) Get(ch Character, context Context, ctx Ctx) string {
	bank, ok := e.banks[ch]
	if !ok {
		return Filler
	}
	sec, ok := bank[context]
	if !ok {
		return Filler
	}

	if c, ok := topCandidate(sec.Memory, ctx); ok {
		if line := resolve(c.Say, ctx); line != "" {
			return line
		}
	}

	if ctx.Key != "" {
		if l, ok := sec.Keys[ctx.Key]; ok {
			if line := resolve(l, ctx); line != "" {
				return line
			}
		}
	}

	if line := resolve(sec.Generic, ctx); line != "" {
		return line
	}
	return Placeholder
}

// topCandidate returns the passing candidate with the highest priority.
// Equal priorities go to the one declared first.
func topCandidate(cands []Candidate, ctx Ctx) (Candidate, bool) {
	var passing []Candidate
	for _, c := range cands {
		if c.When == nil || c.When(ctx) {
			passing = append(passing, c)
		}
	}
	if len(passing) == 0 {
		return Candidate{}, false
	}
	sort.SliceStable(passing, func(i, j int) bool {
		return passing[i].Priority > passing[j].Priority
	})
	return passing[0], true
}

func resolve(l Line, ctx Ctx) string {
	if l == nil {
		return ""
	}
	return l.resolve(ctx)
}
