// Package boxoffice turns a finished film's quality, hype and budget into
// a verdict and earnings. The model is deliberately coarse.
package boxoffice

import (
	"math"
	"math/rand"

	"github.com/talgya/backlot-mogul/internal/ledger"
)

// Input is what the audience reacts to. Quality and Hype are 0–100.
type Input struct {
	Quality int
	Hype    int
	Budget  int // Thousands
}

// Result is the opening run.
type Result struct {
	Verdict  ledger.Verdict `json:"verdict"`
	Earnings int            `json:"earnings"` // Thousands
	Critics  int            `json:"critics"`  // 0–100
}

// Simulate plays out a film's release.
func Simulate(in Input, rng *rand.Rand) Result {
	q := clamp(in.Quality, 0, 100)
	h := clamp(in.Hype, 0, 100)

	noise := rng.NormFloat64() * 8
	critics := clamp(int(math.Round(float64(q)+noise)), 0, 100)

	draw := 0.55*float64(h) + 0.45*float64(q) + rng.NormFloat64()*10
	multiple := math.Max(0.1, draw/30)
	earnings := int(math.Round(float64(in.Budget) * multiple))

	ratio := float64(earnings) / math.Max(1, float64(in.Budget))
	verdict := ledger.VerdictModest
	switch {
	case ratio >= 3:
		verdict = ledger.VerdictBlockbuster
	case ratio >= 1.8:
		verdict = ledger.VerdictHit
	case ratio < 0.9 && critics >= 75:
		verdict = ledger.VerdictCult
	case ratio < 0.9:
		verdict = ledger.VerdictFlop
	}
	return Result{Verdict: verdict, Earnings: earnings, Critics: critics}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
