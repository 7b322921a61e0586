// Package market derives which genres audiences want for each film from
// layered simplex noise, seeded per game so a run is reproducible.
package market

import (
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Genre ids.
const (
	Action  = "action"
	Comedy  = "comedy"
	Drama   = "drama"
	Horror  = "horror"
	SciFi   = "scifi"
	Romance = "romance"
	Musical = "musical"
	Western = "western"
)

// Genres lists every genre in menu order.
var Genres = []string{Action, Comedy, Drama, Horror, SciFi, Romance, Musical, Western}

// Heat thresholds in [0, 1].
const (
	HotAbove  = 0.62
	ColdBelow = 0.38
)

// Temperature classifies a genre's heat.
type Temperature string

const (
	Hot     Temperature = "hot"
	Neutral Temperature = "neutral"
	Cold    Temperature = "cold"
)

// Classify buckets a heat value.
func Classify(heat float64) Temperature {
	switch {
	case heat > HotAbove:
		return Hot
	case heat < ColdBelow:
		return Cold
	}
	return Neutral
}

// Market reports genre heat over the course of a game.
type Market struct {
	trend opensimplex.Noise // Slow drift across films
	fad   opensimplex.Noise // Short-lived spikes
}

// New creates a market for seed.
func New(seed int64) *Market {
	return &Market{
		trend: opensimplex.NewNormalized(seed),
		fad:   opensimplex.NewNormalized(seed + 1),
	}
}

// Heat returns each genre's appetite in [0, 1] during film.
func (m *Market) Heat(film int) map[string]float64 {
	out := make(map[string]float64, len(Genres))
	for i, g := range Genres {
		x := float64(film)
		y := float64(i) * 3.7
		v := 0.7*m.trend.Eval2(x*0.25, y) + 0.3*m.fad.Eval2(x*0.9, y+11)
		out[g] = v
	}
	return out
}

// Temperature returns the classification of genre during film.
func (m *Market) Temperature(film int, genre string) Temperature {
	heat, ok := m.Heat(film)[genre]
	if !ok {
		return Neutral
	}
	return Classify(heat)
}

// Ranked returns genres from hottest to coldest for film.
func (m *Market) Ranked(film int) []string {
	heat := m.Heat(film)
	out := append([]string(nil), Genres...)
	sort.SliceStable(out, func(i, j int) bool { return heat[out[i]] > heat[out[j]] })
	return out
}
