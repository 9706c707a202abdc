// Package anomaly generates stochastic weather-deviation objects, applied
// by the climate package each turn (spec §3, §4.3). Grounded on
// internal/worldgen/weather/extremes.go's probabilistic extreme-event roll.
package anomaly

import (
	"math"
	"math/rand"

	"baalrealm/internal/coords"
)

// Category is the closed set of weather dimensions an Anomaly can deviate.
type Category int

const (
	Temperature Category = iota
	Precip
	Pressure
)

// MaxIntensity bounds an Anomaly's magnitude; spec §3 and §8 both treat 3
// as the hard ceiling.
const MaxIntensity = 3

// tailMass is the starting tail probability mass per spec §4.3 ("p =
// 0.03").
const tailMass = 0.03

// Anomaly is a single weather deviation at one location, generated fresh
// every turn and discarded at the end of it.
type Anomaly struct {
	Category  Category
	Intensity int
	Location  coords.Location
}

// PrecipEffect implements climate.AnomalyEffect: precip × (2/3)^intensity
// at the anomaly's own location, identity (1.0) elsewhere or for other
// categories.
func (a Anomaly) PrecipEffect(loc coords.Location) float64 {
	if a.Category != Precip || a.Location != loc {
		return 1.0
	}
	return math.Pow(2.0/3.0, float64(a.Intensity))
}

// TempEffect implements climate.AnomalyEffect: +7*intensity at the
// anomaly's own location, 0 elsewhere or for other categories.
func (a Anomaly) TempEffect(loc coords.Location) float64 {
	if a.Category != Temperature || a.Location != loc {
		return 0
	}
	return 7 * float64(a.Intensity)
}

// PressureEffect implements climate.AnomalyEffect: +15*intensity at the
// anomaly's own location, 0 elsewhere or for other categories.
func (a Anomaly) PressureEffect(loc coords.Location) float64 {
	if a.Category != Pressure || a.Location != loc {
		return 0
	}
	return 15 * float64(a.Intensity)
}

// Generate draws one candidate anomaly of the given category at loc,
// returning (anomaly, true) if a nonzero intensity resulted, or
// (zero-value, false) if the roll produced no deviation this turn.
//
// Algorithm (spec §4.3): draw roll in [0,1). Let p = tailMass. If
// roll > 1-p, sign is +; if roll < p, sign is -; otherwise intensity is 0
// and nothing is generated. Starting from p, repeatedly intensity += sign
// and p /= 2 while roll < p (after normalizing a positive roll into the
// same [0,p) space the negative roll lives in), bounded by |intensity| <=
// MaxIntensity.
func Generate(rng *rand.Rand, category Category, loc coords.Location) (Anomaly, bool) {
	roll := rng.Float64()

	// Normalize the positive tail into the same [0, tailMass) space the
	// negative tail already lives in; only the sign differs from here.
	positiveTail := 1 - tailMass
	sign := -1
	if roll > positiveTail {
		roll -= positiveTail
		sign = 1
	}

	intensity := 0
	p := tailMass
	for roll < p {
		intensity += sign
		p /= 2
		if intensity == sign*MaxIntensity {
			break
		}
	}

	if intensity == 0 {
		return Anomaly{}, false
	}
	return Anomaly{Category: category, Intensity: intensity, Location: loc}, true
}

// GenerateAll draws one candidate anomaly per category at loc, returning
// only those that materialized (spec §4.3: "Intensity-zero anomalies are
// discarded").
func GenerateAll(rng *rand.Rand, loc coords.Location) []Anomaly {
	var out []Anomaly
	for _, cat := range []Category{Temperature, Precip, Pressure} {
		if a, ok := Generate(rng, cat, loc); ok {
			out = append(out, a)
		}
	}
	return out
}
