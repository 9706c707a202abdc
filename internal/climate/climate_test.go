package climate

import (
	"testing"

	"baalrealm/internal/coords"
	"baalrealm/internal/season"

	"github.com/stretchr/testify/assert"
)

type fakeAnomaly struct {
	loc               coords.Location
	precip, temp, pres float64
}

func (f fakeAnomaly) PrecipEffect(loc coords.Location) float64 {
	if loc == f.loc {
		return f.precip
	}
	return 1
}
func (f fakeAnomaly) TempEffect(loc coords.Location) float64 {
	if loc == f.loc {
		return f.temp
	}
	return 0
}
func (f fakeAnomaly) PressureEffect(loc coords.Location) float64 {
	if loc == f.loc {
		return f.pres
	}
	return 0
}

func TestAtmosphere_CycleAppliesClimateAndAnomalies(t *testing.T) {
	c := Climate{
		Temperature: [4]float64{20, 50, 80, 55},
		Precip:      [4]float64{2, 3, 1, 2.5},
		Wind:        [4]Wind{{SpeedMPH: 5}, {SpeedMPH: 8}, {SpeedMPH: 3}, {SpeedMPH: 6}},
	}
	loc := coords.Location{Row: 1, Col: 1}
	a := NewAtmosphere()
	assert.Equal(t, 1000.0, a.Pressure)

	an := fakeAnomaly{loc: loc, precip: 2.0, temp: 7, pres: 15}
	a.Cycle(loc, c, season.Summer, []AnomalyEffect{an})

	assert.Equal(t, 87.0, a.Temperature) // 80 + 7
	assert.Equal(t, 1015.0, a.Pressure)  // 1000 + 15
	assert.Equal(t, 2.0, a.Precip)       // 1 * 2.0
	assert.Equal(t, a.Temperature-20, a.Dewpoint)
	assert.Equal(t, float32(3), a.Wind.SpeedMPH)
}

func TestAtmosphere_OverridesDoNotSurviveNextCycle(t *testing.T) {
	c := Climate{Temperature: [4]float64{10, 10, 10, 10}, Precip: [4]float64{1, 1, 1, 1}}
	a := NewAtmosphere()
	a.Cycle(coords.Location{}, c, season.Winter, nil)
	a.OverrideTemperature(999)
	assert.Equal(t, 999.0, a.Temperature)

	a.Cycle(coords.Location{}, c, season.Winter, nil)
	assert.Equal(t, 10.0, a.Temperature, "override must not survive the next Cycle")
}

func TestWind_PlusPreservesDirection(t *testing.T) {
	w := Wind{SpeedMPH: 10, Direction: coords.NE}
	w2 := w.Plus(5)
	assert.Equal(t, float32(15), w2.SpeedMPH)
	assert.Equal(t, coords.NE, w2.Direction)
}
