package grid

import (
	"math/rand"

	"baalrealm/internal/city"
	"baalrealm/internal/civilization"
	"baalrealm/internal/climate"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
	"baalrealm/internal/worldtile"
)

// World1 is the single hardcoded starting map (spec §8's "Startup"
// scenario world), a fixed 6x6 island with one founding city. Grounded
// verbatim on world_factory.py's _generate_world_1: each tile keeps its
// original per-season climate baseline and geological setting. Tectonic
// magnitude (e.g. "Subducting(2.0)" vs "Subducting(3.0)" in the source)
// collapses to plain Kind here, since this port's geology model tracks
// one buildup-rate table per Kind rather than a per-tile magnitude
// (see internal/geology's package doc).
const (
	world1Rows = 6
	world1Cols = 6
)

func uniformWind(speedMPH float32, dir coords.Direction) [4]climate.Wind {
	w := climate.Wind{SpeedMPH: speedMPH, Direction: dir}
	return [4]climate.Wind{w, w, w, w}
}

type tileSpec struct {
	kind        worldtile.Kind
	temperature [4]float64
	precip      [4]float64
	windMPH     float32
	windDir     coords.Direction
	geology     geology.Kind
}

// world1Tiles lists the 36 tiles of world 1 in row-major order, matching
// the ASCII layout in world_factory.py:
//
//	T P H M L O
//	D D M H L O
//	D M H L O O
//	H M L L O O
//	P L L O O O
//	O O O O O O
var world1Tiles = [world1Rows * world1Cols]tileSpec{
	// Row 1
	{worldtile.Tundra, [4]float64{10, 30, 50, 30}, [4]float64{4, 2, .5, 2}, 10, coords.WSW, geology.Inactive},
	{worldtile.Plains, [4]float64{20, 40, 60, 40}, [4]float64{5, 2.5, 1, 2.5}, 10, coords.WSW, geology.Inactive},
	{worldtile.Hills, [4]float64{15, 35, 50, 35}, [4]float64{6, 3.5, 2, 3.5}, 15, coords.WSW, geology.Inactive},
	{worldtile.Mountain, [4]float64{10, 25, 40, 25}, [4]float64{12, 7, 8, 7}, 25, coords.WSW, geology.Subducting},
	{worldtile.Lush, [4]float64{50, 60, 70, 60}, [4]float64{8, 8, 8, 8}, 10, coords.WSW, geology.Subducting},
	{worldtile.Ocean, [4]float64{65, 70, 75, 65}, [4]float64{9, 9, 9, 9}, 10, coords.SW, geology.Subducting},

	// Row 2
	{worldtile.Desert, [4]float64{25, 50, 75, 50}, [4]float64{4, 1.5, 1, 1.5}, 10, coords.SW, geology.Inactive},
	{worldtile.Desert, [4]float64{30, 55, 80, 55}, [4]float64{4, 1.5, 1, 1.5}, 10, coords.SW, geology.Inactive},
	{worldtile.Mountain, [4]float64{12, 27, 42, 27}, [4]float64{12, 7, 8, 7}, 25, coords.SW, geology.Inactive},
	{worldtile.Hills, [4]float64{40, 55, 70, 55}, [4]float64{10, 10, 10, 10}, 15, coords.SW, geology.Subducting},
	{worldtile.Lush, [4]float64{52, 62, 72, 62}, [4]float64{8, 8, 8, 8}, 10, coords.SW, geology.Subducting},
	{worldtile.Ocean, [4]float64{67, 72, 77, 67}, [4]float64{9, 9, 9, 9}, 10, coords.SSW, geology.Subducting},

	// Row 3
	{worldtile.Desert, [4]float64{30, 55, 80, 55}, [4]float64{4, 1.5, 1, 1.5}, 10, coords.S, geology.Inactive},
	{worldtile.Mountain, [4]float64{14, 29, 44, 29}, [4]float64{13, 8, 10, 8}, 25, coords.SSW, geology.Inactive},
	{worldtile.Hills, [4]float64{42, 57, 72, 57}, [4]float64{11, 11, 11, 11}, 15, coords.SSW, geology.Subducting},
	{worldtile.Lush, [4]float64{55, 65, 75, 65}, [4]float64{9, 9, 9, 9}, 10, coords.SSW, geology.Subducting},
	{worldtile.Ocean, [4]float64{70, 75, 80, 75}, [4]float64{10, 10, 10, 10}, 10, coords.S, geology.Subducting},
	{worldtile.Ocean, [4]float64{70, 75, 80, 75}, [4]float64{10, 10, 10, 10}, 10, coords.S, geology.Inactive},

	// Row 4
	{worldtile.Hills, [4]float64{30, 50, 65, 50}, [4]float64{4, 4, 4, 4}, 15, coords.S, geology.Inactive},
	{worldtile.Mountain, [4]float64{18, 33, 48, 33}, [4]float64{10, 9, 13, 9}, 25, coords.S, geology.Inactive},
	{worldtile.Lush, [4]float64{60, 70, 80, 70}, [4]float64{8, 10, 12, 10}, 10, coords.S, geology.Subducting},
	{worldtile.Lush, [4]float64{60, 70, 80, 70}, [4]float64{8, 10, 12, 8}, 10, coords.S, geology.Subducting},
	{worldtile.Ocean, [4]float64{75, 80, 85, 80}, [4]float64{11, 11, 11, 11}, 10, coords.SSE, geology.Inactive},
	{worldtile.Ocean, [4]float64{75, 80, 85, 80}, [4]float64{11, 11, 11, 11}, 10, coords.SSE, geology.Inactive},

	// Row 5
	{worldtile.Plains, [4]float64{40, 70, 90, 70}, [4]float64{3, 4, 8, 4}, 10, coords.SSE, geology.Transform},
	{worldtile.Lush, [4]float64{57, 67, 77, 67}, [4]float64{6, 8, 16, 8}, 10, coords.SSE, geology.Transform},
	{worldtile.Lush, [4]float64{59, 69, 79, 69}, [4]float64{8, 10, 16, 10}, 10, coords.SSE, geology.Transform},
	{worldtile.Ocean, [4]float64{75, 80, 85, 80}, [4]float64{12, 12, 12, 12}, 10, coords.SE, geology.Subducting},
	{worldtile.Ocean, [4]float64{75, 80, 85, 80}, [4]float64{12, 12, 12, 12}, 10, coords.SE, geology.Inactive},
	{worldtile.Ocean, [4]float64{75, 80, 85, 80}, [4]float64{12, 12, 12, 12}, 10, coords.SE, geology.Inactive},

	// Row 6
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
	{worldtile.Ocean, [4]float64{80, 85, 90, 85}, [4]float64{12, 12, 12, 12}, 10, coords.ESE, geology.Inactive},
}

// mountainElevation and oceanDepth are the fixed per-kind values
// world_factory.py assigns every Mountain and Ocean tile in world 1.
const (
	mountainElevation = 5000.0
	oceanDepth        = 1000.0
)

// capitalLocation is where world 1's founding city stands.
var capitalLocation = coords.Location{Row: 4, Col: 2}

// NewWorld1 builds the hardcoded starting world and its founding city
// "Capital", backed by civ for tech-level and yield-multiplier queries
// and rng for every stochastic draw the board makes thereafter.
func NewWorld1(civ *civilization.Civilization, rng *rand.Rand) (*World, *city.City) {
	g := NewGrid(world1Rows, world1Cols)

	for i, spec := range world1Tiles {
		loc := coords.Location{Row: i / world1Cols, Col: i % world1Cols}
		c := climate.Climate{
			Temperature: spec.temperature,
			Precip:      spec.precip,
			Wind:        uniformWind(spec.windMPH, spec.windDir),
		}
		t := worldtile.New(spec.kind, loc, c, geology.New(spec.geology))
		switch spec.kind {
		case worldtile.Mountain:
			t.Elevation = mountainElevation
		case worldtile.Ocean:
			t.Depth = oceanDepth
		}
		g.Set(t)
	}

	w := NewWorld(g, civ, rng)
	capital, err := w.PlaceCity("Capital", capitalLocation)
	if err != nil {
		panic("grid: world 1's hardcoded capital site is invalid: " + err.Error())
	}
	return w, capital
}
