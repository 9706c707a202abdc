// Package worldtile implements the seven-variant world tile tagged union
// described in spec §3: Ocean, Mountain, Desert, Tundra, Hills, Plains,
// Lush. Grounded on internal/worldgen/geography/types.go's enum+struct
// idiom, collapsed from the teacher's string-typed BiomeType set into the
// spec's closed seven-kind model with a single discriminated struct
// (spec §9: "model as tagged sum types with per-variant data").
package worldtile

import "baalrealm/internal/baalerr"

// Yield is a food/production pair. Spec §3 invariant: exactly one
// component is positive per tile (food and production are mutually
// exclusive yields).
type Yield struct {
	Food float64
	Prod float64
}

// FoodYield builds a food-only Yield.
func FoodYield(food float64) Yield { return Yield{Food: food} }

// ProdYield builds a production-only Yield.
func ProdYield(prod float64) Yield { return Yield{Prod: prod} }

// Scale multiplies both components by factor.
func (y Yield) Scale(factor float64) Yield {
	return Yield{Food: y.Food * factor, Prod: y.Prod * factor}
}

// Plus adds two yields component-wise.
func (y Yield) Plus(o Yield) Yield {
	return Yield{Food: y.Food + o.Food, Prod: y.Prod + o.Prod}
}

// checkExclusive raises a fatal invariant if both components are
// simultaneously nonzero-positive, per spec §7.2 ("tile yield with both
// food and prod non-zero").
func checkExclusive(y Yield) {
	if y.Food > 0 && y.Prod > 0 {
		baalerr.Raise("tile yield has both food=%v and prod=%v positive", y.Food, y.Prod)
	}
}
