// Package geology implements the per-tile plate-tectonic state described
// in spec §3: a closed five-kind enum, each carrying a plate movement rate
// and two buildup constants, driving a monotone tension/magma asymptote.
//
// Grounded on internal/ecosystem/geology.go's event/stats shape and
// internal/worldgen/geography/tectonics.go's plate-kind enum, collapsed
// from the teacher's full plate-tectonic simulation to the spec's closed
// five-kind model with one tunable constant table (spec §9: "function-
// valued tweakables should be compile-time constants ... in one table").
package geology

// Kind is the closed set of plate-boundary behaviors a tile's geology can
// exhibit.
type Kind int

const (
	Divergent Kind = iota
	Subducting
	Orogenic
	Transform
	Inactive
)

var kindNames = [...]string{"Divergent", "Subducting", "Orogenic", "Transform", "Inactive"}

func (k Kind) String() string {
	if k < Divergent || k > Inactive {
		return "?"
	}
	return kindNames[k]
}

// constants holds, per Kind, the plate movement rate and the two buildup
// coefficients. Values are illustrative relative magnitudes: divergent and
// subducting boundaries build tension/magma fastest, transform boundaries
// build tension only, inactive plates build neither.
type constants struct {
	PlateMovement      float64
	BaseMagmaBuildup   float64
	BaseTensionBuildup float64
}

var table = [...]constants{
	Divergent:  {PlateMovement: 2.0, BaseMagmaBuildup: 0.015, BaseTensionBuildup: 0.010},
	Subducting: {PlateMovement: 1.5, BaseMagmaBuildup: 0.020, BaseTensionBuildup: 0.018},
	Orogenic:   {PlateMovement: 1.0, BaseMagmaBuildup: 0.005, BaseTensionBuildup: 0.020},
	Transform:  {PlateMovement: 1.2, BaseMagmaBuildup: 0.0, BaseTensionBuildup: 0.015},
	Inactive:   {PlateMovement: 0.0, BaseMagmaBuildup: 0.0, BaseTensionBuildup: 0.0},
}

// State is a tile's mutable geological state: tension and magma, each
// asymptotically approaching but never reaching 1.
type State struct {
	Kind    Kind
	Tension float64
	Magma   float64
}

// New returns a fresh, quiescent State of the given kind.
func New(kind Kind) State {
	return State{Kind: kind}
}

// Cycle advances tension and magma by one turn's buildup:
// x' = x + (1-x)*(base_x * plate_movement).
func (s *State) Cycle() {
	c := table[s.Kind]
	s.Tension = asymptote(s.Tension, c.BaseTensionBuildup*c.PlateMovement)
	s.Magma = asymptote(s.Magma, c.BaseMagmaBuildup*c.PlateMovement)
}

func asymptote(x, rate float64) float64 {
	return x + (1-x)*rate
}
