package geology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_InactiveNeverBuildsUp(t *testing.T) {
	s := New(Inactive)
	for i := 0; i < 100; i++ {
		s.Cycle()
	}
	assert.Equal(t, 0.0, s.Tension)
	assert.Equal(t, 0.0, s.Magma)
}

func TestState_MonotoneAndBoundedBelowOne(t *testing.T) {
	s := New(Subducting)
	prevTension, prevMagma := s.Tension, s.Magma
	for i := 0; i < 10000; i++ {
		s.Cycle()
		assert.GreaterOrEqual(t, s.Tension, prevTension)
		assert.GreaterOrEqual(t, s.Magma, prevMagma)
		assert.Less(t, s.Tension, 1.0)
		assert.Less(t, s.Magma, 1.0)
		prevTension, prevMagma = s.Tension, s.Magma
	}
	assert.Greater(t, s.Tension, 0.9, "should approach 1 after many cycles")
}

func TestState_TransformBuildsTensionOnlyNotMagma(t *testing.T) {
	s := New(Transform)
	for i := 0; i < 50; i++ {
		s.Cycle()
	}
	assert.Greater(t, s.Tension, 0.0)
	assert.Equal(t, 0.0, s.Magma)
}
