package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeason_CyclesWithYearWrap(t *testing.T) {
	tm := New()
	assert.Equal(t, Winter, tm.Season)
	assert.Equal(t, 1, tm.Year)

	tm = tm.Next()
	assert.Equal(t, Spring, tm.Season)
	assert.Equal(t, 1, tm.Year)

	tm = tm.Next()
	tm = tm.Next()
	assert.Equal(t, Fall, tm.Season)
	assert.Equal(t, 1, tm.Year)

	tm = tm.Next()
	assert.Equal(t, Winter, tm.Season)
	assert.Equal(t, 2, tm.Year, "year increments only on Fall->Winter wrap")
}

func TestSeason_IndexMatchesOrder(t *testing.T) {
	assert.Equal(t, 0, Winter.Index())
	assert.Equal(t, 1, Spring.Index())
	assert.Equal(t, 2, Summer.Index())
	assert.Equal(t, 3, Fall.Index())
}
