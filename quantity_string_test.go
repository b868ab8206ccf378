package dv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalabs/dv"
)

func TestStringRendersValueAndUnit(t *testing.T) {
	accel := dv.MustNew(1, "m/s^2")
	assert.Equal(t, "1 m/s^2", accel.String())
}

func TestStringDimensionlessOmitsUnit(t *testing.T) {
	q := dv.MustNew(2, "")
	assert.Equal(t, "2", q.String())
}

func TestStringDoesNotRoundTripButDimensionsMatch(t *testing.T) {
	force := dv.MustNew(10, "N")
	s := force.String()
	assert.Equal(t, "10 m*kg/s^2", s)

	// Round-tripping through New is explicitly not required (spec.md §9),
	// but the reconstructed unit must describe the same dimensions.
	reparsed, err := dv.New(10, "kg*m/s^2")
	require.NoError(t, err)
	assert.Equal(t, force.Dimensions(), reparsed.Dimensions())
}
