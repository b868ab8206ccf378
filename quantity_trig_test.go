package dv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalabs/dv"
)

func TestLnLog2Log10ExpRequireDimensionless(t *testing.T) {
	q := dv.MustNew(2, "")
	ln, err := q.Ln()
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), ln.Magnitude(), 1e-12)

	log2, err := q.Log2()
	require.NoError(t, err)
	assert.InDelta(t, 1, log2.Magnitude(), 1e-12)

	log10, err := dv.MustNew(100, "").Log10()
	require.NoError(t, err)
	assert.InDelta(t, 2, log10.Magnitude(), 1e-12)

	exp, err := dv.MustNew(0, "").Exp()
	require.NoError(t, err)
	assert.InDelta(t, 1, exp.Magnitude(), 1e-12)

	dimensioned := dv.MustNew(2, "m")
	for _, op := range []func() (dv.Quantity, error){dimensioned.Ln, dimensioned.Log2, dimensioned.Log10, dimensioned.Exp} {
		_, err := op()
		require.Error(t, err)
		assert.True(t, dv.IsKind(err, dv.KindDimensionError))
	}
}

func TestTrigOnPureRadianMatchesStdlib(t *testing.T) {
	rad := dv.MustNew(0.4, "rad")
	s, err := rad.Sin()
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(0.4), s.Magnitude(), 1e-12)

	c, err := rad.Cos()
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(0.4), c.Magnitude(), 1e-12)

	tn, err := rad.Tan()
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(0.4), tn.Magnitude(), 1e-12)
}

func TestTrigRejectsNonAngle(t *testing.T) {
	q := dv.MustNew(1, "kg")
	_, err := q.Sin()
	require.Error(t, err)
	assert.True(t, dv.IsKind(err, dv.KindDimensionError))
}

func TestDegreesConvertToRadians(t *testing.T) {
	q := dv.MustNew(45, "deg")
	v, err := q.ValueIn("rad")
	require.NoError(t, err)
	assert.InDelta(t, 0.7853981633974483, v, 1e-12)
}

func TestAsinFreeStanding(t *testing.T) {
	a, err := dv.Asin(0.5)
	require.NoError(t, err)
	deg, err := a.ValueIn("deg")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, deg, 1e-9)
}

func TestAsinDomainError(t *testing.T) {
	_, err := dv.Asin(2.0)
	require.Error(t, err)
	assert.True(t, dv.IsKind(err, dv.KindDomainError))
}

func TestAcosAtanFreeStanding(t *testing.T) {
	a, err := dv.Acos(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0, a.Magnitude(), 1e-12)

	b := dv.Atan(1.0)
	assert.InDelta(t, math.Pi/4, b.Magnitude(), 1e-12)
}

func TestInverseTrigMethodsRequireDimensionless(t *testing.T) {
	q := dv.MustNew(0.5, "m")
	_, err := q.Asin()
	require.Error(t, err)
	assert.True(t, dv.IsKind(err, dv.KindDimensionError))
}

func TestInverseTrigMethodsOnDimensionless(t *testing.T) {
	q := dv.MustNew(0.5, "")
	a, err := q.Asin()
	require.NoError(t, err)
	deg, err := a.ValueIn("deg")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, deg, 1e-9)
}
