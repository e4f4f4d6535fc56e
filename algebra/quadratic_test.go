package algebra

import (
	"math"
	"testing"

	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/trajectory"
	"github.com/stretchr/testify/assert"
)

func TestSolveQuadraticNonnegTwoRoots(t *testing.T) {
	// t^2 - 3t + 2 = 0 -> t = 1, 2
	roots := SolveQuadraticNonneg(Coefficients{A: 1, B: -3, C: 2})
	assert.Equal(t, []float64{1, 2}, roots)
}

func TestSolveQuadraticNonnegNegativeRootDropped(t *testing.T) {
	// t^2 - 1 = 0 -> t = 1, -1. Only the non-negative one survives.
	roots := SolveQuadraticNonneg(Coefficients{A: 1, B: 0, C: -1})
	assert.Equal(t, []float64{1}, roots)
}

func TestSolveQuadraticNonnegNoRealRoots(t *testing.T) {
	roots := SolveQuadraticNonneg(Coefficients{A: 1, B: 0, C: 1})
	assert.Empty(t, roots)
}

func TestSolveQuadraticNonnegLinearDegenerateBranch(t *testing.T) {
	// A==0, B*t+C=0 -> t = -C/B
	roots := SolveQuadraticNonneg(Coefficients{A: 0, B: 2, C: -4})
	assert.Equal(t, []float64{2}, roots)
}

func TestSolveQuadraticNonnegFullyDegenerate(t *testing.T) {
	roots := SolveQuadraticNonneg(Coefficients{A: 0, B: 0, C: 0})
	assert.Empty(t, roots)
	roots = SolveQuadraticNonneg(Coefficients{A: 0, B: 0, C: 5})
	assert.Empty(t, roots)
}

func TestSolveQuadraticNonnegDuplicateRootsCollapse(t *testing.T) {
	// (t-3)^2 = 0
	roots := SolveQuadraticNonneg(Coefficients{A: 1, B: -6, C: 9})
	assert.Equal(t, []float64{3}, roots)
}

func TestSolveQuadraticNonnegSatisfiesPolynomial(t *testing.T) {
	cases := []Coefficients{
		{A: 1, B: -3, C: 2},
		{A: 2, B: 5, C: -3},
		{A: 0, B: 4, C: -8},
		{A: -1, B: 2, C: 3},
	}
	for _, c := range cases {
		for _, root := range SolveQuadraticNonneg(c) {
			assert.GreaterOrEqual(t, root, 0.0)
			residual := c.A*root*root + c.B*root + c.C
			tolerance := (math.Abs(c.A) + math.Abs(c.B) + math.Abs(c.C) + 1) * 1e-6
			assert.LessOrEqual(t, math.Abs(residual), tolerance)
		}
	}
}

// S6 from the spec: collinearity solver, linear degenerate case.
func TestCollinearEventsLinearDegenerate(t *testing.T) {
	q := trajectory.New(geom.Point{0, 0}, geom.Point{1, 0})
	r := trajectory.New(geom.Point{0, 5}, geom.Point{1, 0})
	v := geom.Point{2, 2}

	coeffs := CollinearityCoefficients(q, r, v)
	assert.InDelta(t, 0, coeffs.A, geom.Epsilon)

	events := CollinearEvents(q, r, v)
	assert.Contains(t, events, 2.0)
}

func TestCollinearEventsQuadraticRootsAreActuallyCollinear(t *testing.T) {
	// Genuinely non-parallel velocities, so A != 0 and this exercises the
	// quadratic branch rather than the linear fallback.
	q := trajectory.New(geom.Point{0, 0}, geom.Point{1, 1})
	r := trajectory.New(geom.Point{4, 0}, geom.Point{-1, 1})
	v := geom.Point{2, 3}

	events := CollinearEvents(q, r, v)
	assert.NotEmpty(t, events)
	for _, ev := range events {
		assert.GreaterOrEqual(t, ev, 0.0)
		cz := geom.CrossZ(q.PosAt(ev), r.PosAt(ev), v)
		assert.InDelta(t, 0, cz, 1e-6)
	}
}
