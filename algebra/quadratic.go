// Package algebra derives and solves the degree-2 polynomial that encodes
// a moving three-point collinearity condition: q(t), r(t), and a fixed
// pivot vertex are collinear.
package algebra

import (
	"math"
	"sort"

	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/trajectory"
)

// Coefficients holds the A, B, C of At^2 + Bt + C = 0.
type Coefficients struct {
	A, B, C float64
}

// CollinearityCoefficients derives the polynomial coefficients of the
// signed area of triangle (q(t), r(t), v) as a function of t, for
// trajectories q(t) = q0 + t*u and r(t) = r0 + t*w and a fixed pivot v.
func CollinearityCoefficients(q, r trajectory.Trajectory, v geom.Point) Coefficients {
	u := q.Velocity
	w := r.Velocity
	q0 := q.Start.Sub(v)
	r0 := r.Start.Sub(v)

	a := u.X*w.Y - u.Y*w.X
	b := q0.X*w.Y + u.X*r0.Y - q0.Y*w.X - u.Y*r0.X
	c := q0.X*r0.Y - q0.Y*r0.X
	return Coefficients{A: a, B: b, C: c}
}

// SolveQuadraticNonneg returns the sorted, deduplicated list of
// non-negative real roots of A*t^2 + B*t + C = 0.
//
// If |A| < Epsilon, the equation is treated as linear B*t + C = 0: a root
// is emitted if |B| >= Epsilon and t >= -Epsilon (clamped to 0); if
// |B| < Epsilon too, the equation is degenerate (always collinear, or
// never) and nothing is emitted.
//
// Otherwise the discriminant B^2 - 4AC is computed; if it is less than
// -Epsilon there are no real roots, otherwise sqrt(max(0, discriminant))
// guards against tiny negative values from floating point error, and each
// root satisfying t >= -Epsilon is emitted, clamped to max(0, t).
func SolveQuadraticNonneg(c Coefficients) []float64 {
	var roots []float64

	if math.Abs(c.A) < geom.Epsilon {
		if math.Abs(c.B) < geom.Epsilon {
			return nil
		}
		t := -c.C / c.B
		if t >= -geom.Epsilon {
			roots = append(roots, math.Max(0, t))
		}
		return dedupe(roots)
	}

	disc := c.B*c.B - 4*c.A*c.C
	if disc < -geom.Epsilon {
		return nil
	}
	sq := math.Sqrt(math.Max(0, disc))
	for _, t := range []float64{(-c.B + sq) / (2 * c.A), (-c.B - sq) / (2 * c.A)} {
		if t >= -geom.Epsilon {
			roots = append(roots, math.Max(0, t))
		}
	}
	sort.Float64s(roots)
	return dedupe(roots)
}

// CollinearEvents solves for the non-negative times at which q(t), r(t),
// and v are collinear.
func CollinearEvents(q, r trajectory.Trajectory, v geom.Point) []float64 {
	return SolveQuadraticNonneg(CollinearityCoefficients(q, r, v))
}

func dedupe(sorted []float64) []float64 {
	if len(sorted) == 0 {
		return sorted
	}
	sort.Float64s(sorted)
	out := sorted[:1]
	for _, t := range sorted[1:] {
		if !geom.Equal(t, out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}
