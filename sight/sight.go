// Package sight implements the first-sight driver: enumerate every
// vertex-induced collinearity event, verify each with the visibility
// oracle, and return the earliest one that holds.
package sight

import (
	"math"

	"github.com/arborview/sightline/algebra"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/trajectory"
	"github.com/arborview/sightline/visibility"
)

// FirstSight returns the earliest non-negative time at which q and r are
// mutually visible inside P, and true if such a time exists. Every polygon
// vertex contributes candidate events, not only reflex vertices, because
// visibility changes can nucleate at a convex vertex that happens to lie on
// the closed segment.
//
// Ties between equal candidate times are broken by retaining the first
// that verifies; the result is unique up to the module's numeric
// tolerance.
func FirstSight(p *polygon.Polygon, q, r trajectory.Trajectory) (t float64, ok bool) {
	if visibility.IsVisibleIn(p, q.PosAt(0), r.PosAt(0)) {
		return 0, true
	}

	best := math.Inf(1)
	for i := 0; i < p.Size(); i++ {
		v := p.Vertex(i)
		for _, candidate := range algebra.CollinearEvents(q, r, v) {
			if candidate < 0 || candidate >= best {
				continue
			}
			if visibility.IsVisibleIn(p, q.PosAt(candidate), r.PosAt(candidate)) {
				best = candidate
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
