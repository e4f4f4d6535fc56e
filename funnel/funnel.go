// Package funnel computes the ordered set of reflex pivots the taut string
// between two interior points bends around, in linear time. This is not
// the exact Euclidean shortest path for an arbitrary simple polygon (that
// needs a triangulation-plus-funnel construction); it is the monotone
// convex-hull reduction over {a, reflex vertices in polygon order, b} that
// is sufficient to feed the splinegon's angular decomposition, per the
// fast-path + hull-of-reflex variant the source settled on.
package funnel

import (
	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/visibility"
)

// TautString returns the sequence of points of the taut string from a to b
// within P: a and b are always the first and last elements, and any
// interior elements are reflex vertices of P, in the order the string
// bends around them. If the straight segment ab already lies in P, the
// result is exactly [a, b]. If a and b coincide, the result is the single
// point [a].
func TautString(p *polygon.Polygon, a, b geom.Point) []geom.Point {
	if a.Eq(b) {
		return []geom.Point{a}
	}
	if visibility.IsVisibleIn(p, a, b) {
		return []geom.Point{a, b}
	}

	candidates := []geom.Point{a}
	for _, i := range p.ReflexIndices() {
		candidates = append(candidates, p.Vertex(i))
	}
	candidates = append(candidates, b)

	deque := []geom.Point{candidates[0]}
	for _, v := range candidates[1:] {
		for len(deque) >= 2 && isLeftTurnBeyondEpsilon(deque[len(deque)-2], deque[len(deque)-1], v) {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, v)
	}

	return dedupeConsecutive(deque)
}

// isLeftTurnBeyondEpsilon reports whether the turn at b (going a->b->c) is
// a left turn strictly beyond the tolerance, i.e. a turn the taut string
// would never make and must be straightened out by popping b.
func isLeftTurnBeyondEpsilon(a, b, c geom.Point) bool {
	return geom.CrossZ(a, b, c) > geom.Epsilon
}

func dedupeConsecutive(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if !p.Eq(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
