// Package visibility implements the mutual-visibility predicate: whether
// the closed segment between two points lies entirely within a polygon's
// closed region.
package visibility

import (
	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
)

// IsVisibleIn reports whether the closed segment qr lies entirely inside
// the closed region bounded by P.
//
// The algorithm: the midpoint test rules out segments that skim outside a
// non-convex polygon without crossing any edge properly; the edge loop then
// rejects any strict proper crossing, while tolerating endpoint incidences
// and vertex grazes (T-junctions) as the instant visibility is gained
// rather than a blocker. This grazing policy is required so first-sight
// events that occur exactly at a reflex vertex read as "now visible"
// instead of "still blocked".
func IsVisibleIn(p *polygon.Polygon, q, r geom.Point) bool {
	if q.Eq(r) {
		return p.ContainsPoint(q)
	}

	mid := geom.Midpoint(q, r)
	if !p.ContainsPoint(mid) {
		return false
	}

	qr := geom.Segment{P1: q, P2: r}
	for i := 0; i < p.Size(); i++ {
		edge := p.Edge(i)
		if !geom.SegmentsIntersect(qr, edge) {
			continue
		}

		if q.Eq(edge.P1) || q.Eq(edge.P2) || r.Eq(edge.P1) || r.Eq(edge.P2) {
			continue // endpoint incidence, not a blocker
		}
		if geom.PointOnSegment(edge.P1, qr) || geom.PointOnSegment(edge.P2, qr) {
			continue // vertex graze / T-junction, not a blocker
		}

		// Remaining case: a strict proper crossing.
		return false
	}

	return true
}
