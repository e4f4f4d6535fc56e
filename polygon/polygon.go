// Package polygon models a simple, counter-clockwise polygon as an indexed
// vertex array with modular indexing, and the classifications (reflex
// vertex, point-in-polygon) the rest of the module needs from it.
package polygon

import (
	"github.com/arborview/sightline/geom"
)

// Polygon is an ordered sequence of vertices, v0...v(n-1), n >= 3. Vertex
// index i is always understood modulo n; edge i joins vertex i and vertex
// i+1 (mod n). The polygon is expected to be simple and CCW wound (signed
// area > geom.Epsilon); callers that cannot guarantee this should call
// Normalize first.
type Polygon struct {
	vertices []geom.Point
}

// New builds a Polygon from a vertex list. It does not validate simplicity
// or winding; use Normalize and a caller-side simplicity check (see the
// ingest package) if those guarantees are not already met.
func New(vertices []geom.Point) *Polygon {
	cp := make([]geom.Point, len(vertices))
	copy(cp, vertices)
	return &Polygon{vertices: cp}
}

// Size returns the number of vertices.
func (p *Polygon) Size() int {
	return len(p.vertices)
}

// Vertex returns vertex i, with i understood modulo Size().
func (p *Polygon) Vertex(i int) geom.Point {
	n := p.Size()
	return p.vertices[((i%n)+n)%n]
}

// Edge returns the segment joining vertex i and vertex i+1.
func (p *Polygon) Edge(i int) geom.Segment {
	return geom.Segment{P1: p.Vertex(i), P2: p.Vertex(i + 1)}
}

// SignedArea returns the polygon's signed area (positive for CCW winding),
// via the shoelace formula.
func (p *Polygon) SignedArea() float64 {
	var sum float64
	n := p.Size()
	for i := 0; i < n; i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p *Polygon) IsCCW() bool {
	return p.SignedArea() > geom.Epsilon
}

// IsReflex reports whether vertex i has an interior angle exceeding pi,
// assuming CCW winding. A vertex is reflex iff the turn at it is clockwise.
func (p *Polygon) IsReflex(i int) bool {
	prev := p.Vertex(i - 1)
	cur := p.Vertex(i)
	next := p.Vertex(i + 1)
	return geom.CrossZ(prev, cur, next) < -geom.Epsilon
}

// Reverse returns a copy of the polygon with its vertex order reversed,
// flipping its winding direction.
func (p *Polygon) Reverse() *Polygon {
	n := p.Size()
	reversed := make([]geom.Point, n)
	for i, v := range p.vertices {
		reversed[n-1-i] = v
	}
	return New(reversed)
}

// Normalize returns a polygon with CCW winding, reversing the vertex order
// if the input winds clockwise. This is the one piece of ingestion-time
// normalization the core owns directly, since C2's contract assumes CCW
// winding and something has to produce it.
func (p *Polygon) Normalize() *Polygon {
	if p.IsCCW() {
		return New(p.vertices)
	}
	return p.Reverse()
}

// ContainsPoint reports whether p lies inside or on the boundary of the
// polygon, using ray casting with the half-open convention
// (v1.y > p.y) != (v2.y > p.y); boundary points count as inside.
func (p *Polygon) ContainsPoint(pt geom.Point) bool {
	n := p.Size()
	for i := 0; i < n; i++ {
		if geom.PointOnSegment(pt, p.Edge(i)) {
			return true
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		v1 := p.Vertex(i)
		v2 := p.Vertex(i + 1)
		if (v1.Y > pt.Y) != (v2.Y > pt.Y) {
			xCross := v1.X + (pt.Y-v1.Y)/(v2.Y-v1.Y)*(v2.X-v1.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ReflexIndices returns the indices of every reflex vertex, in polygon
// order.
func (p *Polygon) ReflexIndices() []int {
	var out []int
	for i := 0; i < p.Size(); i++ {
		if p.IsReflex(i) {
			out = append(out, i)
		}
	}
	return out
}
