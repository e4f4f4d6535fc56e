// Package geom provides the numeric and geometric primitives the rest of
// this module is built on: points, vectors, the three-valued orientation
// test, and the segment/polygon predicates that everything else composes.
package geom

import "math"

// Epsilon is the single process-wide numeric tolerance used by every
// equality, sign, and on-segment decision in this module. A future redesign
// could parametrize this per-construction, but nothing here does.
const Epsilon = 1e-9

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a 2D coordinate. A Point is also used to represent a vector
// (a displacement) where that reads more naturally.
type Point struct {
	X, Y float64
}

// Add returns a+b.
func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b.
func (a Point) Sub(b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// Scale returns a scaled by k.
func (a Point) Scale(k float64) Point {
	return Point{a.X * k, a.Y * k}
}

// Div returns a divided by k.
func (a Point) Div(k float64) Point {
	return Point{a.X / k, a.Y / k}
}

// Eq reports whether a and b are equal within Epsilon on both axes.
func (a Point) Eq(b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return a.Add(b).Div(2)
}

// Segment is an unordered pair of endpoints.
type Segment struct {
	P1, P2 Point
}

// CrossZ is the Z component of (b-a) x (c-a), i.e. twice the signed area of
// triangle abc. Positive iff a->b->c is a left (counter-clockwise) turn.
func CrossZ(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Orientation is the three-valued result of testing three points for a
// left turn, right turn, or collinearity.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "collinear"
	}
}

// OrientationOf classifies the turn p->q->r.
func OrientationOf(p, q, r Point) Orientation {
	cz := CrossZ(p, q, r)
	if math.Abs(cz) < Epsilon {
		return Collinear
	}
	if cz > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// OnSegment reports whether p lies within the axis-aligned bounding box of
// s. Callers must establish collinearity of p with s themselves; this is
// purely the bounding-box fallback that collinearity tests lean on.
func OnSegment(p Point, s Segment) bool {
	minX, maxX := minMax(s.P1.X, s.P2.X)
	minY, maxY := minMax(s.P1.Y, s.P2.Y)
	return p.X >= minX-Epsilon && p.X <= maxX+Epsilon &&
		p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
}

func minMax(a, b float64) (lo, hi float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// SegmentsIntersect is the classic four-orientation segment intersection
// test, with the on-segment fallbacks for the collinear case. It returns
// true on any shared point: a proper crossing, a T-touch, or collinear
// overlap.
func SegmentsIntersect(s1, s2 Segment) bool {
	p1, q1 := s1.P1, s1.P2
	p2, q2 := s2.P1, s2.P2

	o1 := OrientationOf(p1, q1, p2)
	o2 := OrientationOf(p1, q1, q2)
	o3 := OrientationOf(p2, q2, p1)
	o4 := OrientationOf(p2, q2, q1)

	if o1 != o2 && o3 != o4 && o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		return true
	}

	// Collinear special cases: one endpoint lies on the other segment.
	if o1 == Collinear && OnSegment(p2, s1) {
		return true
	}
	if o2 == Collinear && OnSegment(q2, s1) {
		return true
	}
	if o3 == Collinear && OnSegment(p1, s2) {
		return true
	}
	if o4 == Collinear && OnSegment(q1, s2) {
		return true
	}
	return false
}

// PointOnSegment reports whether p is collinear with, and within the bounds
// of, segment s.
func PointOnSegment(p Point, s Segment) bool {
	return OrientationOf(s.P1, s.P2, p) == Collinear && OnSegment(p, s)
}
