package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1.0, 1.0+Epsilon/10))
	assert.False(t, Equal(1.0, 1.0+Epsilon*10))
}

func TestPointArithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -1}
	assert.Equal(t, Point{4, 1}, a.Add(b))
	assert.Equal(t, Point{-2, 3}, a.Sub(b))
	assert.Equal(t, Point{2, 4}, a.Scale(2))
	assert.Equal(t, Point{0.5, 1}, a.Div(2))
	assert.Equal(t, Point{2, 0.5}, Midpoint(a, b))
}

func TestOrientationOf(t *testing.T) {
	left := Point{0, 0}
	right := Point{2, 0}
	above := Point{1, 1}
	below := Point{1, -1}
	onLine := Point{1, 0}

	assert.Equal(t, CounterClockwise, OrientationOf(left, right, above))
	assert.Equal(t, Clockwise, OrientationOf(left, right, below))
	assert.Equal(t, Collinear, OrientationOf(left, right, onLine))
}

func TestOrientationRotationInvariant(t *testing.T) {
	tri := []Point{{0, -1}, {1, 0}, {0, 1}}
	angle := math.Pi / 7
	for i := 0; i < 14; i++ {
		for j := range tri {
			tri[j] = rotate(tri[j], angle)
		}
		assert.Equal(t, CounterClockwise, OrientationOf(tri[0], tri[1], tri[2]))
	}
}

func rotate(p Point, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func TestSegmentsIntersectProperCrossing(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{0, 2}, Point{2, 0}}
	assert.True(t, SegmentsIntersect(s1, s2))
}

func TestSegmentsIntersectDisjoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{2, 0}, Point{3, 0}}
	assert.False(t, SegmentsIntersect(s1, s2))
}

func TestSegmentsIntersectTTouch(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{4, 0}}
	s2 := Segment{Point{2, 0}, Point{2, 2}}
	assert.True(t, SegmentsIntersect(s1, s2))
}

func TestSegmentsIntersectCollinearOverlap(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 0}}
	s2 := Segment{Point{1, 0}, Point{3, 0}}
	assert.True(t, SegmentsIntersect(s1, s2))
}

func TestSegmentsIntersectCollinearDisjoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{2, 0}, Point{3, 0}}
	assert.False(t, SegmentsIntersect(s1, s2))
}

func TestPointOnSegment(t *testing.T) {
	s := Segment{Point{0, 0}, Point{4, 4}}
	assert.True(t, PointOnSegment(Point{2, 2}, s))
	assert.False(t, PointOnSegment(Point{2, 3}, s))
	assert.False(t, PointOnSegment(Point{5, 5}, s))
}
