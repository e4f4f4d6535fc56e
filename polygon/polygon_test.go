package polygon

import (
	"testing"

	"github.com/arborview/sightline/geom"
	"github.com/stretchr/testify/assert"
)

func square() *Polygon {
	return New([]geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
}

// The hanging-wall polygon from scenario S1/S2 of the spec: an outer 10x10
// square with a rectangular notch hanging down from the top edge between
// x=4 and x=6, bottoming out at y=4.
func hangingWall() *Polygon {
	return New([]geom.Point{
		{0, 0}, {10, 0}, {10, 10}, {6, 10}, {6, 4}, {4, 4}, {4, 10}, {0, 10},
	})
}

func TestModularIndexing(t *testing.T) {
	p := square()
	assert.Equal(t, geom.Point{0, 0}, p.Vertex(0))
	assert.Equal(t, geom.Point{0, 0}, p.Vertex(4))
	assert.Equal(t, geom.Point{0, 10}, p.Vertex(-1))
	assert.Equal(t, 4, p.Size())
}

func TestEdge(t *testing.T) {
	p := square()
	assert.Equal(t, geom.Segment{P1: geom.Point{0, 0}, P2: geom.Point{10, 0}}, p.Edge(0))
	assert.Equal(t, geom.Segment{P1: geom.Point{0, 10}, P2: geom.Point{0, 0}}, p.Edge(3))
}

func TestIsCCW(t *testing.T) {
	assert.True(t, square().IsCCW())
	assert.False(t, square().Reverse().IsCCW())
}

func TestNormalize(t *testing.T) {
	cw := square().Reverse()
	assert.False(t, cw.IsCCW())
	normalized := cw.Normalize()
	assert.True(t, normalized.IsCCW())
}

func TestIsReflex(t *testing.T) {
	p := hangingWall()
	reflexSet := map[int]bool{}
	for _, i := range p.ReflexIndices() {
		reflexSet[i] = true
	}
	// Vertices 4 and 5 ((6,4) and (4,4)) are the reflex corners of the notch.
	assert.True(t, reflexSet[4])
	assert.True(t, reflexSet[5])
	assert.False(t, reflexSet[0])
	assert.False(t, reflexSet[2])
}

func TestContainsPointBoundaryIncluded(t *testing.T) {
	p := square()
	for i := 0; i < p.Size(); i++ {
		assert.True(t, p.ContainsPoint(p.Vertex(i)))
	}
	assert.True(t, p.ContainsPoint(geom.Point{5, 0}))
	assert.True(t, p.ContainsPoint(geom.Point{5, 5}))
	assert.False(t, p.ContainsPoint(geom.Point{-1, 5}))
}

func TestContainsPointNotch(t *testing.T) {
	p := hangingWall()
	assert.False(t, p.ContainsPoint(geom.Point{5, 8})) // inside the notch cutout
	assert.True(t, p.ContainsPoint(geom.Point{1, 8}))
	assert.True(t, p.ContainsPoint(geom.Point{9, 8}))
}
