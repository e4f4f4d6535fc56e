// Package ingest provides the polygon and scenario loading that spec.md
// describes only as an external collaborator: turning an SVG fixture or a
// YAML scenario file into the Polygon and trajectories the core consumes,
// with orientation normalization and a simplicity check.
package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
)

// LoadSVGPolygon parses a single <polygon points="..."> element out of an
// SVG document and returns it as a normalized (CCW) Polygon. It is not a
// general SVG importer: it expects exactly one <polygon> element and
// ignores everything else (paths, transforms, styling).
func LoadSVGPolygon(r io.Reader) (*polygon.Polygon, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, fmt.Errorf("ingest: parsing svg: %w", err)
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, fmt.Errorf("ingest: no <polygon> element found")
	}
	if len(elements) > 1 {
		return nil, fmt.Errorf("ingest: expected exactly one <polygon> element, found %d", len(elements))
	}

	points, err := parsePointsAttribute(elements[0].Attributes["points"])
	if err != nil {
		return nil, err
	}

	p := polygon.New(points)
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p.Normalize(), nil
}

func parsePointsAttribute(raw string) ([]geom.Point, error) {
	var points []geom.Point
	for _, pair := range strings.Fields(raw) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("ingest: malformed point %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: invalid x in %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: invalid y in %q: %w", pair, err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("ingest: polygon requires at least 3 points, got %d", len(points))
	}
	return points, nil
}

// Validate checks the structural preconditions the core assumes but
// spec.md leaves to ingestion: at least 3 vertices, no duplicate
// consecutive vertices, and no self-intersecting edges.
func Validate(p *polygon.Polygon) error {
	n := p.Size()
	if n < 3 {
		return fmt.Errorf("ingest: polygon requires at least 3 vertices, got %d", n)
	}
	for i := 0; i < n; i++ {
		if p.Vertex(i).Eq(p.Vertex(i + 1)) {
			return fmt.Errorf("ingest: duplicate consecutive vertex at index %d", i)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sharesEndpoint(i, j, n) {
				continue
			}
			if geom.SegmentsIntersect(p.Edge(i), p.Edge(j)) {
				return fmt.Errorf("ingest: edges %d and %d self-intersect", i, j)
			}
		}
	}
	return nil
}

func sharesEndpoint(i, j, n int) bool {
	return i == j || (i+1)%n == j || (j+1)%n == i
}
