// Package sightline is the public entry point for the first-visibility-
// in-motion engine: given a simple CCW polygon and two linearly moving
// points, compute the earliest time they can see each other through the
// polygon's interior.
//
// The four entry points below match spec.md's external interfaces:
// BuildPolygon, FirstSight, BuildSplinegon and ShootRay, alongside the
// NewTrajectory constructor and the re-exported types. Everything else (geom, polygon, visibility, algebra,
// funnel, splinegon, sight) is implementation detail callers are not
// expected to import directly, though nothing stops them.
package sightline

import (
	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/internal/errs"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/sight"
	"github.com/arborview/sightline/splinegon"
	"github.com/arborview/sightline/trajectory"
)

// Point, Polygon, Trajectory and Diagram are re-exported so callers never
// need to import the internal packages directly.
type Point = geom.Point
type Polygon = polygon.Polygon
type Trajectory = trajectory.Trajectory
type Diagram = splinegon.Diagram

// NewTrajectory builds a Trajectory from a starting position and velocity.
func NewTrajectory(start, velocity Point) Trajectory {
	return trajectory.New(start, velocity)
}

// BuildPolygon builds a Polygon from a caller-provided vertex list. The
// polygon must already be simple and CCW; this function does not validate
// either property (see package ingest for a validating loader) — per
// spec.md §7, a malformed polygon is a contract violation, not an error
// this function detects.
func BuildPolygon(vertices []Point) *Polygon {
	return polygon.New(vertices)
}

// FirstSight returns the earliest non-negative time at which q and r are
// mutually visible inside p, and true if one exists. A contract-violation
// panic raised through internal/errs (errs.Fatalf) is recovered and returned
// as err; no interior algorithm raises one at present, so err is nil. Any
// other panic propagates.
func FirstSight(p *Polygon, q, r Trajectory) (t float64, ok bool, err error) {
	defer func() { err = errs.Recover(recover()) }()
	t, ok = sight.FirstSight(p, q, r)
	return
}

// BuildSplinegon preprocesses (p, qBase, rBase) into an immutable Diagram
// that ShootRay queries in O(log n).
func BuildSplinegon(p *Polygon, qBase, rBase Trajectory) (d *Diagram, err error) {
	defer func() { err = errs.Recover(recover()) }()
	d = splinegon.Build(p, qBase, rBase)
	return
}

// ShootRay answers a velocity-space query against a previously built
// Diagram: given speed multipliers alpha and beta applied to the
// diagram's base trajectories, what is the earliest positive collinearity
// time against the pivot of the sector that direction falls in? An empty
// diagram (base sight line already clear) answers 0.
func ShootRay(d *Diagram, alpha, beta float64) (t float64, ok bool) {
	return d.ShootRay(alpha, beta)
}
