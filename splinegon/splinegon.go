// Package splinegon builds and queries the monotone angular decomposition
// of velocity space ("splinegon diagram") that amortizes first-sight
// queries against a fixed polygon and pair of base trajectories down to
// O(log n) per query, after O(n) preprocessing.
package splinegon

import (
	"math"
	"sort"

	"github.com/arborview/sightline/algebra"
	"github.com/arborview/sightline/funnel"
	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/trajectory"
)

// RationalArc is one angular sector of velocity space, attributed to the
// single reflex pivot whose collinearity equation governs the earliest
// visibility event for directions in that sector.
type RationalArc struct {
	Pivot                geom.Point
	ThetaStart, ThetaEnd float64
}

// Diagram is an ordered, non-overlapping sequence of RationalArc covering
// [-pi, pi] exactly once, sorted by ThetaStart. An empty diagram means the
// base line of sight is already clear at t=0: every ray query returns 0.
type Diagram struct {
	polygon *polygon.Polygon
	qBase   trajectory.Trajectory
	rBase   trajectory.Trajectory
	arcs    []RationalArc
}

// Build runs the funnel preprocessor to find the critical reflex pivots
// between the two base trajectories' starting points, then partitions
// [-pi, pi] into one equal-width sector per pivot, in pivot order.
//
// The underlying theory calls for sector boundaries computed from the
// bitangents of P relative to the base trajectory geometry; the uniform
// partition implemented here is a deliberate, known-limited approximation
// the source settled on (see DESIGN.md).
func Build(p *polygon.Polygon, qBase, rBase trajectory.Trajectory) *Diagram {
	path := funnel.TautString(p, qBase.Start, rBase.Start)

	d := &Diagram{polygon: p, qBase: qBase, rBase: rBase}
	if len(path) < 2 {
		// qBase.Start and rBase.Start coincide: no interior pivots, same as
		// the already-clear two-point path case below.
		return d
	}

	pivots := path[1 : len(path)-1]
	k := len(pivots)
	if k == 0 {
		return d
	}

	width := 2 * math.Pi / float64(k)
	d.arcs = make([]RationalArc, k)
	for i, pivot := range pivots {
		start := -math.Pi + float64(i)*width
		end := start + width
		if i == k-1 {
			end = math.Pi
		}
		d.arcs[i] = RationalArc{Pivot: pivot, ThetaStart: start, ThetaEnd: end}
	}
	return d
}

// Arcs returns the diagram's ordered arcs (empty if the base sight line is
// already clear).
func (d *Diagram) Arcs() []RationalArc {
	return d.arcs
}

// ShootRay answers "given velocity scale multipliers alpha, beta applied
// to the base trajectories' velocities, what is the earliest positive
// collinearity time against the critical boundary pivot for that
// direction?" in O(log n).
//
// It returns false if there is no sighting for this direction.
func (d *Diagram) ShootRay(alpha, beta float64) (t float64, ok bool) {
	if len(d.arcs) == 0 {
		return 0, true
	}

	theta := math.Atan2(beta, alpha)
	idx := sort.Search(len(d.arcs), func(i int) bool {
		return d.arcs[i].ThetaEnd >= theta-geom.Epsilon
	})
	if idx >= len(d.arcs) || theta < d.arcs[idx].ThetaStart-geom.Epsilon {
		return 0, false
	}
	arc := d.arcs[idx]

	q := d.qBase.Scaled(alpha)
	r := d.rBase.Scaled(beta)

	for _, candidate := range algebra.CollinearEvents(q, r, arc.Pivot) {
		if candidate > geom.Epsilon {
			return candidate, true
		}
	}
	return 0, false
}
