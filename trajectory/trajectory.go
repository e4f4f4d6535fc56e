// Package trajectory holds the shared vocabulary that the visibility
// oracle, the algebraic event solver and the first-sight driver all speak:
// a point moving along a straight line starting at t=0.
package trajectory

import "github.com/arborview/sightline/geom"

// Trajectory is a linear motion: position at time t is Start + t*Velocity.
// The domain of t is t >= 0.
type Trajectory struct {
	Start    geom.Point
	Velocity geom.Point
}

// New builds a Trajectory from a starting position and a velocity vector.
func New(start, velocity geom.Point) Trajectory {
	return Trajectory{Start: start, Velocity: velocity}
}

// PosAt returns the position of the trajectory at time t.
func (tr Trajectory) PosAt(t float64) geom.Point {
	return tr.Start.Add(tr.Velocity.Scale(t))
}

// Scaled returns a copy of the trajectory with its velocity multiplied by k,
// keeping the same start. This is what splinegon ray queries use to apply a
// speed multiplier to a base trajectory without touching its origin.
func (tr Trajectory) Scaled(k float64) Trajectory {
	return Trajectory{Start: tr.Start, Velocity: tr.Velocity.Scale(k)}
}
