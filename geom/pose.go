// Package geom provides the 2D pose, velocity, and bounds primitives shared
// by every other package in this module. All further pose math in the
// simulator is defined in terms of PoseSum, GlobalToLocal, and Normalize.
package geom

import "math"

// Pose is a position in the plane plus a height and a heading. Heading is
// always kept normalized to (-pi, pi].
type Pose struct {
	X, Y, Z float64
	A       float64
}

// Velocity is a linear rate in the body frame plus an angular rate.
type Velocity struct {
	X, Y, Z float64
	A       float64
}

// IsZero reports whether every component of v is exactly zero. Used to
// maintain the world's velocity-list invariant.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.A == 0
}

// Scale returns the pose delta implied by travelling at v for dt seconds,
// expressed in the body frame (i.e. suitable as the b argument to PoseSum).
func (v Velocity) Scale(dt float64) Pose {
	return Pose{X: v.X * dt, Y: v.Y * dt, Z: v.Z * dt, A: v.A * dt}
}

// Normalize wraps an angle in radians into (-pi, pi].
func Normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a <= -math.Pi:
		a += 2 * math.Pi
	case a > math.Pi:
		a -= 2 * math.Pi
	}
	return a
}

// PoseSum composes b, expressed in a's frame, into the world frame of a.
func PoseSum(a, b Pose) Pose {
	sinA, cosA := math.Sincos(a.A)
	return Pose{
		X: a.X + b.X*cosA - b.Y*sinA,
		Y: a.Y + b.X*sinA + b.Y*cosA,
		Z: a.Z + b.Z,
		A: Normalize(a.A + b.A),
	}
}

// GlobalToLocal inverts PoseSum: given a frame pose and a point p expressed
// in the world, returns p expressed in frame's local coordinates, such that
// PoseSum(frame, GlobalToLocal(frame, p)) == p (up to float tolerance).
func GlobalToLocal(frame, p Pose) Pose {
	dx := p.X - frame.X
	dy := p.Y - frame.Y
	sinA, cosA := math.Sincos(-frame.A)
	return Pose{
		X: dx*cosA - dy*sinA,
		Y: dx*sinA + dy*cosA,
		Z: p.Z - frame.Z,
		A: Normalize(p.A - frame.A),
	}
}
