package geom

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/floats"
)

func TestNormalize(t *testing.T) {
	tcs := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi, math.Pi},
	}
	for _, tc := range tcs {
		got := Normalize(tc.in)
		test.That(t, floats.EqualWithinAbs(got, tc.want, 1e-9), test.ShouldBeTrue)
	}
}

func TestPoseSumRightAngle(t *testing.T) {
	// parent at (1, 0, 0, pi/2); child at local (1, 0, 0, 0).
	parent := Pose{X: 1, Y: 0, Z: 0, A: math.Pi / 2}
	child := Pose{X: 1, Y: 0, Z: 0, A: 0}
	got := PoseSum(parent, child)
	test.That(t, floats.EqualWithinAbs(got.X, 1, 1e-9), test.ShouldBeTrue)
	test.That(t, floats.EqualWithinAbs(got.Y, 1, 1e-9), test.ShouldBeTrue)
	test.That(t, floats.EqualWithinAbs(got.A, math.Pi/2, 1e-9), test.ShouldBeTrue)
}

func TestGlobalToLocalInvertsPoseSum(t *testing.T) {
	frame := Pose{X: -3, Y: 5, Z: 0.4, A: 1.1}
	p := Pose{X: 2.5, Y: -1.25, Z: 0.1, A: -0.6}

	global := PoseSum(frame, p)
	back := GlobalToLocal(frame, global)

	test.That(t, floats.EqualWithinAbs(back.X, p.X, 1e-9), test.ShouldBeTrue)
	test.That(t, floats.EqualWithinAbs(back.Y, p.Y, 1e-9), test.ShouldBeTrue)
	test.That(t, floats.EqualWithinAbs(back.Z, p.Z, 1e-9), test.ShouldBeTrue)
	test.That(t, floats.EqualWithinAbs(back.A, Normalize(p.A), 1e-9), test.ShouldBeTrue)
}

func TestVelocityIsZero(t *testing.T) {
	test.That(t, Velocity{}.IsZero(), test.ShouldBeTrue)
	test.That(t, Velocity{X: 1}.IsZero(), test.ShouldBeFalse)
	test.That(t, Velocity{A: 0.01}.IsZero(), test.ShouldBeFalse)
}
