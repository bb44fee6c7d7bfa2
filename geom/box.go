package geom

import "github.com/golang/geo/r3"

// Box is an axis-aligned bounding box; ExpandBox tracks Min/Max in Z the
// same way as in X and Y.
type Box struct {
	Min, Max r3.Vector
}

// EmptyBox returns a box with no extent, suitable as the accumulator for
// ExpandBox.
func EmptyBox() Box {
	const inf = 1e308
	return Box{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// ExpandBox grows b to include p, returning the updated box.
func ExpandBox(b Box, p r3.Vector) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Size returns (width, height, depth) of the box.
func (b Box) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}
