package block

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/stagesim/geom"
)

// ScaleList computes the axis-aligned bounding box over every point in
// every block, then rescales each block's points to fit inside
// +-target.{X,Y}/2 centered at the origin; Z extents scale by
// target.Z / (largest zmax among the blocks). Every block must be
// unmapped first: ScaleList returns an error rather than silently
// corrupting a live spatial index.
func ScaleList(blocks []*Block, target geom.Size) error {
	for _, b := range blocks {
		if b.mapped {
			return errors.Errorf("block: cannot scale mapped block %d", b.id)
		}
	}
	if len(blocks) == 0 {
		return nil
	}

	box := geom.EmptyBox()
	maxZmax := 0.0
	for _, b := range blocks {
		for _, p := range b.points {
			box = geom.ExpandBox(box, p)
		}
		if b.zmax > maxZmax {
			maxZmax = b.zmax
		}
	}

	size := box.Size()
	center := box.Center()

	scaleX := 1.0
	if size.X > 0 {
		scaleX = target.X / size.X
	}
	scaleY := 1.0
	if size.Y > 0 {
		scaleY = target.Y / size.Y
	}
	zscale := 1.0
	if maxZmax > 0 {
		zscale = target.Z / maxZmax
	}

	for _, b := range blocks {
		for i, p := range b.points {
			b.points[i] = r3.Vector{
				X: (p.X - center.X) * scaleX,
				Y: (p.Y - center.Y) * scaleY,
				Z: p.Z,
			}
		}
		b.zmin *= zscale
		b.zmax *= zscale
	}
	return nil
}
