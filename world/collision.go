package world

import (
	"math"

	"go.viam.com/stagesim/block"
	"go.viam.com/stagesim/geom"
	"go.viam.com/stagesim/model"
	"go.viam.com/stagesim/spatialidx"
)

// Collision is the result of a positive TestCollision: the block and
// owning model the mover's edge raytrace hit first.
type Collision struct {
	Block *block.Block
	Owner *model.Model
	Point [2]float64
}

// TestCollision checks whether mover could move by delta without any of
// its block edges crossing an obstacle-returning block owned by another
// model. The mover's own blocks are unmapped for the duration of the test
// (self-hit prevention) and always remapped before TestCollision returns.
// The first edge/block hit, in block then edge order, is reported.
func (w *World) TestCollision(mover *model.Model, delta geom.Pose) *Collision {
	newGlobal := mover.GlobalPoseAfter(delta)
	blocks := mover.Blocks()

	unmapped := make([]*block.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.IsMapped() {
			b.UnMap()
			unmapped = append(unmapped, b)
		}
	}
	defer func() {
		for _, b := range unmapped {
			b.Map(w.index)
		}
	}()

	pred := func(occ spatialidx.Occupant, requester interface{}) bool {
		hit := block.FromOccupant(occ)
		owner, ok := w.modelsByID[hit.OwnerID()]
		if !ok {
			return false
		}
		return owner.ObstacleReturn() != geom.Invisible
	}

	for _, b := range blocks {
		pts := b.Points()
		n := len(pts)
		for i := 0; i < n; i++ {
			a := mover.LocalToGlobalFrom(newGlobal, geom.Pose{X: pts[i].X, Y: pts[i].Y})
			c := mover.LocalToGlobalFrom(newGlobal, geom.Pose{X: pts[(i+1)%n].X, Y: pts[(i+1)%n].Y})
			dx, dy := c.X-a.X, c.Y-a.Y
			length := math.Hypot(dx, dy)
			if length < 1e-9 {
				continue
			}
			bearing := math.Atan2(dy, dx)
			sample := w.index.Raytrace(a.X, a.Y, a.Z, bearing, length, pred, mover, mover.ID(), false)
			if sample.Occupant != nil {
				hitBlock := block.FromOccupant(sample.Occupant)
				return &Collision{
					Block: hitBlock,
					Owner: w.modelsByID[hitBlock.OwnerID()],
					Point: sample.Point,
				}
			}
		}
	}
	return nil
}
