package world

import (
	"github.com/golang/geo/r3"

	"go.viam.com/stagesim/block"
	"go.viam.com/stagesim/geom"
	"go.viam.com/stagesim/model"
	"go.viam.com/stagesim/spatialidx"
)

// Predicate is applied to each candidate block a ray encounters, after
// the index has already excluded blocks owned by the requester.
type Predicate func(b *block.Block, requester *model.Model) bool

// Sample is one raytrace result: Block/Model are nil on a miss, in which
// case Point/Range record the terminal point.
type Sample struct {
	Point r3.Vector
	Range float64
	Color geom.Color
	Block *block.Block
	Model *model.Model
}

// Raytrace walks a single ray from origin along bearing for up to rng
// meters, excluding requester's own blocks, applying pred to every other
// candidate, and optionally filtering by Z band.
func (w *World) Raytrace(requester *model.Model, origin geom.Pose, bearing, rng float64, pred Predicate, ztest bool) Sample {
	ownerID := 0
	if requester != nil {
		ownerID = requester.ID()
	}
	s := w.index.Raytrace(origin.X, origin.Y, origin.Z, bearing, rng, w.wrapPredicate(pred), requester, ownerID, ztest)
	return w.toSample(s)
}

// RaytraceFan dispatches n evenly spaced rays spanning fov centered on
// bearing.
func (w *World) RaytraceFan(requester *model.Model, origin geom.Pose, bearing, rng, fov float64, n int, pred Predicate, ztest bool) []Sample {
	ownerID := 0
	if requester != nil {
		ownerID = requester.ID()
	}
	raw := w.index.RaytraceFan(origin.X, origin.Y, origin.Z, bearing, rng, fov, n, w.wrapPredicate(pred), requester, ownerID, ztest)
	out := make([]Sample, len(raw))
	for i, s := range raw {
		out[i] = w.toSample(s)
	}
	return out
}

func (w *World) wrapPredicate(pred Predicate) spatialidx.Predicate {
	return func(occ spatialidx.Occupant, requester interface{}) bool {
		if pred == nil {
			return true
		}
		b := block.FromOccupant(occ)
		reqModel, _ := requester.(*model.Model)
		return pred(b, reqModel)
	}
}

func (w *World) toSample(s spatialidx.Sample) Sample {
	out := Sample{Point: r3.Vector{X: s.Point[0], Y: s.Point[1]}, Range: s.Range}
	if s.Occupant == nil {
		return out
	}
	b := block.FromOccupant(s.Occupant)
	out.Block = b
	out.Color = b.Color()
	if owner, ok := w.modelsByID[b.OwnerID()]; ok {
		out.Model = owner
		if b.InheritColor() {
			out.Color = owner.Color()
		}
	}
	return out
}
