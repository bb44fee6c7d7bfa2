// Package block implements the polygonal prism body primitive: an ordered
// polygon outline plus a [zmin, zmax] height range, owned by exactly one
// model, rasterized into a spatialidx.Index while "mapped".
package block

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/stagesim/geom"
	"go.viam.com/stagesim/spatialidx"
)

// Owner is the minimal view of a model that a Block needs: its identity
// for index exclusion/ordering and the coordinate transform used to
// rasterize the block's footprint into world space.
type Owner interface {
	ID() int
	LocalToGlobal(p geom.Pose) geom.Pose
}

// Block is a polygonal prism attached to a model.
type Block struct {
	id       int
	owner    Owner
	points   []r3.Vector // local 2D polygon outline (Z ignored here)
	zmin     float64
	zmax     float64
	color    geom.Color
	inherit  bool

	mapped       bool
	handles      []spatialidx.Handle
	globalZmin   float64
	globalZmax   float64
	globalPoints []r3.Vector // cached integer pixel-space footprint, valid only while mapped
}

var nextBlockID = 1

// New constructs a block owned by model, copying pts. The block is not
// mapped into any index until Map is called.
func New(owner Owner, pts []r3.Vector, zmin, zmax float64, color geom.Color, inheritColor bool) (*Block, error) {
	if len(pts) < 3 {
		return nil, errors.Errorf("block: need at least 3 points, got %d", len(pts))
	}
	if zmax < zmin {
		return nil, errors.Errorf("block: zmax %v is below zmin %v", zmax, zmin)
	}
	cp := make([]r3.Vector, len(pts))
	copy(cp, pts)
	id := nextBlockID
	nextBlockID++
	return &Block{
		id:      id,
		owner:   owner,
		points:  cp,
		zmin:    zmin,
		zmax:    zmax,
		color:   color,
		inherit: inheritColor,
	}, nil
}

// ID returns the block's unique identity (stable for its lifetime).
func (b *Block) ID() int { return b.id }

// OccupantID implements spatialidx.Occupant.
func (b *Block) OccupantID() int { return b.id }

// OwnerID implements spatialidx.Occupant.
func (b *Block) OwnerID() int { return b.owner.ID() }

// ZBand implements spatialidx.Occupant, returning the cached global Z
// range recorded the last time this block was mapped.
func (b *Block) ZBand() (float64, float64) { return b.globalZmin, b.globalZmax }

// Color returns the block's color.
func (b *Block) Color() geom.Color { return b.color }

// InheritColor reports whether this block should be drawn in its model's
// color rather than its own.
func (b *Block) InheritColor() bool { return b.inherit }

// Points returns the local polygon outline (not a copy; callers must not
// mutate it).
func (b *Block) Points() []r3.Vector { return b.points }

// ZRange returns the block's local [zmin, zmax].
func (b *Block) ZRange() (float64, float64) { return b.zmin, b.zmax }

// IsMapped reports whether the block currently has entries in a spatial
// index.
func (b *Block) IsMapped() bool { return b.mapped }

// FromOccupant recovers the concrete *Block behind a spatialidx.Occupant.
// Only *Block values are ever inserted into the index in this module, so
// the assertion always succeeds for occupants this package produced.
func FromOccupant(o spatialidx.Occupant) *Block {
	return o.(*Block)
}
