package model

import (
	"github.com/golang/geo/r3"

	"go.viam.com/stagesim/block"
	"go.viam.com/stagesim/geom"
)

// AddBlock constructs a new block owned by m, appends it to the model's
// body, marks the body for redraw, and maps it into the index at m's
// current global pose immediately.
func (m *Model) AddBlock(pts []r3.Vector, zmin, zmax float64, color geom.Color, inheritColor bool) (*block.Block, error) {
	b, err := block.New(m, pts, zmin, zmax, color, inheritColor)
	if err != nil {
		return nil, err
	}
	m.blocks = append(m.blocks, b)
	m.needsRedraw = true
	b.Map(m.registry.Index())
	return b, nil
}

// ClearBlocks unmaps and discards every block the model owns.
func (m *Model) ClearBlocks() {
	for _, b := range m.blocks {
		if b.IsMapped() {
			b.UnMap()
		}
	}
	m.blocks = nil
	m.needsRedraw = true
}

// SetGeom sets the model's size and body offset, rescaling every owned
// block to fit the new size, and remaps the model and its descendants —
// an ancestor's size.Z change shifts every descendant's stacked Z offset.
func (m *Model) SetGeom(g geom.Geometry) error {
	m.unmapSubtree()
	if err := block.ScaleList(m.blocks, g.Size); err != nil {
		m.remapSubtree()
		return err
	}
	m.geometry = g
	m.markDirtySubtree()
	m.remapSubtree()
	m.fire(ChangeGeom)
	return nil
}
