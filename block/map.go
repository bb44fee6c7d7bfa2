package block

import (
	"github.com/golang/geo/r3"

	"go.viam.com/stagesim/geom"
	"go.viam.com/stagesim/spatialidx"
)

// Map rasterizes the block's footprint into idx: each polygon vertex is
// transformed into world coordinates via the owner's LocalToGlobal,
// converted to pixels at idx.PPM, and every edge is walked with an
// 8-connected line rasterizer. Every pixel an edge crosses gets a
// (pixel, block) entry; the returned handles are stored so UnMap can
// remove exactly them.
//
// Map panics if the block is already mapped: re-mapping a mapped block is
// a programming error, not a recoverable one.
func (b *Block) Map(idx *spatialidx.Index) {
	if b.mapped {
		panic("block: Map called on an already-mapped block")
	}

	origin := b.owner.LocalToGlobal(geom.Pose{})

	globalPts := make([]r3.Vector, len(b.points))
	pixelPts := make([][2]int64, len(b.points))
	for i, p := range b.points {
		g := b.owner.LocalToGlobal(geom.Pose{X: p.X, Y: p.Y})
		pixelPts[i] = [2]int64{
			int64(floor(g.X * idx.PPM)),
			int64(floor(g.Y * idx.PPM)),
		}
		globalPts[i] = r3.Vector{X: float64(pixelPts[i][0]), Y: float64(pixelPts[i][1])}
	}

	seen := make(map[[2]int64]bool)
	var handles []spatialidx.Handle
	n := len(pixelPts)
	for i := 0; i < n; i++ {
		a := pixelPts[i]
		c := pixelPts[(i+1)%n]
		for _, px := range bresenham(a[0], a[1], c[0], c[1]) {
			if seen[px] {
				continue
			}
			seen[px] = true
			handles = append(handles, idx.AddBlockPixel(px[0], px[1], b))
		}
	}

	b.globalPoints = globalPts
	b.handles = handles
	b.globalZmin = origin.Z + b.zmin
	b.globalZmax = origin.Z + b.zmax
	b.mapped = true
}

// UnMap removes every index entry this block's last Map inserted. It is
// idempotent only in the sense that after it returns no entry referencing
// this block exists; calling UnMap on a block that is not mapped is a
// programming error and panics.
func (b *Block) UnMap() {
	if !b.mapped {
		panic("block: UnMap called on a block that is not mapped")
	}
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
	b.globalPoints = nil
	b.mapped = false
}

func floor(f float64) float64 {
	i := int64(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return float64(i)
}

// bresenham returns every pixel crossed by the segment (x0,y0)-(x1,y1),
// 8-connected, inclusive of both endpoints.
func bresenham(x0, y0, x1, y1 int64) [][2]int64 {
	var pts [][2]int64

	dx := abs64(x1 - x0)
	dy := -abs64(y1 - y0)
	sx := int64(1)
	if x0 >= x1 {
		sx = -1
	}
	sy := int64(1)
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		pts = append(pts, [2]int64{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
