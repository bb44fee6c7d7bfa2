// Package spatialidx implements the multi-resolution raster spatial index:
// a doubly tiled grid (superregions of regions of pixels) mapping world
// pixels to the set of blocks occupying them, with O(1) early-out during
// ray traversal over empty space.
//
// The index has no dependency on the block or model packages: occupants
// are anything satisfying Occupant. The block package is the one that
// knows how to rasterize itself and calls AddBlockPixel/Remove.
package spatialidx

// Occupant is anything that can be placed into the index: the block
// package's *block.Block is the only implementation in this module.
type Occupant interface {
	// OccupantID uniquely identifies this occupant, independent of its
	// owning model (used only for equality/debugging, never for exclusion).
	OccupantID() int
	// OwnerID is the id of the model that owns this occupant. The index
	// uses it to exclude a requester's own occupants from its own raytraces.
	OwnerID() int
	// ZBand returns the global [zmin, zmax] this occupant currently
	// occupies, valid only while the occupant is mapped.
	ZBand() (zmin, zmax float64)
}

// Default tiling parameters, in pixels. A superregion spans SuperSize
// pixels on a side and is subdivided into (SuperSize/RegionSize)^2
// regions, each RegionSize pixels on a side.
const (
	DefaultRegionSize = 32
	DefaultSuperSize  = 1024
)

type pixelCoord struct{ X, Y int64 }

type regionCoord struct{ X, Y int64 }

type superCoord struct{ X, Y int64 }

type blockNode struct {
	occ        Occupant
	prev, next *blockNode
}

type pixel struct {
	head *blockNode
}

type region struct {
	cells   map[pixelCoord]*pixel
	nonZero int // count of pixels in this region with at least one occupant
}

type superregion struct {
	regions map[regionCoord]*region
	nonZero int // count of pixels anywhere in this superregion with an occupant
}

// Stats counts traversal work done by Raytrace/RaytraceFan, purely for
// instrumentation: it lets a test demonstrate that region-level skipping
// visits far fewer regions than the line's raw pixel length would.
type Stats struct {
	PixelVisits  int64 // individual pixel block-lists scanned
	RegionVisits int64 // region/superregion occupancy checks performed
}

// Index is the spatial index for one world. PPM is pixels-per-meter; all
// Add/Remove calls operate in pixel coordinates, already converted by the
// caller (block.Map does the meters->pixels conversion).
type Index struct {
	PPM        float64
	RegionSize int64
	SuperSize  int64

	supers map[superCoord]*superregion
	stats  Stats
}

// New constructs an empty index at the given pixel resolution.
func New(ppm float64) *Index {
	return &Index{
		PPM:        ppm,
		RegionSize: DefaultRegionSize,
		SuperSize:  DefaultSuperSize,
		supers:     make(map[superCoord]*superregion),
	}
}

// Stats returns a snapshot of the traversal instrumentation counters.
func (idx *Index) Stats() Stats {
	return idx.stats
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (idx *Index) regionCoordOf(p pixelCoord) regionCoord {
	return regionCoord{floorDiv(p.X, idx.RegionSize), floorDiv(p.Y, idx.RegionSize)}
}

func (idx *Index) superCoordOf(p pixelCoord) superCoord {
	return superCoord{floorDiv(p.X, idx.SuperSize), floorDiv(p.Y, idx.SuperSize)}
}

func (idx *Index) getSuper(sc superCoord, create bool) *superregion {
	sr, ok := idx.supers[sc]
	if !ok && create {
		sr = &superregion{regions: make(map[regionCoord]*region)}
		idx.supers[sc] = sr
	}
	return sr
}

func (sr *superregion) getRegion(rc regionCoord, create bool) *region {
	rg, ok := sr.regions[rc]
	if !ok && create {
		rg = &region{cells: make(map[pixelCoord]*pixel)}
		sr.regions[rc] = rg
	}
	return rg
}
