package spatialidx

// Handle is the opaque token returned by AddBlockPixel. It carries every
// pointer Remove needs to uninsert the occupant in O(1): the region and
// superregion whose counters must be decremented, the pixel's list, and
// the linked-list node itself.
type Handle struct {
	idx   *Index
	coord pixelCoord
	sr    *superregion
	rg    *region
	px    *pixel
	node  *blockNode
}

// AddBlockPixel inserts occ at pixel (x, y), at the head of that pixel's
// occupant list. It increments the owning region's and superregion's
// non-zero-pixel counters when the pixel transitions from empty to
// occupied. The returned Handle must be kept by the caller (block.Block)
// so Remove can later undo exactly this insertion.
func (idx *Index) AddBlockPixel(x, y int64, occ Occupant) Handle {
	coord := pixelCoord{X: x, Y: y}
	sc := idx.superCoordOf(coord)
	sr := idx.getSuper(sc, true)
	rc := idx.regionCoordOf(coord)
	rg := sr.getRegion(rc, true)

	px, ok := rg.cells[coord]
	if !ok {
		px = &pixel{}
		rg.cells[coord] = px
	}

	wasEmpty := px.head == nil
	node := &blockNode{occ: occ, next: px.head}
	if px.head != nil {
		px.head.prev = node
	}
	px.head = node

	if wasEmpty {
		rg.nonZero++
		sr.nonZero++
	}

	return Handle{idx: idx, coord: coord, sr: sr, rg: rg, px: px, node: node}
}

// Remove uninserts exactly the entry AddBlockPixel returned this handle
// for. It is the caller's responsibility (block.Block.UnMap) to call
// Remove exactly once per handle; calling it twice panics, since that
// indicates a programming error (unmapping an already-unmapped block).
func (h Handle) Remove() {
	if h.node == nil {
		panic("spatialidx: Remove called on a zero Handle")
	}
	n := h.node
	if n.occ == nil {
		panic("spatialidx: Remove called twice on the same Handle")
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		h.px.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next, n.occ = nil, nil, nil

	if h.px.head == nil {
		delete(h.rg.cells, h.coord)
		h.rg.nonZero--
		h.sr.nonZero--
		if len(h.rg.cells) == 0 {
			sc := h.idx.superCoordOf(h.coord)
			rc := h.idx.regionCoordOf(h.coord)
			if sr, ok := h.idx.supers[sc]; ok {
				delete(sr.regions, rc)
				if len(sr.regions) == 0 {
					delete(h.idx.supers, sc)
				}
			}
		}
	}
}
