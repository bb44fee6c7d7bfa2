package spatialidx

// PixelCoord is an exported pixel coordinate, used only by Snapshot for
// test assertions about Map/UnMap being exact inverses.
type PixelCoord struct{ X, Y int64 }

// Snapshot returns, for every currently non-empty pixel, the list of
// occupant ids present there in head-to-tail order. It exists purely to
// let tests assert that UnMap followed by Map restores byte-identical
// index state; it is not part of the simulation's runtime hot path.
func (idx *Index) Snapshot() map[PixelCoord][]int {
	out := make(map[PixelCoord][]int)
	for _, sr := range idx.supers {
		for _, rg := range sr.regions {
			for coord, px := range rg.cells {
				var ids []int
				for n := px.head; n != nil; n = n.next {
					ids = append(ids, n.occ.OccupantID())
				}
				out[PixelCoord{coord.X, coord.Y}] = ids
			}
		}
	}
	return out
}
