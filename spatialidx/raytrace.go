package spatialidx

import "math"

// Predicate is applied to each candidate occupant a ray encounters, after
// the index has already excluded occupants owned by the requester and
// (if ztest is set) rejected occupants whose Z band misses the ray's Z.
// requester is an opaque value threaded through unchanged for the
// predicate's own use (e.g. the model package passes its *Model).
type Predicate func(occ Occupant, requester interface{}) bool

// Sample is the result of one ray: either a hit (Occupant != nil, Point is
// the hit location) or a miss (Occupant == nil, Point is the terminal
// point at max range or the index boundary).
type Sample struct {
	Point    [2]float64 // world meters
	Range    float64    // meters travelled
	Occupant Occupant   // nil if no hit
}

// Raytrace walks an integer DDA from origin along bearing for up to rng
// meters, skipping empty regions/superregions in O(1) jumps. originZ is
// compared against each candidate occupant's ZBand when ztest is true.
func (idx *Index) Raytrace(
	originX, originY, originZ, bearing, rng float64,
	pred Predicate, requester interface{}, requesterOwnerID int, ztest bool,
) Sample {
	dirX, dirY := math.Cos(bearing), math.Sin(bearing)
	ppm := idx.PPM

	posX := originX * ppm
	posY := originY * ppm
	maxPx := rng * ppm

	var travelledPx float64
	const eps = 1e-6

	for travelledPx < maxPx {
		px := pixelCoord{X: int64(math.Floor(posX)), Y: int64(math.Floor(posY))}

		sc := idx.superCoordOf(px)
		idx.stats.RegionVisits++
		sr := idx.getSuper(sc, false)
		if sr == nil || sr.nonZero == 0 {
			step := idx.distanceToExit(posX, posY, dirX, dirY, sc, idx.SuperSize) + eps
			remaining := maxPx - travelledPx
			if step > remaining {
				step = remaining
			}
			posX += dirX * step
			posY += dirY * step
			travelledPx += step
			continue
		}

		rc := idx.regionCoordOf(px)
		idx.stats.RegionVisits++
		rg := sr.getRegion(rc, false)
		if rg == nil || rg.nonZero == 0 {
			step := idx.regionDistanceToExit(posX, posY, dirX, dirY, rc) + eps
			remaining := maxPx - travelledPx
			if step > remaining {
				step = remaining
			}
			posX += dirX * step
			posY += dirY * step
			travelledPx += step
			continue
		}

		idx.stats.PixelVisits++
		if cell, ok := rg.cells[px]; ok {
			for n := cell.head; n != nil; n = n.next {
				occ := n.occ
				if occ.OwnerID() == requesterOwnerID {
					continue
				}
				if ztest {
					zmin, zmax := occ.ZBand()
					if originZ < zmin || originZ > zmax {
						continue
					}
				}
				if pred == nil || pred(occ, requester) {
					hitRangeM := travelledPx / ppm
					return Sample{
						Point:    [2]float64{originX + dirX*hitRangeM, originY + dirY*hitRangeM},
						Range:    hitRangeM,
						Occupant: occ,
					}
				}
			}
		}

		// Step to the exit boundary of this pixel and keep scanning; the
		// region is known non-empty but this particular pixel may have
		// been. Must use the same exact-boundary technique as the
		// region/superregion skip-ahead above: a fixed 1-pixel Euclidean
		// step overshoots on any non-axis-aligned bearing and can walk
		// straight past a pixel the line actually crosses.
		step := idx.pixelDistanceToExit(posX, posY, dirX, dirY, px) + eps
		remaining := maxPx - travelledPx
		if step > remaining {
			step = remaining
		}
		posX += dirX * step
		posY += dirY * step
		travelledPx += step
	}

	return Sample{
		Point: [2]float64{originX + dirX*rng, originY + dirY*rng},
		Range: rng,
	}
}

// RaytraceFan dispatches n evenly spaced rays spanning fov centered on
// bearing, returning samples ordered from bearing-fov/2 to bearing+fov/2.
func (idx *Index) RaytraceFan(
	originX, originY, originZ, bearing, rng, fov float64, n int,
	pred Predicate, requester interface{}, requesterOwnerID int, ztest bool,
) []Sample {
	samples := make([]Sample, n)
	if n <= 0 {
		return samples
	}
	if n == 1 {
		samples[0] = idx.Raytrace(originX, originY, originZ, bearing, rng, pred, requester, requesterOwnerID, ztest)
		return samples
	}
	start := bearing - fov/2
	step := fov / float64(n-1)
	for i := 0; i < n; i++ {
		b := start + step*float64(i)
		samples[i] = idx.Raytrace(originX, originY, originZ, b, rng, pred, requester, requesterOwnerID, ztest)
	}
	return samples
}

// distanceToExit returns the pixel-space distance from (posX, posY) to the
// boundary of the size x size tile containing it, travelling along
// (dirX, dirY). Position is assumed to lie inside the tile.
func (idx *Index) distanceToExit(posX, posY, dirX, dirY float64, tile superCoord, size int64) float64 {
	minX := float64(tile.X * size)
	minY := float64(tile.Y * size)
	return exitDistance(posX, posY, dirX, dirY, minX, minY, float64(size))
}

func (idx *Index) regionDistanceToExit(posX, posY, dirX, dirY float64, tile regionCoord) float64 {
	minX := float64(tile.X * idx.RegionSize)
	minY := float64(tile.Y * idx.RegionSize)
	return exitDistance(posX, posY, dirX, dirY, minX, minY, float64(idx.RegionSize))
}

// pixelDistanceToExit is the Amanatides-Woo single-pixel case of
// exitDistance: the step to whichever of the pixel's four boundaries the
// ray reaches first, so the DDA never skips a pixel the continuous line
// actually passes through.
func (idx *Index) pixelDistanceToExit(posX, posY, dirX, dirY float64, px pixelCoord) float64 {
	return exitDistance(posX, posY, dirX, dirY, float64(px.X), float64(px.Y), 1)
}

func exitDistance(posX, posY, dirX, dirY, minX, minY, size float64) float64 {
	maxX := minX + size
	maxY := minY + size
	best := math.Inf(1)

	if dirX > 0 {
		best = math.Min(best, (maxX-posX)/dirX)
	} else if dirX < 0 {
		best = math.Min(best, (minX-posX)/dirX)
	}
	if dirY > 0 {
		best = math.Min(best, (maxY-posY)/dirY)
	} else if dirY < 0 {
		best = math.Min(best, (minY-posY)/dirY)
	}
	if math.IsInf(best, 1) {
		return size
	}
	return math.Max(best, 0)
}
