package platform

// ensureSpawnExit guarantees the combined tilemap has exactly one spawn
// (in the first segment) and one exit (in the last), searching each
// segment's interior for a valid marker position and falling back to an
// expanding-ring search around the segment's center if none is found.
func ensureSpawnExit(tiles [][]rune, segCount int, placements []SegmentPlacement, segs []*ParsedSegment) {
	if segCount == 0 || len(placements) == 0 {
		return
	}
	height := len(tiles)
	width := 0
	if height > 0 {
		width = len(tiles[0])
	}

	hasSpawn := false
	hasExit := false
	for _, row := range tiles {
		for _, ch := range row {
			if ch == 'P' {
				hasSpawn = true
			}
			if ch == '>' {
				hasExit = true
			}
		}
	}

	if !hasSpawn {
		firstSeg := segs[0]
		placement := placements[0]
		if gx, gy, ok := findValidMarkerPosition(tiles, firstSeg, placement, height, width, true); ok {
			tiles[gy][gx] = 'P'
			if gy+1 < height && tiles[gy+1][gx] == ' ' {
				tiles[gy+1][gx] = '_'
			}
		} else if gx, gy, ok := findFallbackPosition(tiles, placement, firstSeg, height, width); ok {
			tiles[gy][gx] = 'P'
			if gy+1 < height && tiles[gy+1][gx] == ' ' {
				tiles[gy+1][gx] = '_'
			}
		}
	}

	if !hasExit {
		lastIdx := segCount - 1
		lastSeg := segs[lastIdx]
		placement := placements[lastIdx]
		if gx, gy, ok := findValidMarkerPosition(tiles, lastSeg, placement, height, width, false); ok {
			tiles[gy][gx] = '>'
			if gy+1 < height && tiles[gy+1][gx] == ' ' {
				tiles[gy+1][gx] = '_'
			}
		} else if gx, gy, ok := findFallbackPosition(tiles, placement, lastSeg, height, width); ok {
			tiles[gy][gx] = '>'
			if gy+1 < height && tiles[gy+1][gx] == ' ' {
				tiles[gy+1][gx] = '_'
			}
		}
	}
}

// findValidMarkerPosition searches a segment's interior, away from its
// edges, for a spot that is empty with solid floor beneath it, then
// (second pass) for a spot where a floor can be created.
func findValidMarkerPosition(tiles [][]rune, seg *ParsedSegment, placement SegmentPlacement, height, width int, preferLeft bool) (int, int, bool) {
	lo, hi := 3, seg.Width-3
	if hi < lo {
		return 0, 0, false
	}
	xs := make([]int, 0, hi-lo)
	for x := lo; x < hi; x++ {
		xs = append(xs, x)
	}
	if !preferLeft {
		for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}

	tryRows := func(accept func(tile, below rune) bool) (int, int, bool) {
		for _, x := range xs {
			for y := 2; y < seg.Height-2; y++ {
				globalX := placement.X + x
				globalY := placement.Y + y
				if globalY >= height || globalY+1 >= height || globalX >= width {
					continue
				}
				tile := tiles[globalY][globalX]
				below := tiles[globalY+1][globalX]
				if accept(tile, below) {
					return globalX, globalY, true
				}
			}
		}
		return 0, 0, false
	}

	if x, y, ok := tryRows(func(tile, below rune) bool {
		return tile == ' ' && (below == '#' || below == '=' || below == '-')
	}); ok {
		return x, y, true
	}
	return tryRows(func(tile, below rune) bool {
		return tile == ' ' && below == ' '
	})
}

// findFallbackPosition searches in expanding square rings from a
// segment's center for any empty tile with a floor (existing or
// creatable) beneath it.
func findFallbackPosition(tiles [][]rune, placement SegmentPlacement, seg *ParsedSegment, height, width int) (int, int, bool) {
	centerX := placement.X + seg.Width/2
	centerY := placement.Y + seg.Height/2

	maxRadius := seg.Width
	if seg.Height > maxRadius {
		maxRadius = seg.Height
	}
	maxRadius /= 2

	for radius := 0; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if radius > 0 && absInt(dx) != radius && absInt(dy) != radius {
					continue
				}
				gx := centerX + dx
				gy := centerY + dy
				if gx < 0 || gy < 0 {
					continue
				}
				if gy >= height || gy+1 >= height || gx >= width {
					continue
				}
				tile := tiles[gy][gx]
				below := tiles[gy+1][gx]
				if tile == ' ' && (below == '#' || below == '=' || below == '-' || below == ' ') {
					return gx, gy, true
				}
			}
		}
	}
	return 0, 0, false
}
