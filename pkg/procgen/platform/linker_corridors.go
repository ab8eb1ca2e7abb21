package platform

// corridorColumnSearchMin is the column offset from a segment's right
// edge at which findExitRow starts (Width-1, the border column itself);
// findEntryRow starts at column corridorColumnSearchMin-1, the left
// border column.
const corridorColumnSearchMin = 1

// findExitRow locates an open row near the vertical center of a
// segment's right-hand interior, searching outward from mid-height so
// corridors connect through playable space rather than the border.
func findExitRow(seg *ParsedSegment, yOffset, maxHeight int) int {
	midY := seg.Height / 2
	maxColSearch := seg.Width / 2
	searchRange := seg.Height * 3 / 10

	for colOffset := corridorColumnSearchMin; colOffset < maxColSearch; colOffset++ {
		rightCol := seg.Width - colOffset
		if rightCol <= 0 {
			break
		}
		for offset := 0; offset < searchRange; offset++ {
			for _, direction := range [2]int{1, -1} {
				y := midY + offset*direction
				if y < 0 || y >= seg.Height {
					continue
				}
				globalY := yOffset + y
				if globalY >= maxHeight {
					continue
				}
				if seg.GetTile(rightCol, y) == ' ' {
					return globalY
				}
			}
		}
	}
	return yOffset + midY
}

// findEntryRow is findExitRow's mirror for a segment's left-hand edge.
func findEntryRow(seg *ParsedSegment, yOffset, maxHeight int) int {
	midY := seg.Height / 2
	maxColSearch := seg.Width / 2
	searchRange := seg.Height * 3 / 10

	for leftCol := corridorColumnSearchMin - 1; leftCol < maxColSearch; leftCol++ {
		if leftCol >= seg.Width {
			break
		}
		for offset := 0; offset < searchRange; offset++ {
			for _, direction := range [2]int{1, -1} {
				y := midY + offset*direction
				if y < 0 || y >= seg.Height {
					continue
				}
				globalY := yOffset + y
				if globalY >= maxHeight {
					continue
				}
				if seg.GetTile(leftCol, y) == ' ' {
					return globalY
				}
			}
		}
	}
	return yOffset + midY
}

// findVerticalExitCol locates an open column near a segment's bottom
// edge for a downward connection.
func findVerticalExitCol(seg *ParsedSegment, xOffset, maxWidth int) int {
	for rowOffset := 1; rowOffset < 5; rowOffset++ {
		checkRow := seg.Height - rowOffset
		if checkRow <= 0 {
			break
		}
		for x := seg.Width / 3; x < seg.Width*2/3; x++ {
			globalX := xOffset + x
			if globalX >= maxWidth {
				continue
			}
			tile := seg.GetTile(x, checkRow)
			if tile == ' ' || tile == 'P' || tile == '>' {
				return globalX
			}
		}
	}
	return xOffset + seg.Width/2
}

// findVerticalEntryCol locates an open column near a segment's top edge
// for an upward connection.
func findVerticalEntryCol(seg *ParsedSegment, xOffset, maxWidth int) int {
	for rowOffset := 1; rowOffset < 5; rowOffset++ {
		if rowOffset >= seg.Height {
			break
		}
		for x := seg.Width / 3; x < seg.Width*2/3; x++ {
			globalX := xOffset + x
			if globalX >= maxWidth {
				continue
			}
			tile := seg.GetTile(x, rowOffset)
			if tile == ' ' || tile == 'P' || tile == '>' {
				return globalX
			}
		}
	}
	return xOffset + seg.Width/2
}

func clampIdx(v, limit int) (int, bool) {
	if v < 0 || v >= limit {
		return 0, false
	}
	return v, true
}

// punchThroughWall clears tiles both forward (into the corridor) and
// backward (into the segment's interior) so a border wall never blocks
// a carved connection, and drops stepping platforms for vertical
// traversal into the punch.
func punchThroughWall(tiles [][]rune, x, y int, direction LinkDirection, corridorHeight int) {
	height := len(tiles)
	width := 0
	if height > 0 {
		width = len(tiles[0])
	}

	clearanceAbove := corridorHeight + 8
	clearanceBelow := 4

	switch direction {
	case LinkLeft, LinkRight:
		punchDepthForward := 8
		punchDepthBack := 10

		for dx := 0; dx < punchDepthForward; dx++ {
			var punchX int
			if direction == LinkRight {
				punchX = x + dx
			} else {
				punchX = x - dx
			}
			if px, ok := clampIdx(punchX, width); ok {
				for dy := 0; dy < clearanceAbove; dy++ {
					if py, ok := clampIdx(y-dy, height); ok {
						tiles[py][px] = ' '
					}
				}
				for dy := 1; dy <= clearanceBelow; dy++ {
					if py, ok := clampIdx(y+dy, height); ok {
						tiles[py][px] = ' '
					}
				}
				if floorY, ok := clampIdx(y+clearanceBelow+1, height); ok {
					tiles[floorY][px] = '_'
				}
			}
		}

		for dx := 1; dx <= punchDepthBack; dx++ {
			var punchX int
			if direction == LinkRight {
				punchX = x - dx
			} else {
				punchX = x + dx
			}
			px, ok := clampIdx(punchX, width)
			if !ok {
				continue
			}
			for dy := 0; dy < clearanceAbove; dy++ {
				if py, ok := clampIdx(y-dy, height); ok {
					tiles[py][px] = ' '
				}
			}
			for dy := 1; dy <= clearanceBelow; dy++ {
				if py, ok := clampIdx(y+dy, height); ok {
					tiles[py][px] = ' '
				}
			}
			if floorY, ok := clampIdx(y+1, height); ok && tiles[floorY][px] == ' ' {
				tiles[floorY][px] = '_'
			}
			if dx%3 == 0 {
				if highY, ok := clampIdx(y-2, height); ok && tiles[highY][px] == ' ' {
					tiles[highY][px] = '_'
				}
				if lowY, ok := clampIdx(y+3, height); ok && tiles[lowY][px] == ' ' {
					tiles[lowY][px] = '_'
				}
			}
		}

	case LinkUp, LinkDown:
		punchDepthForward := 8
		punchDepthBack := 8
		clearance := corridorHeight + 4

		for dy := 0; dy < punchDepthForward; dy++ {
			var punchY int
			if direction == LinkDown {
				punchY = y + dy
			} else {
				punchY = y - dy
			}
			py, ok := clampIdx(punchY, height)
			if !ok {
				continue
			}
			for dx := 0; dx < clearance; dx++ {
				leftX := x - clearance/2 + dx
				if lx, ok := clampIdx(leftX, width); ok {
					tiles[py][lx] = ' '
				}
			}
		}

		for dy := 1; dy <= punchDepthBack; dy++ {
			var punchY int
			if direction == LinkDown {
				punchY = y - dy
			} else {
				punchY = y + dy
			}
			py, ok := clampIdx(punchY, height)
			if !ok {
				continue
			}
			for dx := 0; dx < clearance; dx++ {
				leftX := x - clearance/2 + dx
				if lx, ok := clampIdx(leftX, width); ok {
					tiles[py][lx] = ' '
				}
			}
		}
	}
}

// carveHorizontalCorridor opens a diagonal-capable horizontal passage
// between two exit/entry rows and drops stepping platforms along it.
func carveHorizontalCorridor(tiles [][]rune, startX, startY, corridorLen, endY, corridorHeight int) {
	height := len(tiles)
	width := 0
	if height > 0 {
		width = len(tiles[0])
	}

	minY := startY
	if endY < minY {
		minY = endY
	}
	maxY := startY
	if endY > maxY {
		maxY = endY
	}
	heightDiff := maxY - minY
	effectiveClearance := corridorHeight
	if heightDiff+corridorHeight > effectiveClearance {
		effectiveClearance = heightDiff + corridorHeight
	}

	for x := startX; x < startX+corridorLen; x++ {
		if x >= width {
			continue
		}
		t := 0.0
		if corridorLen > 1 {
			t = float64(x-startX) / float64(corridorLen-1)
		}
		y := int(float64(startY)*(1-t) + float64(endY)*t)

		carveTop := minY - corridorHeight
		if carveTop < 0 {
			carveTop = 0
		}
		carveBottom := y + 1
		maxRow := height - 1
		if carveBottom > maxRow {
			carveBottom = maxRow
		}
		for carveY := carveTop; carveY <= carveBottom; carveY++ {
			if carveY >= 0 && carveY < height && tiles[carveY][x] != '_' {
				tiles[carveY][x] = ' '
			}
		}
		for dy := 0; dy < effectiveClearance; dy++ {
			if carveY, ok := clampIdx(y-dy, height); ok {
				tiles[carveY][x] = ' '
			}
		}
	}

	platformInterval := 3
	for i, x := 0, startX; x < startX+corridorLen; i, x = i+1, x+1 {
		if x >= width {
			continue
		}
		t := 0.0
		if corridorLen > 1 {
			t = float64(x-startX) / float64(corridorLen-1)
		}
		baseY := int(float64(startY)*(1-t) + float64(endY)*t)

		if i%platformInterval == 1 {
			platformY := baseY
			if (i/platformInterval)%2 != 0 {
				platformY = baseY - 2
			}
			if py, ok := clampIdx(platformY, height); ok {
				tiles[py][x] = '_'
				if x+1 < width {
					tiles[py][x+1] = '_'
				}
			}
		}

		if heightDiff > 5 && i%(platformInterval*2) == 0 {
			midY := (minY + maxY) / 2
			if midY < height && midY != baseY {
				tiles[midY][x] = '_'
			}
		}
	}
}

// carveVerticalCorridor opens a wide shaft with alternating side
// platforms between two vertically stacked segments.
func carveVerticalCorridor(tiles [][]rune, startX, startY, corridorLen, endY, endX int) {
	height := len(tiles)
	width := 0
	if height > 0 {
		width = len(tiles[0])
	}
	const corridorWidth = 5

	minY := startY
	if endY < minY {
		minY = endY
	}
	maxY := startY
	if endY > maxY {
		maxY = endY
	}
	maxY += corridorLen
	if maxY > height {
		maxY = height
	}

	for y := minY; y < maxY; y++ {
		if y >= height {
			continue
		}
		t := 0.0
		if maxY > minY {
			t = float64(y-minY) / float64(maxY-minY)
		}
		shaftX := int(float64(startX)*(1-t) + float64(endX)*t)
		for dx := 0; dx < corridorWidth; dx++ {
			cx := shaftX - corridorWidth/2 + dx
			if cx >= 0 && cx < width {
				tiles[y][cx] = ' '
			}
		}
	}

	platformInterval := 4
	for y := minY; y < maxY; y += platformInterval {
		if y >= height {
			continue
		}
		t := 0.0
		if maxY > minY {
			t = float64(y-minY) / float64(maxY-minY)
		}
		shaftX := int(float64(startX)*(1-t) + float64(endX)*t)

		platformSide := -2
		if (y/platformInterval)%2 != 0 {
			platformSide = 2
		}
		platformX := shaftX + platformSide
		if platformX > 0 && platformX < width-1 {
			tiles[y][platformX] = '_'
			if platformX+1 < width {
				tiles[y][platformX+1] = '_'
			}
		}
	}
}
