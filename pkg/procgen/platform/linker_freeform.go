package platform

// freeformBounds tracks a placed segment's occupied rectangle in the
// pre-normalization coordinate space used while walking the snake.
type freeformBounds struct {
	minX, minY, maxX, maxY int
}

func boundsOverlap(a, b freeformBounds) bool {
	return !(a.maxX <= b.minX || a.minX >= b.maxX || a.maxY <= b.minY || a.minY >= b.maxY)
}

// linkFreeform lays segments out organically: each new segment picks a
// random cardinal direction from its predecessor, rejecting placements
// that overlap anything already placed, and falls back to a forced
// rightward placement if every direction is blocked. Open space is
// background (air), not walls, for a less claustrophobic feel.
func linkFreeform(parsed []*ParsedSegment, config SegmentLinkerConfig) LinkedLevel {
	segmentCount := len(parsed)
	rng := NewRng(config.Seed)

	for i, seg := range parsed {
		switch {
		case i == 0:
			seg.StripExit()
		case i == segmentCount-1:
			seg.StripSpawn()
		default:
			seg.StripSpawn()
			seg.StripExit()
		}
	}

	placements := make([]SegmentPlacement, 0, segmentCount)
	var connections []linkConnection
	var occupied []freeformBounds

	currentX, currentY := 0, 0
	placements = append(placements, SegmentPlacement{SegmentIdx: 0, X: 0, Y: 0})
	occupied = append(occupied, freeformBounds{0, 0, parsed[0].Width, parsed[0].Height})

	for i := 1; i < segmentCount; i++ {
		prevSeg := parsed[i-1]
		currSeg := parsed[i]

		var order [4]int
		if rng.NextF64() < 0.55 {
			if rng.NextF64() < 0.6 {
				order = [4]int{1, 3, 0, 2} // down, up, right, left
			} else {
				order = [4]int{3, 1, 0, 2} // up, down, right, left
			}
		} else {
			if rng.NextF64() < 0.5 {
				order = [4]int{0, 1, 2, 3} // right, down, left, up
			} else {
				order = [4]int{2, 1, 0, 3} // left, down, right, up
			}
		}

		placed := false
		for _, dir := range order {
			var newX, newY int
			var linkDir LinkDirection
			switch dir {
			case 0: // Right
				newX = currentX + prevSeg.Width + config.CorridorWidth
				newY = currentY + (prevSeg.Height-currSeg.Height)/2
				linkDir = LinkRight
			case 1: // Down
				newX = currentX + (prevSeg.Width-currSeg.Width)/2
				newY = currentY + prevSeg.Height + config.CorridorHeight
				linkDir = LinkDown
			case 2: // Left
				newX = currentX - currSeg.Width - config.CorridorWidth
				newY = currentY + (prevSeg.Height-currSeg.Height)/2
				linkDir = LinkLeft
			case 3: // Up
				newX = currentX + (prevSeg.Width-currSeg.Width)/2
				newY = currentY - currSeg.Height - config.CorridorHeight
				linkDir = LinkUp
			}

			const margin = 2
			candidate := freeformBounds{
				minX: newX - margin, minY: newY - margin,
				maxX: newX + currSeg.Width + margin, maxY: newY + currSeg.Height + margin,
			}

			overlaps := false
			for _, b := range occupied {
				if boundsOverlap(candidate, b) {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}

			placements = append(placements, SegmentPlacement{SegmentIdx: i, X: newX, Y: newY})
			occupied = append(occupied, freeformBounds{newX, newY, newX + currSeg.Width, newY + currSeg.Height})
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: linkDir})
			currentX, currentY = newX, newY
			placed = true
			break
		}

		if !placed {
			newX := currentX + prevSeg.Width + config.CorridorWidth
			newY := currentY
			placements = append(placements, SegmentPlacement{SegmentIdx: i, X: newX, Y: newY})
			occupied = append(occupied, freeformBounds{newX, newY, newX + currSeg.Width, newY + currSeg.Height})
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkRight})
			currentX, currentY = newX, newY
		}
	}

	minX, minY := occupied[0].minX, occupied[0].minY
	for _, b := range occupied {
		if b.minX < minX {
			minX = b.minX
		}
		if b.minY < minY {
			minY = b.minY
		}
	}
	for idx := range placements {
		placements[idx].X = occupied[idx].minX - minX
		placements[idx].Y = occupied[idx].minY - minY
	}

	totalWidth, totalHeight := 0, 0
	for _, b := range occupied {
		if w := b.maxX - minX; w > totalWidth {
			totalWidth = w
		}
		if h := b.maxY - minY; h > totalHeight {
			totalHeight = h
		}
	}

	return assembleLinkedLevel(parsed, placements, connections, totalWidth, totalHeight, config, LayoutFreeform)
}

// assembleLinkedLevel paints every segment onto a background canvas at
// its placement, carves the recorded connections, and guarantees a
// spawn and exit before returning the finished level.
func assembleLinkedLevel(parsed []*ParsedSegment, placements []SegmentPlacement, connections []linkConnection, totalWidth, totalHeight int, config SegmentLinkerConfig, layout LayoutStrategy) LinkedLevel {
	const background = ' '

	combined := make([][]rune, totalHeight)
	for y := range combined {
		row := make([]rune, totalWidth)
		for x := range row {
			row[x] = background
		}
		combined[y] = row
	}

	segmentNames := make([]string, len(parsed))
	for i, seg := range parsed {
		segmentNames[i] = seg.Name
	}

	for _, placement := range placements {
		seg := parsed[placement.SegmentIdx]
		for sy, row := range seg.Tiles {
			ty := placement.Y + sy
			if ty < 0 || ty >= totalHeight {
				continue
			}
			for sx, ch := range row {
				tx := placement.X + sx
				if tx >= 0 && tx < totalWidth {
					combined[ty][tx] = ch
				}
			}
		}
	}

	for _, conn := range connections {
		fromSeg, toSeg := parsed[conn.From], parsed[conn.To]
		fromPlacement, toPlacement := placements[conn.From], placements[conn.To]

		switch conn.Direction {
		case LinkRight:
			exitY := findExitRow(fromSeg, fromPlacement.Y, totalHeight)
			entryY := findEntryRow(toSeg, toPlacement.Y, totalHeight)
			punchThroughWall(combined, fromPlacement.X+fromSeg.Width-1, exitY, LinkRight, config.CorridorHeight)
			punchThroughWall(combined, toPlacement.X, entryY, LinkLeft, config.CorridorHeight)
			corridorStartX := fromPlacement.X + fromSeg.Width
			if corridorLen := toPlacement.X - corridorStartX; corridorLen > 0 {
				carveHorizontalCorridor(combined, corridorStartX, exitY, corridorLen, entryY, config.CorridorHeight)
			}
		case LinkLeft:
			exitY := findEntryRow(fromSeg, fromPlacement.Y, totalHeight)
			entryY := findExitRow(toSeg, toPlacement.Y, totalHeight)
			punchThroughWall(combined, fromPlacement.X, exitY, LinkLeft, config.CorridorHeight)
			punchThroughWall(combined, toPlacement.X+toSeg.Width-1, entryY, LinkRight, config.CorridorHeight)
			corridorStartX := toPlacement.X + toSeg.Width
			if corridorLen := fromPlacement.X - corridorStartX; corridorLen > 0 {
				carveHorizontalCorridor(combined, corridorStartX, entryY, corridorLen, exitY, config.CorridorHeight)
			}
		case LinkDown:
			exitX := findVerticalExitCol(fromSeg, fromPlacement.X, totalWidth)
			entryX := findVerticalEntryCol(toSeg, toPlacement.X, totalWidth)
			punchThroughWall(combined, exitX, fromPlacement.Y+fromSeg.Height-1, LinkDown, config.CorridorHeight)
			punchThroughWall(combined, entryX, toPlacement.Y, LinkUp, config.CorridorHeight)
			corridorStartY := fromPlacement.Y + fromSeg.Height
			if corridorLen := toPlacement.Y - corridorStartY; corridorLen > 0 {
				carveVerticalCorridor(combined, exitX, corridorStartY, corridorLen, toPlacement.Y, entryX)
			}
		case LinkUp:
			exitX := findVerticalEntryCol(fromSeg, fromPlacement.X, totalWidth)
			entryX := findVerticalExitCol(toSeg, toPlacement.X, totalWidth)
			punchThroughWall(combined, exitX, fromPlacement.Y, LinkUp, config.CorridorHeight)
			punchThroughWall(combined, entryX, toPlacement.Y+toSeg.Height-1, LinkDown, config.CorridorHeight)
			corridorStartY := toPlacement.Y + toSeg.Height
			if corridorLen := fromPlacement.Y - corridorStartY; corridorLen > 0 {
				carveVerticalCorridor(combined, entryX, corridorStartY, corridorLen, fromPlacement.Y, exitX)
			}
		}
	}

	ensureSpawnExit(combined, len(parsed), placements, parsed)

	return LinkedLevel{
		Tilemap:      joinRows(combined),
		Width:        totalWidth,
		Height:       totalHeight,
		SegmentNames: segmentNames,
		Success:      true,
		Layout:       layout,
	}
}
