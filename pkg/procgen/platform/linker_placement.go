package platform

// difficultyScaleRate tunes how quickly layout complexity approaches its
// asymptote as level_index grows; 0.05 reproduces L10=0.33, L20=0.50.
const difficultyScaleRate = 0.05

// SelectLayoutStrategy rolls a layout for a level, weighting rarer
// strategies in as progress and preset complexity increase. The roll
// uses a seed derived from the run seed and level index so the same
// inputs always choose the same layout.
func SelectLayoutStrategy(levelIndex int, preset DifficultyPreset, seed uint64) LayoutStrategy {
	rng := NewRng(seed + uint64(levelIndex)*7919)

	var complexity float64
	switch preset {
	case PresetCasual:
		complexity = 0.3
	case PresetChallenge:
		complexity = 1.0
	default:
		complexity = 0.6
	}

	progress := 1.0 - 1.0/(1.0+float64(levelIndex)*difficultyScaleRate)
	threshold := complexity * progress

	roll := rng.NextF64()
	switch {
	case roll < 0.35:
		return LayoutLinear
	case roll < 0.55+threshold*0.1:
		return LayoutVertical
	case roll < 0.75+threshold*0.15:
		return LayoutAlternating
	default:
		return LayoutGrid
	}
}

// SelectSegments picks segment_count candidates for a biome within a
// tier range, steering the difficulty tier toward a target that rises
// with position in the sequence and avoiding archetype repeats where a
// distinct-archetype candidate exists.
func SelectSegments(candidates []*Segment, biome BiomeID, segmentCount, minTier, maxTier int, seed uint64) []*Segment {
	rng := NewRng(seed)
	var selected []*Segment
	var usedArchetypes []Archetype

	var pool []*Segment
	for _, seg := range candidates {
		if seg.Biome == biome && seg.DifficultyTier >= minTier && seg.DifficultyTier <= maxTier {
			pool = append(pool, seg)
		}
	}
	if len(pool) == 0 {
		return selected
	}

	for i := 0; i < segmentCount; i++ {
		var available []*Segment
		for _, seg := range pool {
			if !contains(usedArchetypes, seg.Archetype) {
				available = append(available, seg)
			}
		}
		candidateSet := available
		if len(candidateSet) == 0 {
			candidateSet = pool
		}
		if len(candidateSet) == 0 {
			break
		}

		progress := float64(i) / float64(segmentCount)
		targetTier := float64(minTier) + float64(maxTier-minTier)*progress

		bestIdx := rng.RangeUsize(0, len(candidateSet))
		bestScore := float64(1 << 60)
		for idx, seg := range candidateSet {
			tierDiff := targetTier - float64(seg.DifficultyTier)
			if tierDiff < 0 {
				tierDiff = -tierDiff
			}
			score := tierDiff + rng.NextF64()*0.5
			if score < bestScore {
				bestScore = score
				bestIdx = idx
			}
		}

		chosen := candidateSet[bestIdx]
		usedArchetypes = append(usedArchetypes, chosen.Archetype)
		selected = append(selected, chosen)
	}

	return selected
}

// placeLinear arranges segments left-to-right in a single row, aligned
// on their vertical centers, connected by LinkRight corridors.
func placeLinear(parsed []*ParsedSegment, config SegmentLinkerConfig) ([]SegmentPlacement, []linkConnection) {
	placements := make([]SegmentPlacement, len(parsed))
	var connections []linkConnection

	x := 0
	maxHeight := 0
	for _, seg := range parsed {
		if seg.Height > maxHeight {
			maxHeight = seg.Height
		}
	}
	for i, seg := range parsed {
		y := (maxHeight - seg.Height) / 2
		placements[i] = SegmentPlacement{SegmentIdx: i, X: x, Y: y}
		if i > 0 {
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkRight})
		}
		x += seg.Width + config.CorridorWidth
	}
	return placements, connections
}

// placeVertical stacks segments top-to-bottom, aligned on their
// horizontal centers, connected by LinkDown corridors.
func placeVertical(parsed []*ParsedSegment, config SegmentLinkerConfig) ([]SegmentPlacement, []linkConnection) {
	placements := make([]SegmentPlacement, len(parsed))
	var connections []linkConnection

	y := 0
	maxWidth := 0
	for _, seg := range parsed {
		if seg.Width > maxWidth {
			maxWidth = seg.Width
		}
	}
	for i, seg := range parsed {
		x := (maxWidth - seg.Width) / 2
		placements[i] = SegmentPlacement{SegmentIdx: i, X: x, Y: y}
		if i > 0 {
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkDown})
		}
		y += seg.Height + config.CorridorHeight
	}
	return placements, connections
}

// placeAlternating zigzags segments right then down then right,
// producing a staircase shape with mixed corridor directions.
func placeAlternating(parsed []*ParsedSegment, config SegmentLinkerConfig) ([]SegmentPlacement, []linkConnection) {
	placements := make([]SegmentPlacement, len(parsed))
	var connections []linkConnection

	x, y := 0, 0
	for i := range parsed {
		placements[i] = SegmentPlacement{SegmentIdx: i, X: x, Y: y}
		if i == 0 {
			continue
		}
		if i%2 == 1 {
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkRight})
			x += parsed[i-1].Width + config.CorridorWidth
			placements[i].X = x
		} else {
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkDown})
			y += parsed[i-1].Height + config.CorridorHeight
			placements[i].Y = y
		}
	}
	return placements, connections
}

// placeGrid lays segments out in a roughly square grid, reading
// left-to-right then wrapping, connecting each to its row predecessor
// (or the cell above, at row starts) so every segment stays reachable.
func placeGrid(parsed []*ParsedSegment, config SegmentLinkerConfig) ([]SegmentPlacement, []linkConnection) {
	placements := make([]SegmentPlacement, len(parsed))
	var connections []linkConnection

	cols := 1
	for cols*cols < len(parsed) {
		cols++
	}

	colWidths := make([]int, cols)
	rowHeights := make([]int, (len(parsed)+cols-1)/cols)
	for i, seg := range parsed {
		col := i % cols
		row := i / cols
		if seg.Width > colWidths[col] {
			colWidths[col] = seg.Width
		}
		if seg.Height > rowHeights[row] {
			rowHeights[row] = seg.Height
		}
	}

	colX := make([]int, cols)
	acc := 0
	for c := 0; c < cols; c++ {
		colX[c] = acc
		acc += colWidths[c] + config.CorridorWidth
	}
	rowY := make([]int, len(rowHeights))
	acc = 0
	for r := range rowHeights {
		rowY[r] = acc
		acc += rowHeights[r] + config.CorridorHeight
	}

	for i, seg := range parsed {
		col := i % cols
		row := i / cols
		placements[i] = SegmentPlacement{SegmentIdx: i, X: colX[col], Y: rowY[row]}
		_ = seg
		if i == 0 {
			continue
		}
		if col == 0 {
			connections = append(connections, linkConnection{From: i - cols, To: i, Direction: LinkDown})
		} else {
			connections = append(connections, linkConnection{From: i - 1, To: i, Direction: LinkRight})
		}
	}
	return placements, connections
}

// linkConnection records which two segment indices a corridor joins and
// in which direction it runs, from the source segment's perspective.
type linkConnection struct {
	From, To  int
	Direction LinkDirection
}
