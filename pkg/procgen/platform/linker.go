package platform

// LinkSegments combines a sequence of segments into one tilemap using
// the layout strategy named in config. Freeform is handled separately
// since each of its placement decisions depends on what's already
// occupied; the other four strategies compute placements up front. All
// five then share one assembly and carving pass (assembleLinkedLevel).
func LinkSegments(segments []*Segment, config SegmentLinkerConfig) LinkedLevel {
	if len(segments) == 0 {
		return LinkedLevel{Success: false}
	}

	parsed := make([]*ParsedSegment, len(segments))
	for i, seg := range segments {
		parsed[i] = NewParsedSegment(seg)
	}

	if config.Strategy == LayoutFreeform {
		return linkFreeform(parsed, config)
	}

	segmentCount := len(parsed)
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

	var placements []SegmentPlacement
	var connections []linkConnection
	switch config.Strategy {
	case LayoutLinear:
		placements, connections = placeLinear(parsed, config)
	case LayoutVertical:
		placements, connections = placeVertical(parsed, config)
	case LayoutAlternating:
		placements, connections = placeAlternating(parsed, config)
	case LayoutGrid:
		placements, connections = placeGrid(parsed, config)
	default:
		placements, connections = placeLinear(parsed, config)
	}

	if len(placements) == 0 {
		return LinkedLevel{Success: false}
	}

	totalWidth, totalHeight := 0, 0
	for i, placement := range placements {
		if w := placement.X + parsed[i].Width; w > totalWidth {
			totalWidth = w
		}
		if h := placement.Y + parsed[i].Height; h > totalHeight {
			totalHeight = h
		}
	}

	return assembleLinkedLevel(parsed, placements, connections, totalWidth, totalHeight, config, config.Strategy)
}
