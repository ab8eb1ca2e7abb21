package platform

// findMarker returns the first position (row-major order) holding ch, and
// whether one was found. Row-major order keeps this deterministic
// regardless of how the grid was assembled.
func findMarker(g *Grid, ch rune) (TilePos, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.GetTile(x, y) == ch {
				return TilePos{X: x, Y: y}, true
			}
		}
	}
	return TilePos{}, false
}

// findAllMarkers returns every position holding ch, in row-major order.
func findAllMarkers(g *Grid, ch rune) []TilePos {
	var out []TilePos
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.GetTile(x, y) == ch {
				out = append(out, TilePos{X: x, Y: y})
			}
		}
	}
	return out
}

// findHazards collects every hazard tile in row-major order.
func findHazards(g *Grid) []TilePos {
	return findAllMarkers(g, '^')
}

// Bottleneck is a non-fatal report of a passable run narrower than the
// configured geometry minimum.
type Bottleneck struct {
	Pos    TilePos
	Reason string
}

// findPassageBottlenecks scans rows and columns for maximal runs of
// passable tiles enclosed by solid tiles on both ends, flagging any run
// shorter than the geometry constraints' minimum width/height.
func findPassageBottlenecks(g *Grid, constraints GeometryConstraints) []Bottleneck {
	var out []Bottleneck

	for y := 0; y < g.Height; y++ {
		runStart := -1
		for x := 0; x <= g.Width; x++ {
			passable := x < g.Width && !g.IsSolid(x, y)
			if passable {
				if runStart == -1 {
					runStart = x
				}
				continue
			}
			if runStart != -1 {
				length := x - runStart
				enclosed := runStart > 0 && x < g.Width
				if enclosed && length < constraints.MinPassageWidth {
					out = append(out, Bottleneck{
						Pos:    TilePos{X: runStart, Y: y},
						Reason: "narrow horizontal passage",
					})
				}
				runStart = -1
			}
		}
	}

	for x := 0; x < g.Width; x++ {
		runStart := -1
		for y := 0; y <= g.Height; y++ {
			passable := y < g.Height && !g.IsSolid(x, y)
			if passable {
				if runStart == -1 {
					runStart = y
				}
				continue
			}
			if runStart != -1 {
				length := y - runStart
				enclosed := runStart > 0 && y < g.Height
				if enclosed && length < constraints.MinPassageHeight {
					out = append(out, Bottleneck{
						Pos:    TilePos{X: x, Y: runStart},
						Reason: "narrow vertical passage",
					})
				}
				runStart = -1
			}
		}
	}

	return out
}
