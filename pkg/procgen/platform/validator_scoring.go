package platform

// calculateInterestScore combines available grapple points, bounce pads,
// path length, hazard count, and the diversity of mechanics observed on
// the optimal path into a single [0,1] score. No original reference
// formula exists for this subsystem; weights are chosen so that a bare
// corridor scores near zero and a level exercising most of the movement
// repertoire over a long path approaches 1.
func calculateInterestScore(g *Grid, grapplePoints, bouncePads, hazards []TilePos, pathLength int, mechanicsUsed Mechanics) float64 {
	normalize := func(count, cap int) float64 {
		if cap <= 0 {
			return 0
		}
		v := float64(count) / float64(cap)
		if v > 1 {
			v = 1
		}
		return v
	}

	grappleScore := normalize(len(grapplePoints), 3)
	bounceScore := normalize(len(bouncePads), 3)
	pathScore := normalize(pathLength, 30)
	hazardScore := normalize(len(hazards), 10)
	mechanicsScore := float64(mechanicsUsed.Count()) / 8.0

	const (
		wGrapple    = 0.15
		wBounce     = 0.15
		wPath       = 0.25
		wHazard     = 0.1
		wMechanics  = 0.35
	)

	score := wGrapple*grappleScore + wBounce*bounceScore + wPath*pathScore +
		wHazard*hazardScore + wMechanics*mechanicsScore
	if score > 1 {
		score = 1
	}
	return score
}

// countAvailableMechanics counts the movement mechanics the level's tile
// content makes available: walk and jump are always available; grapple,
// bounce, dive, wall-jump, and jet-boost each count once if their
// enabling tile content is present anywhere in the grid.
func countAvailableMechanics(g *Grid, grapplePoints, bouncePads []TilePos) int {
	count := 2 // walk, jump are always available given any floor

	if len(grapplePoints) > 0 {
		count++
	}
	if len(bouncePads) > 0 {
		count++
	}

	hasBreakable := false
	hasWater := false
	hasWallAdjacency := false
	for y := 0; y < g.Height && !(hasBreakable && hasWater && hasWallAdjacency); y++ {
		for x := 0; x < g.Width; x++ {
			switch g.GetTile(x, y) {
			case 'X':
				hasBreakable = true
			case '~':
				hasWater = true
			}
			if !hasWallAdjacency && !g.IsSolid(x, y) && g.IsNearWall(x, y) {
				hasWallAdjacency = true
			}
		}
	}
	if hasBreakable {
		count++
	}
	if hasWater {
		count++
	}
	if hasWallAdjacency {
		count++
	}

	return count
}
