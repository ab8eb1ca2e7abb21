package platform

const spawnSearchHeight = 8

// adjustSpawn walks downward from the literal spawn tile, up to
// spawnSearchHeight rows, to find the first cell that is both standable
// and not solid. The literal spawn marker may sit mid-air.
func adjustSpawn(g *Grid, spawn TilePos) TilePos {
	for dy := 0; dy < spawnSearchHeight; dy++ {
		check := TilePos{X: spawn.X, Y: spawn.Y + dy}
		if g.IsStandable(check.X, check.Y) && !g.IsSolid(check.X, check.Y) {
			return check
		}
	}
	return spawn
}

// reachableNeighbor is a candidate BFS transition.
type reachableNeighbor struct {
	pos  TilePos
	move MoveType
}

// getReachableWithTypes enumerates every tile reachable from pos in a
// single move, tagged with the move kind that reaches it.
func getReachableWithTypes(caps MovementCaps, g *Grid, pos TilePos, grapplePoints, bouncePads []TilePos) []reachableNeighbor {
	var out []reachableNeighbor
	width, height := g.Width, g.Height

	onGround := g.IsStandable(pos.X, pos.Y)
	onBounce := false
	for _, bp := range bouncePads {
		if bp.X == pos.X && bp.Y == pos.Y+1 {
			onBounce = true
			break
		}
	}

	inBounds := func(t TilePos) bool {
		return t.X >= 0 && t.X < width && t.Y >= 0 && t.Y < height
	}

	// Walk
	if onGround {
		for _, dx := range [2]int{-1, 1} {
			np := TilePos{X: pos.X + dx, Y: pos.Y}
			if !g.IsSolid(np.X, np.Y) && !g.IsHazard(np.X, np.Y) {
				out = append(out, reachableNeighbor{np, MoveWalk})
			}
		}
	}

	// Fall
	for dy := 1; dy <= caps.MaxFall; dy++ {
		fp := TilePos{X: pos.X, Y: pos.Y + dy}
		if fp.Y >= height {
			break
		}
		if g.IsSolid(fp.X, fp.Y) {
			break
		}
		if g.IsHazard(fp.X, fp.Y) {
			continue
		}
		if g.IsStandable(fp.X, fp.Y) {
			out = append(out, reachableNeighbor{fp, MoveFall})
		}
	}

	// Bounce / Jump (mutually exclusive)
	if onBounce {
		for dy := -caps.BounceVertical; dy <= 0; dy++ {
			for dx := -caps.JumpHorizontal; dx <= caps.JumpHorizontal; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				target := TilePos{X: pos.X + dx, Y: pos.Y + dy}
				if !inBounds(target) {
					continue
				}
				if !g.IsSolid(target.X, target.Y) && !g.IsHazard(target.X, target.Y) &&
					g.IsStandable(target.X, target.Y) && isJumpArcClear(g, pos, target) {
					out = append(out, reachableNeighbor{target, MoveBounce})
				}
			}
		}
	} else if onGround {
		for dy := -caps.JumpVertical; dy <= 0; dy++ {
			for dx := -caps.JumpHorizontal; dx <= caps.JumpHorizontal; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				target := TilePos{X: pos.X + dx, Y: pos.Y + dy}
				if !inBounds(target) {
					continue
				}
				if !g.IsSolid(target.X, target.Y) && !g.IsHazard(target.X, target.Y) &&
					g.IsStandable(target.X, target.Y) && isJumpArcClear(g, pos, target) {
					out = append(out, reachableNeighbor{target, MoveJump})
				}
			}
		}
	}

	// Wall jump
	if g.IsNearWall(pos.X, pos.Y) {
		for dy := -caps.WallJumpVertical; dy <= 1; dy++ {
			for dx := -caps.WallJumpHorizontal; dx <= caps.WallJumpHorizontal; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				target := TilePos{X: pos.X + dx, Y: pos.Y + dy}
				if !inBounds(target) {
					continue
				}
				if !g.IsSolid(target.X, target.Y) && !g.IsHazard(target.X, target.Y) &&
					(g.IsStandable(target.X, target.Y) || g.IsNearWall(target.X, target.Y)) {
					out = append(out, reachableNeighbor{target, MoveWallJump})
				}
			}
		}
	}

	// Grapple
	for _, gp := range grapplePoints {
		dist := pos.DistanceTo(gp)
		if dist <= float64(caps.GrappleRange) {
			ropeLen := int(dist)
			if ropeLen < 1 {
				ropeLen = 1
			}
			for dy := 0; dy <= ropeLen+2; dy++ {
				for dx := -ropeLen; dx <= ropeLen; dx++ {
					target := TilePos{X: gp.X + dx, Y: gp.Y + dy}
					if !inBounds(target) {
						continue
					}
					swingDist := gp.DistanceTo(target)
					if swingDist <= float64(ropeLen+2) &&
						!g.IsSolid(target.X, target.Y) && !g.IsHazard(target.X, target.Y) &&
						hasLineOfSight(g, pos, gp) {
						out = append(out, reachableNeighbor{target, MoveGrapple})
					}
				}
			}
		}
	}

	// Dive
	for dy := 1; dy <= 4; dy++ {
		dp := TilePos{X: pos.X, Y: pos.Y + dy}
		if dp.Y >= height {
			break
		}
		ch := g.GetTile(dp.X, dp.Y)
		if ch == 'X' {
			continue
		}
		if g.IsSolid(dp.X, dp.Y) {
			break
		}
		if g.IsHazard(dp.X, dp.Y) {
			break
		}
		if g.IsStandable(dp.X, dp.Y) {
			out = append(out, reachableNeighbor{dp, MoveDive})
		}
	}

	// Jet boost
	if hasNearbyWater(g, pos, 3) {
		jh, jv := caps.JetBoostHorizontal, caps.JetBoostVertical
		for dy := -jv; dy <= jv; dy++ {
			for dx := -jh; dx <= jh; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if absInt(dx) < 5 && absInt(dy) < 3 {
					continue
				}
				target := TilePos{X: pos.X + dx, Y: pos.Y + dy}
				if !inBounds(target) {
					continue
				}
				if !g.IsSolid(target.X, target.Y) && !g.IsHazard(target.X, target.Y) &&
					g.IsStandable(target.X, target.Y) && hasLineOfSight(g, pos, target) {
					out = append(out, reachableNeighbor{target, MoveJetBoost})
				}
			}
		}
	}

	return dedupeNeighbors(out)
}

func dedupeNeighbors(in []reachableNeighbor) []reachableNeighbor {
	seen := make(map[TilePos]bool, len(in))
	out := in[:0:0]
	for _, n := range in {
		if seen[n.pos] {
			continue
		}
		seen[n.pos] = true
		out = append(out, n)
	}
	return out
}

// isJumpArcClear samples a parabolic arc between from and to and rejects
// it if any sampled cell is solid or a hazard, or if, during the arc's
// descent half, the tile on the takeoff row beneath a raised sample is a
// hazard.
func isJumpArcClear(g *Grid, from, to TilePos) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := maxInt(absInt(dx), maxInt(absInt(dy), 1))

	peakHeight := float64(absInt(dx)) / 2.0
	if peakHeight < 1.5 {
		peakHeight = 1.5
	}

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		checkX := from.X + int(float64(dx)*t)

		parabola := -4.0*peakHeight*(t-0.5)*(t-0.5) + peakHeight
		linearDy := float64(dy) * t
		arcOffset := int(parabola + linearDy)
		if arcOffset < 0 {
			arcOffset = 0
		}

		checkY := from.Y - arcOffset
		if g.IsSolid(checkX, checkY) || g.IsHazard(checkX, checkY) {
			return false
		}

		if arcOffset > 0 && t > 0.5 {
			if g.IsHazard(checkX, from.Y) {
				return false
			}
		}
	}
	return true
}

func hasLineOfSight(g *Grid, from, to TilePos) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := maxInt(absInt(dx), absInt(dy))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		checkX := from.X + int(float64(dx)*t)
		checkY := from.Y + int(float64(dy)*t)
		if g.IsSolid(checkX, checkY) {
			return false
		}
	}
	return true
}

func hasNearbyWater(g *Grid, pos TilePos, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if g.GetTile(pos.X+dx, pos.Y+dy) == '~' {
				return true
			}
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// canReachAdjacentExit gates BFS acceptance at Manhattan distance 1 from
// the exit, per direction-specific rules.
func canReachAdjacentExit(g *Grid, current, exit TilePos) bool {
	if g.IsHazard(exit.X, exit.Y) {
		return false
	}
	if g.IsSolid(exit.X, exit.Y) {
		return false
	}

	dx := exit.X - current.X
	dy := exit.Y - current.Y

	if dy == 0 && absInt(dx) == 1 {
		return g.IsStandable(current.X, current.Y) || g.IsStandable(exit.X, exit.Y)
	}
	if dx == 0 && dy == -1 {
		return g.IsStandable(current.X, current.Y) || g.IsNearWall(current.X, current.Y)
	}
	if dx == 0 && dy == 1 {
		return true
	}
	if absInt(dx) == 1 && absInt(dy) == 1 {
		return g.IsStandable(current.X, current.Y)
	}
	return false
}

// areConnectedFloodFill runs a 4-connected flood fill over passability
// (solid/breakable impassable; everything else, including platforms and
// hazards, passable) and reports whether spawn and exit share a
// component. This is the pre-BFS connectivity sanity check.
func areConnectedFloodFill(g *Grid, spawn, exit TilePos) bool {
	if g.Width == 0 || g.Height == 0 {
		return false
	}
	passable := func(x, y int) bool {
		if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
			return false
		}
		ch := g.GetTile(x, y)
		return ch != '#' && ch != 'X'
	}

	visited := make(map[TilePos]bool)
	queue := []TilePos{spawn}
	visited[spawn] = true
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == exit {
			return true
		}
		for _, d := range dirs {
			next := TilePos{X: current.X + d[0], Y: current.Y + d[1]}
			if passable(next.X, next.Y) && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// bfsOptions toggles which advanced mechanics are disabled for a run,
// allowing the same routine to drive both acceptance and
// mechanic-requirement analysis.
type bfsOptions struct {
	disableWallJump bool
	disableDive     bool
	disableJetBoost bool
}

// bfsWithMechanicsDisabled runs BFS from spawn to exit, tracking the best
// step count and accumulated MechanicsUsed per visited tile. Revisits are
// allowed only on strict step-count improvement.
func bfsWithMechanicsDisabled(caps MovementCaps, g *Grid, spawn, exit TilePos, grapplePoints, bouncePads []TilePos, opts bfsOptions) (int, Mechanics, bool) {
	type visitedEntry struct {
		steps     int
		mechanics Mechanics
	}
	visited := make(map[TilePos]visitedEntry)

	start := adjustSpawn(g, spawn)

	type queueEntry struct {
		pos       TilePos
		steps     int
		mechanics Mechanics
	}
	queue := []queueEntry{{start, 0, 0}}
	visited[start] = visitedEntry{0, 0}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		distToExit := current.pos.ManhattanDistance(exit)
		if distToExit == 0 {
			return current.steps, current.mechanics, true
		}
		if distToExit == 1 && canReachAdjacentExit(g, current.pos, exit) {
			return current.steps, current.mechanics, true
		}

		neighbors := getReachableWithTypes(caps, g, current.pos, grapplePoints, bouncePads)
		for _, n := range neighbors {
			if opts.disableWallJump && n.move == MoveWallJump {
				continue
			}
			if opts.disableDive && n.move == MoveDive {
				continue
			}
			if opts.disableJetBoost && n.move == MoveJetBoost {
				continue
			}

			newSteps := current.steps + 1
			prev, seen := visited[n.pos]
			shouldVisit := !seen || newSteps < prev.steps
			if !shouldVisit {
				continue
			}
			newMechanics := current.mechanics.Set(n.move)
			visited[n.pos] = visitedEntry{newSteps, newMechanics}
			queue = append(queue, queueEntry{n.pos, newSteps, newMechanics})
		}
	}

	return 0, 0, false
}
