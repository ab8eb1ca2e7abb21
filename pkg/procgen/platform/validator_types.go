package platform

import "math"

// Grid is the composite tilemap the Validator reasons about: a
// rectangular array of tile characters with out-of-bounds reads treated
// as solid.
type Grid struct {
	Width, Height int
	cells         [][]rune
}

// NewGrid parses tilemap lines into a rectangular grid. Short lines are
// padded with solid tiles so every row has the same width; this mirrors
// segments whose interior punches leave ragged trailing whitespace.
func NewGrid(lines []string) *Grid {
	height := len(lines)
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len([]rune(l))
		}
	}
	cells := make([][]rune, height)
	for y, l := range lines {
		row := []rune(l)
		padded := make([]rune, width)
		copy(padded, row)
		for x := len(row); x < width; x++ {
			padded[x] = '#'
		}
		cells[y] = padded
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// GetTile returns the tile at (x, y); out-of-bounds positions return '#'.
func (g *Grid) GetTile(x, y int) rune {
	if x < 0 || y < 0 || y >= g.Height || x >= g.Width {
		return '#'
	}
	return g.cells[y][x]
}

// SetTile writes a tile, ignoring out-of-bounds writes.
func (g *Grid) SetTile(x, y int, ch rune) {
	if x < 0 || y < 0 || y >= g.Height || x >= g.Width {
		return
	}
	g.cells[y][x] = ch
}

// Lines renders the grid back to tilemap lines.
func (g *Grid) Lines() []string {
	out := make([]string, g.Height)
	for y, row := range g.cells {
		out[y] = string(row)
	}
	return out
}

// IsSolid reports whether a position blocks movement: a solid block or
// breakable, or out of bounds.
func (g *Grid) IsSolid(x, y int) bool {
	ch := g.GetTile(x, y)
	return ch == '#' || ch == 'X'
}

// IsHazard reports whether a position is a spike hazard.
func (g *Grid) IsHazard(x, y int) bool {
	return g.GetTile(x, y) == '^'
}

// IsStandable reports whether the player can come to rest on this cell:
// not solid, not hazard, and the tile below is solid or a standable
// surface (one-way platform, bounce pad, crumbling platform).
func (g *Grid) IsStandable(x, y int) bool {
	if g.IsSolid(x, y) || g.IsHazard(x, y) {
		return false
	}
	below := g.GetTile(x, y+1)
	if g.IsSolid(x, y+1) {
		return true
	}
	switch below {
	case '_', '!', '.':
		return true
	default:
		return false
	}
}

// IsNearWall reports whether either horizontal neighbor is solid.
func (g *Grid) IsNearWall(x, y int) bool {
	return g.IsSolid(x-1, y) || g.IsSolid(x+1, y)
}

// TilePos is an integer grid coordinate.
type TilePos struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance between two tile positions.
func (p TilePos) DistanceTo(other TilePos) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanDistance returns |dx| + |dy|.
func (p TilePos) ManhattanDistance(other TilePos) int {
	return absInt(p.X-other.X) + absInt(p.Y-other.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MoveType is a distinct move kind in the Validator's reachability graph.
type MoveType int

const (
	MoveWalk MoveType = iota
	MoveJump
	MoveWallJump
	MoveGrapple
	MoveBounce
	MoveFall
	MoveDive
	MoveJetBoost
)

// Mechanics is a bitfield over the closed set of MoveType values. It is
// used both for MechanicsUsed (what was observed on a path) and
// MechanicsRequired (what disabling forces a failure).
type Mechanics uint8

func mechanicBit(m MoveType) Mechanics {
	return 1 << uint(m)
}

// Set returns a copy of the bitfield with move added.
func (m Mechanics) Set(move MoveType) Mechanics {
	return m | mechanicBit(move)
}

// Has reports whether move is present in the bitfield.
func (m Mechanics) Has(move MoveType) bool {
	return m&mechanicBit(move) != 0
}

// Count returns the number of distinct mechanics set.
func (m Mechanics) Count() int {
	count := 0
	for i := MoveType(0); i <= MoveJetBoost; i++ {
		if m.Has(i) {
			count++
		}
	}
	return count
}

// HasAdvanced reports whether any mechanic beyond walk/jump/fall is set
// (wall_jump, grapple, bounce, dive, jet_boost).
func (m Mechanics) HasAdvanced() bool {
	advanced := []MoveType{MoveWallJump, MoveGrapple, MoveBounce, MoveDive, MoveJetBoost}
	for _, a := range advanced {
		if m.Has(a) {
			return true
		}
	}
	return false
}

// GeometryConstraints bounds minimum passage dimensions for bottleneck
// detection and acceptance thresholds.
type GeometryConstraints struct {
	MinPassageWidth      int
	MinPassageHeight     int
	MinPathLength        int
	MinMechanicsAvailable int
	MinInterestScore     float64
}

// DefaultGeometryConstraints matches the Validator's stated defaults.
func DefaultGeometryConstraints() GeometryConstraints {
	return GeometryConstraints{
		MinPassageWidth:       2,
		MinPassageHeight:      2,
		MinPathLength:         5,
		MinMechanicsAvailable: 2,
		MinInterestScore:      0.3,
	}
}

// ValidationResult is the outcome of a validation pass.
type ValidationResult struct {
	IsCompletable     bool
	IsInteresting     bool
	PathLength        int
	Issues            []string
	MechanicsUsed     Mechanics
	MechanicsRequired Mechanics
	InterestScore     float64
}

// Failed constructs a ValidationResult describing a hard rejection.
func Failed(reason string) ValidationResult {
	return ValidationResult{Issues: []string{reason}}
}
