package platform

import "fmt"

func formatBottleneckIssue(count int) string {
	return fmt.Sprintf("Found %d passage bottleneck(s) that may be impassable", count)
}

func formatPathTooShort(length, min int) string {
	return fmt.Sprintf("Path too short (%d steps, minimum %d)", length, min)
}

func formatTooFewMechanics(available, min int) string {
	return fmt.Sprintf("Too few mechanics available (%d, minimum %d)", available, min)
}

func formatInterestTooLow(score, min float64) string {
	return fmt.Sprintf("Interest score too low (%.2f, minimum %.2f)", score, min)
}

// Validator checks whether a composite tilemap is completable and
// interesting, and determines the minimal set of mechanics a level
// actually requires by re-running BFS with specific abilities disabled.
type Validator struct {
	caps                  MovementCaps
	constraints           GeometryConstraints
	minPathLength         int
	minMechanicsAvailable int
	minInterestScore      float64
}

// NewValidator creates a Validator with the default caps, geometry
// constraints, and acceptance thresholds.
func NewValidator() *Validator {
	return &Validator{
		caps:                  DefaultMovementCaps(),
		constraints:           DefaultGeometryConstraints(),
		minPathLength:         5,
		minMechanicsAvailable: 2,
		minInterestScore:      0.3,
	}
}

// NewValidatorWithThresholds creates a Validator with caller-supplied
// acceptance thresholds, used by end-to-end test scenarios that relax
// the defaults.
func NewValidatorWithThresholds(caps MovementCaps, minPathLength, minMechanicsAvailable int, minInterestScore float64) *Validator {
	return &Validator{
		caps:                  caps,
		constraints:           DefaultGeometryConstraints(),
		minPathLength:         minPathLength,
		minMechanicsAvailable: minMechanicsAvailable,
		minInterestScore:      minInterestScore,
	}
}

// ValidateDetailed runs the full acceptance pipeline: marker discovery,
// flood-fill sanity, physics-aware BFS, required-mechanics analysis,
// interest scoring, and bottleneck detection.
func (v *Validator) ValidateDetailed(lines []string) ValidationResult {
	g := NewGrid(lines)
	if g.Height == 0 {
		return Failed("Empty level")
	}
	if g.Width == 0 {
		return Failed("Zero width level")
	}

	spawn, hasSpawn := findMarker(g, 'P')
	exit, hasExit := findMarker(g, '>')
	if !hasSpawn {
		return Failed("No spawn point (P) found")
	}
	if !hasExit {
		return Failed("No exit point (>) found")
	}

	if !areConnectedFloodFill(g, spawn, exit) {
		return Failed("Spawn and exit are in disconnected regions (no valid path)")
	}

	grapplePoints := findAllMarkers(g, '@')
	bouncePads := findAllMarkers(g, '!')
	hazards := findHazards(g)

	steps, mechanicsUsed, found := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, bouncePads, bfsOptions{})
	if !found {
		return Failed("No path from spawn to exit")
	}

	mechanicsRequired := v.determineRequiredMechanics(g)

	result := ValidationResult{
		IsCompletable:     true,
		IsInteresting:     true,
		PathLength:        steps,
		MechanicsUsed:     mechanicsUsed,
		MechanicsRequired: mechanicsRequired,
	}

	result.InterestScore = calculateInterestScore(g, grapplePoints, bouncePads, hazards, steps, mechanicsUsed)

	bottlenecks := findPassageBottlenecks(g, v.constraints)
	if len(bottlenecks) > 0 {
		result.Issues = append(result.Issues, formatBottleneckIssue(len(bottlenecks)))
	}

	if steps < v.minPathLength {
		result.Issues = append(result.Issues, formatPathTooShort(steps, v.minPathLength))
		result.IsInteresting = false
	}

	available := countAvailableMechanics(g, grapplePoints, bouncePads)
	if available < v.minMechanicsAvailable {
		result.Issues = append(result.Issues, formatTooFewMechanics(available, v.minMechanicsAvailable))
		result.IsInteresting = false
	}

	if result.InterestScore < v.minInterestScore {
		result.Issues = append(result.Issues, formatInterestTooLow(result.InterestScore, v.minInterestScore))
		result.IsInteresting = false
	}

	return result
}

// determineRequiredMechanics reruns BFS five times, each with exactly one
// advanced ability disabled, comparing against a baseline run.
func (v *Validator) determineRequiredMechanics(g *Grid) Mechanics {
	spawn, hasSpawn := findMarker(g, 'P')
	exit, hasExit := findMarker(g, '>')
	if !hasSpawn || !hasExit {
		return 0
	}

	grapplePoints := findAllMarkers(g, '@')
	bouncePads := findAllMarkers(g, '!')

	_, _, baselineFound := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, bouncePads, bfsOptions{})
	if !baselineFound {
		return 0
	}

	var required Mechanics

	if _, _, ok := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, nil, bouncePads, bfsOptions{}); !ok {
		required = required.Set(MoveGrapple)
	}
	if _, _, ok := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, bouncePads, bfsOptions{disableWallJump: true}); !ok {
		required = required.Set(MoveWallJump)
	}
	if _, _, ok := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, nil, bfsOptions{}); !ok {
		required = required.Set(MoveBounce)
	}
	if _, _, ok := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, bouncePads, bfsOptions{disableDive: true}); !ok {
		required = required.Set(MoveDive)
	}
	if _, _, ok := bfsWithMechanicsDisabled(v.caps, g, spawn, exit, grapplePoints, bouncePads, bfsOptions{disableJetBoost: true}); !ok {
		required = required.Set(MoveJetBoost)
	}

	return required
}
