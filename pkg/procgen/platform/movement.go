package platform

import "math"

// MovementCaps are tile-unit budgets for the player's movement
// repertoire. The Validator's reachability graph is entirely defined by
// these values.
type MovementCaps struct {
	JumpHorizontal     int
	JumpVertical       int
	WallJumpHorizontal int
	WallJumpVertical   int
	GrappleRange       int
	BounceVertical     int
	MaxFall            int
	SprintSpeedMult    float64 // carried for external-contract fidelity; unused by the pathfinder
	JetBoostHorizontal int
	JetBoostVertical   int
}

// DefaultMovementCaps returns the defaults for 32-pixel tiles.
func DefaultMovementCaps() MovementCaps {
	return MovementCaps{
		JumpHorizontal:     4,
		JumpVertical:       3,
		WallJumpHorizontal: 3,
		WallJumpVertical:   2,
		GrappleRange:       6,
		BounceVertical:     5,
		MaxFall:            50,
		SprintSpeedMult:    2.0,
		JetBoostHorizontal: 15,
		JetBoostVertical:   8,
	}
}

func ceilDiv(value, divisor float64) int {
	if divisor <= 0 {
		return 0
	}
	return int(math.Ceil(value / divisor))
}

// MovementCapsFromRuntimeConfig derives tile-unit caps from pixel-space
// physics constants: jump apex v^2/(2g), horizontal distance
// v_x * 2*t_apex, then ceiling-divides by tileSize.
func MovementCapsFromRuntimeConfig(
	tileSize, gravity, jumpVelocity, wallJumpVelocity, bounceVelocity,
	moveSpeed, sprintSpeed, grappleRangePx, jetBoostSpeed, jetBoostDuration float64,
) MovementCaps {
	jumpApex := (jumpVelocity * jumpVelocity) / (2 * gravity)
	tApex := jumpVelocity / gravity
	jumpHorizontalPx := moveSpeed * 2 * tApex

	wallJumpApex := (wallJumpVelocity * wallJumpVelocity) / (2 * gravity)
	wallJumpTApex := wallJumpVelocity / gravity
	wallJumpHorizontalPx := moveSpeed * 2 * wallJumpTApex

	bounceApex := (bounceVelocity * bounceVelocity) / (2 * gravity)

	jetBoostHorizontalPx := jetBoostSpeed * jetBoostDuration
	jetBoostVerticalPx := jetBoostSpeed * jetBoostDuration

	sprintMult := 1.0
	if moveSpeed > 0 {
		sprintMult = sprintSpeed / moveSpeed
	}

	return MovementCaps{
		JumpHorizontal:     ceilDiv(jumpHorizontalPx, tileSize),
		JumpVertical:       ceilDiv(jumpApex, tileSize),
		WallJumpHorizontal: ceilDiv(wallJumpHorizontalPx, tileSize),
		WallJumpVertical:   ceilDiv(wallJumpApex, tileSize),
		GrappleRange:       ceilDiv(grappleRangePx, tileSize),
		BounceVertical:     ceilDiv(bounceApex, tileSize),
		MaxFall:            50,
		SprintSpeedMult:    sprintMult,
		JetBoostHorizontal: ceilDiv(jetBoostHorizontalPx, tileSize),
		JetBoostVertical:   ceilDiv(jetBoostVerticalPx, tileSize),
	}
}
