package platform

import (
	"strings"
	"testing"
)

func linesOf(s string) []string {
	trimmed := strings.Trim(s, "\n")
	return strings.Split(trimmed, "\n")
}

func TestValidatorTrivialCompletability(t *testing.T) {
	v := NewValidatorWithThresholds(DefaultMovementCaps(), 1, 1, 0.0)
	lines := linesOf(`
############
#P        >#
############
`)
	result := v.ValidateDetailed(lines)
	if !result.IsCompletable {
		t.Fatalf("expected completable, issues: %v", result.Issues)
	}
	if result.PathLength < 10 {
		t.Fatalf("expected path length >= 10, got %d", result.PathLength)
	}
	if !result.MechanicsUsed.Has(MoveWalk) {
		t.Fatal("expected walking to be used")
	}
	if result.MechanicsRequired != 0 {
		t.Fatalf("expected no required advanced mechanics, got %v", result.MechanicsRequired)
	}
}

func TestValidatorWallJumpRequirement(t *testing.T) {
	v := NewValidatorWithThresholds(DefaultMovementCaps(), 1, 1, 0.0)
	lines := linesOf(`
###############
#P            #
######   #####
#         #  #
#         #  #
#         # >#
###############
`)
	result := v.ValidateDetailed(lines)
	if !result.IsCompletable {
		t.Fatalf("expected completable, issues: %v", result.Issues)
	}
	if !result.MechanicsRequired.Has(MoveWallJump) {
		t.Fatal("expected wall_jump to be required")
	}
}

func TestValidatorDisconnectedFlood(t *testing.T) {
	v := NewValidator()
	lines := linesOf(`
#######
#P#  >#
#######
`)
	result := v.ValidateDetailed(lines)
	if result.IsCompletable {
		t.Fatal("expected disconnected level to be rejected")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(strings.ToLower(issue), "disconnected") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a disconnected issue, got: %v", result.Issues)
	}
}

func TestValidatorNoSpawn(t *testing.T) {
	v := NewValidator()
	lines := linesOf(`
######
#    >#
######
`)
	result := v.ValidateDetailed(lines)
	if result.IsCompletable {
		t.Fatal("expected missing-spawn rejection")
	}
}

func TestValidatorNoExit(t *testing.T) {
	v := NewValidator()
	lines := linesOf(`
######
#P   #
######
`)
	result := v.ValidateDetailed(lines)
	if result.IsCompletable {
		t.Fatal("expected missing-exit rejection")
	}
}

func TestValidatorEmptyLevel(t *testing.T) {
	v := NewValidator()
	result := v.ValidateDetailed(nil)
	if result.IsCompletable {
		t.Fatal("expected empty level to fail")
	}
	if len(result.Issues) == 0 || result.Issues[0] != "Empty level" {
		t.Fatalf("expected 'Empty level' issue, got %v", result.Issues)
	}
}

func TestValidatorZeroWidth(t *testing.T) {
	v := NewValidator()
	result := v.ValidateDetailed([]string{"", ""})
	if result.IsCompletable {
		t.Fatal("expected zero-width level to fail")
	}
	if len(result.Issues) == 0 || result.Issues[0] != "Zero width level" {
		t.Fatalf("expected 'Zero width level' issue, got %v", result.Issues)
	}
}

func TestValidatorSpawnAboveSpike(t *testing.T) {
	v := NewValidatorWithThresholds(DefaultMovementCaps(), 1, 1, 0.0)
	lines := linesOf(`
#########
#P      #
#^      #
#       #
#      >#
#########
`)
	result := v.ValidateDetailed(lines)
	if !result.IsCompletable {
		t.Fatalf("expected spawn adjustment to find solid ground, issues: %v", result.Issues)
	}
}
