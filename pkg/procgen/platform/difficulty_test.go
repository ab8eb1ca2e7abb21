package platform

import "testing"

func TestDifficultyParamsForProgressClampsBounds(t *testing.T) {
	low := DifficultyParamsForProgress(-1, PresetCasual)
	zero := DifficultyParamsForProgress(0, PresetCasual)
	if low != zero {
		t.Fatalf("negative progress should clamp to 0: got %+v want %+v", low, zero)
	}

	high := DifficultyParamsForProgress(2, PresetChallenge)
	one := DifficultyParamsForProgress(1, PresetChallenge)
	if high != one {
		t.Fatalf("progress > 1 should clamp to 1: got %+v want %+v", high, one)
	}
}

func TestDifficultyParamsForProgressMaxTierCappedAtFive(t *testing.T) {
	for _, preset := range []DifficultyPreset{PresetCasual, PresetStandard, PresetChallenge} {
		params := DifficultyParamsForProgress(1, preset)
		if params.MaxTier > 5 {
			t.Fatalf("preset %s: MaxTier %d exceeds cap of 5", preset, params.MaxTier)
		}
	}
}

func TestDifficultyParamsForProgressChallengeHarderThanCasual(t *testing.T) {
	casual := DifficultyParamsForProgress(1, PresetCasual)
	challenge := DifficultyParamsForProgress(1, PresetChallenge)

	if challenge.EnemyChance <= casual.EnemyChance {
		t.Errorf("challenge enemy chance %v should exceed casual %v at full progress", challenge.EnemyChance, casual.EnemyChance)
	}
	if challenge.HazardChance <= casual.HazardChance {
		t.Errorf("challenge hazard chance %v should exceed casual %v at full progress", challenge.HazardChance, casual.HazardChance)
	}
	if challenge.MinTier < casual.MinTier {
		t.Errorf("challenge min tier %d should be at least casual's %d", challenge.MinTier, casual.MinTier)
	}
}

func TestApplyDifficultyScalingDeterministic(t *testing.T) {
	lines := []string{"##########", "#P ? % $ ~#", "##########"}
	difficulty := DifficultyParamsForProgress(0.5, PresetStandard)

	a := ApplyDifficultyScaling(lines, difficulty, 777)
	b := ApplyDifficultyScaling(lines, difficulty, 777)

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("line %d diverged across identical seeds: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestApplyDifficultyScalingDifferentSeedsCanDiverge(t *testing.T) {
	lines := []string{"??????????????????????????????"}
	difficulty := DifficultyParamsForProgress(0.5, PresetStandard)

	a := ApplyDifficultyScaling(lines, difficulty, 1)
	b := ApplyDifficultyScaling(lines, difficulty, 2)

	if a[0] == b[0] {
		t.Fatalf("expected differing seeds to produce differing substitution patterns over a long slot run")
	}
}

func TestApplyDifficultyScalingResolvesEverySlot(t *testing.T) {
	lines := []string{"?%$~?%$~?%$~"}
	difficulty := DifficultyParamsForProgress(1, PresetChallenge)

	out := ApplyDifficultyScaling(lines, difficulty, 42)
	for _, ch := range out[0] {
		switch ch {
		case '?', '%', '$', '~':
			t.Fatalf("slot character %q survived scaling in %q", ch, out[0])
		}
	}
}

func TestApplyDifficultyScalingLeavesNonSlotsUntouched(t *testing.T) {
	lines := []string{"#P_>#"}
	difficulty := DifficultyParamsForProgress(0, PresetCasual)

	out := ApplyDifficultyScaling(lines, difficulty, 5)
	if out[0] != lines[0] {
		t.Fatalf("non-slot tiles should pass through unchanged: got %q want %q", out[0], lines[0])
	}
}

func TestRewriteSlotEnemyCanProducePufferfishOrCrab(t *testing.T) {
	difficulty := DifficultyParams{EnemyChance: 1, PufferfishChance: 1}
	rng := NewRng(1)
	if got := rewriteSlot('%', difficulty, rng); got != 'O' {
		t.Errorf("PufferfishChance=1 should always yield 'O', got %q", got)
	}

	difficulty.PufferfishChance = 0
	rng = NewRng(1)
	if got := rewriteSlot('%', difficulty, rng); got != 'C' {
		t.Errorf("PufferfishChance=0 should always yield 'C', got %q", got)
	}
}
