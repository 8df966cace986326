package seed

import (
	"fmt"
	"math/rand"
)

// Coarse category classification by slug. Categories only widen or narrow
// the rep range; anything unlisted gets the default range.
var (
	compoundSlugs = map[string]struct{}{
		"squat":               {},
		"deadlift":            {},
		"barbell-bench-press": {},
		"overhead-press":      {},
		"barbell-row":         {},
	}
	isolationSlugs = map[string]struct{}{
		"bicep-curls":    {},
		"tricep-dips":    {},
		"lateral-raises": {},
		"calf-raises":    {},
	}
	enduranceSlugs = map[string]struct{}{
		"plank":             {},
		"mountain-climbers": {},
		"burpees":           {},
	}
)

// syntheticReps produces a rep count for set setNum of totalSets. Sets in
// the back half of an exercise lose 1-3 reps to fatigue, floored at 1.
func syntheticReps(rng *rand.Rand, slug string, setNum, totalSets int) int {
	var reps int
	switch {
	case contains(compoundSlugs, slug):
		reps = 3 + rng.Intn(6) // [3,8]
	case contains(isolationSlugs, slug):
		reps = 8 + rng.Intn(8) // [8,15]
	case contains(enduranceSlugs, slug):
		reps = 10 + rng.Intn(21) // [10,30], time-based work counted as reps
	default:
		reps = 5 + rng.Intn(8) // [5,12]
	}

	if setNum > totalSets/2 {
		reps -= 1 + rng.Intn(3)
	}
	if reps < 1 {
		reps = 1
	}
	return reps
}

// syntheticRPE draws a recorded effort uniformly among: not recorded, a
// whole value "6.0".."10.0", or a half value "6.5".."9.5".
func syntheticRPE(rng *rand.Rand) *string {
	switch rng.Intn(3) {
	case 0:
		return nil
	case 1:
		v := fmt.Sprintf("%d.0", 6+rng.Intn(5))
		return &v
	default:
		v := fmt.Sprintf("%d.5", 6+rng.Intn(4))
		return &v
	}
}

func contains(set map[string]struct{}, slug string) bool {
	_, ok := set[slug]
	return ok
}
