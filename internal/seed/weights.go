package seed

import (
	"hash/crc32"
	"math"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base weight, if any, is what a mid-tier lifter would move for a working
// set of the exercise, in kilograms. A zero marks a bodyweight movement.
// Slugs missing from the table fall back to defaultBaseWeightKg.
var baseWeightsKg = map[string]float64{
	// Compound movements
	"squat":               80,
	"deadlift":            100,
	"barbell-bench-press": 70,
	"overhead-press":      40,
	"barbell-row":         60,
	"front-squat":         60,
	"romanian-deadlift":   80,

	// Accessory movements
	"incline-bench-press":  50,
	"dumbbell-bench-press": 25,
	"dumbbell-row":         20,
	"lateral-raises":       8,
	"bicep-curls":          12,
	"tricep-dips":          0, // Bodyweight
	"pull-ups":             0,
	"dips":                 0,
	"push-ups":             0,

	// Isolation movements
	"leg-press":        100,
	"leg-curls":        20,
	"leg-extensions":   15,
	"calf-raises":      30,
	"shoulder-press":   25,
	"hammer-curls":     10,
	"tricep-pushdowns": 15,
	"skull-crushers":   12,

	// Bodyweight movements
	"plank":             0,
	"mountain-climbers": 0,
	"burpees":           0,
	"box-jumps":         0,
	"jumping-jacks":     0,
	"high-knees":        0,
	"jumping-squats":    0,
}

const defaultBaseWeightKg = 20

// strengthTier buckets a user into {0, 1, 2} from a CRC-32 (IEEE) checksum
// of the identifier bytes. The checksum is specified, not an implementation
// detail: the tier must come out identical for the same user on every call,
// every run and every client that renders this data model.
func strengthTier(userID primitive.ObjectID) int {
	return int(crc32.ChecksumIEEE(userID[:]) % 3)
}

// tierMultiplier maps a strength tier onto the fraction of the base weight
// the user works with: 0.6, 0.8 or 1.0.
func tierMultiplier(tier int) float64 {
	return 0.6 + 0.2*float64(tier)
}

// syntheticWeight produces a plausible working weight for one set. The same
// user always gets the same tier multiplier; the jitter draw is per set to
// simulate day-to-day variance. Bodyweight movements are always 0 kg.
func syntheticWeight(rng *rand.Rand, slug string, userID primitive.ObjectID) float64 {
	base, ok := baseWeightsKg[slug]
	if !ok {
		base = defaultBaseWeightKg
	}
	if base == 0 {
		return 0
	}

	jitter := 0.8 + rng.Float64()*0.4
	weight := base * tierMultiplier(strengthTier(userID)) * jitter
	return math.Round(weight*10) / 10
}
