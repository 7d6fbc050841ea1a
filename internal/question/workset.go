package question

import (
	"math/rand/v2"
	"time"
)

// Shuffler is the random source used for shuffling, sampling and random
// jumps. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// NewRand returns a deterministic source for seed, or a time-seeded one
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Filter holds the settings that determine the working set.
type Filter struct {
	Category   string
	Mode       Mode
	Shuffle    bool
	SampleSize int // 0 means unrestricted
}

// Sampling reports whether f draws a random sample instead of using the
// whole section. Sampling only applies to quizzes over every section.
func (f Filter) Sampling() bool {
	return f.Mode == ModeQuiz && f.Category == AllCategory && f.SampleSize > 0
}

// DeriveWorkingSet filters records by category, then either samples,
// shuffles, or keeps insertion order. A sample is already in random order
// and is not shuffled again. The input slice is never modified.
func DeriveWorkingSet(records []Record, f Filter, rng Shuffler) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Category == AllCategory || r.Category == f.Category {
			filtered = append(filtered, r)
		}
	}

	if f.Sampling() {
		shuffle(filtered, rng)
		return filtered[:min(f.SampleSize, len(filtered))]
	}

	if f.Shuffle {
		shuffle(filtered, rng)
	}
	return filtered
}

func shuffle(records []Record, rng Shuffler) {
	swap := func(i, j int) { records[i], records[j] = records[j], records[i] }
	if rng == nil {
		rand.Shuffle(len(records), swap)
		return
	}
	rng.Shuffle(len(records), swap)
}
