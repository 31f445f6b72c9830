package util

import "math/rand"

// Source is the part of *rand.Rand the evaluators draw from.
type Source interface {
	Intn(n int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// JobSeed derives the seed of one batch job. It depends only on the job
// index, so a batch is reproducible whichever worker picks the job up.
func JobSeed(base int64, job int) int64 {
	return base + int64(job)*7919
}

// Intn draws from src, or from the global math/rand source when src is nil.
func Intn(src Source, n int) int {
	if src != nil {
		return src.Intn(n)
	}
	return rand.Intn(n)
}
