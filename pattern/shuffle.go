// Package pattern produces the random tap order of a game
package pattern

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Generate returns a random permutation of 1..n
// A new source is seeded on every call so consecutive sessions differ
func Generate(n int) []int {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, rand.Uint64()))
	return GenerateWith(n, rng)
}

// GenerateWith shuffles 1..n with the supplied source (Fisher-Yates)
func GenerateWith(n int, rng *rand.Rand) []int {
	p := Identity(n)
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	mustBePermutation(p)
	return p
}

// Identity returns 1..n in order, used where a deterministic order is needed
func Identity(n int) []int {
	if n < 1 {
		panic(fmt.Sprintf("pattern: size must be >= 1, got %d", n))
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i + 1
	}
	return p
}

// Validate reports whether p holds each of 1..len(p) exactly once
func Validate(p []int) bool {
	if len(p) == 0 {
		return false
	}
	seen := make([]bool, len(p)+1)
	for _, v := range p {
		if v < 1 || v > len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func mustBePermutation(p []int) {
	if !Validate(p) {
		panic(fmt.Sprintf("pattern: not a permutation: %v", p))
	}
}
