package synonym

import "math/rand/v2"

// Source draws the index of the synonym to substitute. IntN must return a
// value in [0, n) and may assume n > 0. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(n int) int

// IntN calls fn.
func (fn SourceFunc) IntN(n int) int {
	return fn(n)
}

type processSource struct{}

func (processSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the process-level random source.
func DefaultSource() Source {
	return processSource{}
}

// NewSeeded returns a deterministic source; equal seeds yield equal draws.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
