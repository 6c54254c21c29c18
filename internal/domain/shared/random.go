package shared

// Random is the randomness source of the simulation.
// *rand.Rand from math/rand/v2 satisfies it; tests inject fixed sequences.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// FixedRandom replays a fixed sequence of values, cycling when exhausted
type FixedRandom struct {
	Ints   []int
	Floats []float64
	ii, fi int
}

// IntN returns the next scripted int reduced modulo n
func (f *FixedRandom) IntN(n int) int {
	if len(f.Ints) == 0 || n <= 0 {
		return 0
	}
	v := f.Ints[f.ii%len(f.Ints)]
	f.ii++
	return v % n
}

// Float64 returns the next scripted float in [0, 1)
func (f *FixedRandom) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.fi%len(f.Floats)]
	f.fi++
	return v
}
