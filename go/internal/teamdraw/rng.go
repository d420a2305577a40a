package teamdraw

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRand is the linear-congruential generator behind every draw.
// The same seed always yields the same sequence.
type SeededRand struct {
	state int64
}

// NewSeededRand creates a generator for seed. Any int64 is accepted; the
// seed is reduced modulo the generator period first.
func NewSeededRand(seed int64) *SeededRand {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &SeededRand{state: s}
}

// Float64 advances the generator and returns a value in [0, 1).
func (r *SeededRand) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *SeededRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}
