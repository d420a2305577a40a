package teamdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRand_KnownSequence(t *testing.T) {
	r := NewSeededRand(42)

	assert.Equal(t, 206659.0/233280.0, r.Float64())
	assert.Equal(t, 190736.0/233280.0, r.Float64())
	assert.Equal(t, 223713.0/233280.0, r.Float64())
	assert.Equal(t, 179590.0/233280.0, r.Float64())
}

func TestSeededRand_SameSeedSameStream(t *testing.T) {
	a := NewSeededRand(1710012600000)
	b := NewSeededRand(1710012600000)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeededRand_Range(t *testing.T) {
	for _, seed := range []int64{0, 1, -5, 233279, 233280, 1 << 62} {
		r := NewSeededRand(seed)
		for i := 0; i < 500; i++ {
			v := r.Float64()
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestSeededRand_NegativeSeedWrapsIntoPeriod(t *testing.T) {
	assert.Equal(t, NewSeededRand(233275).Float64(), NewSeededRand(-5).Float64())
}

func TestSeededRand_Intn(t *testing.T) {
	r := NewSeededRand(7)
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for i := 0; i < 500; i++ {
		v := r.Intn(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}
