package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/random/randomtest"
)

func TestSeededIsReproducible(t *testing.T) {
	a, b := random.NewSeeded(99), random.NewSeeded(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSourcesStayInRange(t *testing.T) {
	for _, src := range []random.Source{random.NewSeeded(1), random.NewCrypto()} {
		for i := 0; i < 200; i++ {
			v := src.Intn(7)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 7)
		}
		assert.Equal(t, 0, src.Intn(0))
		assert.Equal(t, 0, src.Intn(-3))
	}
}

func TestQueue(t *testing.T) {
	q := randomtest.NewQueue(4, 9)
	assert.Equal(t, 4, q.Intn(10))
	assert.Equal(t, 1, q.Intn(4)) // 9 mod 4
	assert.Equal(t, 0, q.Intn(10))
	assert.Equal(t, []int{10, 4, 10}, q.Calls)
}
