package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Int64(), b.Int64())
	}
	assert.NotEqual(t, New(1).Int64(), New(2).Int64())
}

func TestFloat64(t *testing.T) {
	next := Float64(7)
	for range 1000 {
		v := next()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSeeds(t *testing.T) {
	seeds := Seeds(99, 4)
	assert.Len(t, seeds, 4)
	assert.Equal(t, seeds, Seeds(99, 4))
	assert.Equal(t, seeds[:2], Seeds(99, 2), "a prefix does not depend on n")
	assert.Empty(t, Seeds(99, 0))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, int64(5), Resolve(5))
	assert.NotZero(t, Resolve(0))
}
