package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.Equal(t, 2, New(2, 1, 10).Value())
	assert.Equal(t, 1, New(0, 1, 10).Value(), "value below min is clamped")
	assert.Equal(t, 10, New(15, 1, 10).Value(), "value above max is clamped")

	swapped := New(5, 10, 1)
	assert.Equal(t, 1, swapped.Min())
	assert.Equal(t, 10, swapped.Max())
}

func TestIncrementDecrement(t *testing.T) {
	c := New(1, 0, 2)

	c = c.Increment()
	assert.Equal(t, 2, c.Value())
	assert.False(t, c.CanIncrement())

	c = c.Increment()
	assert.Equal(t, 2, c.Value(), "increment stops at max")

	c = c.Decrement().Decrement().Decrement()
	assert.Equal(t, 0, c.Value(), "decrement stops at min")
	assert.False(t, c.CanDecrement())
	assert.True(t, c.CanIncrement())
}

func TestValueSemantics(t *testing.T) {
	original := New(3, 0, 5)
	next := original.Increment()

	assert.Equal(t, 3, original.Value())
	assert.Equal(t, 4, next.Value())
}

func TestContainsAndClamp(t *testing.T) {
	c := New(0, 0, 12)

	assert.True(t, c.Contains(0))
	assert.True(t, c.Contains(12))
	assert.False(t, c.Contains(-1))
	assert.False(t, c.Contains(13))

	assert.Equal(t, 0, c.Clamp(-4))
	assert.Equal(t, 12, c.Clamp(40))
	assert.Equal(t, 7, c.Clamp(7))
}
