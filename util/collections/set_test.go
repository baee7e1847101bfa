package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet("a", "b", "a")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("c"))

	assert.True(t, set.Add("c"))
	assert.False(t, set.Add("c"))
	assert.Equal(t, 3, set.Len())

	assert.True(t, set.Remove("a"))
	assert.False(t, set.Remove("a"))
	assert.False(t, set.Contains("a"))
	assert.Equal(t, 2, set.Len())
}

func TestSetDifference(t *testing.T) {
	set := NewSet(1, 2, 3, 4)
	difference := set.Difference(NewSet(2, 4, 5))

	assert.Equal(t, NewSet(1, 3), difference)
	assert.Equal(t, 4, set.Len(), "the receiver is left untouched")
}
