package docinventory_test

import (
	"testing"

	"github.com/fwojciec/docinventory"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := docinventory.NewSet("b", "a", "b")
	s.Add("c")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}

func TestSet_NilSorted(t *testing.T) {
	t.Parallel()

	var s docinventory.Set

	assert.Equal(t, []string{}, s.Sorted())
	assert.False(t, s.Has("a"))
}
