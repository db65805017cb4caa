package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddHasRemove(t *testing.T) {
	assert := assert.New(t)

	s := NewSet[int](1, 2, 3)
	assert.True(s.Has(1))
	assert.Equal(3, s.Len())

	s.Remove(2)
	assert.False(s.Has(2))
	assert.Equal(2, s.Len())
}

func TestSet_UnionDifference(t *testing.T) {
	assert := assert.New(t)

	a := NewSet[int](1, 2, 3)
	b := NewSet[int](2, 3, 4)

	union := a.Union(b)
	assert.Equal(4, union.Len())

	diff := a.Difference(b)
	assert.Equal(1, diff.Len())
	assert.True(diff.Has(1))
}

func TestSet_StringOrderedIsCanonical(t *testing.T) {
	assert := assert.New(t)

	a := NewSet[int](3, 1, 2)
	b := NewSet[int](2, 3, 1)

	assert.Equal(a.StringOrdered(), b.StringOrdered())
}

func TestSet_CopyIsIndependent(t *testing.T) {
	assert := assert.New(t)

	a := NewSet[int](1, 2)
	b := a.Copy()
	b.Add(3)

	assert.Equal(2, a.Len())
	assert.Equal(3, b.Len())
}

func TestSet_Empty(t *testing.T) {
	assert := assert.New(t)

	s := NewSet[string]()
	assert.True(s.Empty())

	s.Add("x")
	assert.False(s.Empty())
}
