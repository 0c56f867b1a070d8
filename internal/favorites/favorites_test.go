package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleTwiceRestoresMembership(t *testing.T) {
	for _, start := range [][]string{nil, {"aspirin"}} {
		s := New(start...)
		before := s.Contains("aspirin")

		s.Toggle("aspirin")
		assert.NotEqual(t, before, s.Contains("aspirin"))
		s.Toggle("aspirin")
		assert.Equal(t, before, s.Contains("aspirin"))
	}
}

func TestAddKeepsInsertionOrderWithoutDuplicates(t *testing.T) {
	var s Set

	assert.True(t, s.Add("heart"))
	assert.True(t, s.Add("lung"))
	assert.False(t, s.Add("heart"))
	assert.False(t, s.Add("  "))

	assert.Equal(t, []string{"heart", "lung"}, s.List())
	assert.Equal(t, 2, s.Len())
}

func TestRemove(t *testing.T) {
	s := New("heart", "lung", "liver")

	assert.False(t, s.Remove("kidney"))
	assert.Equal(t, []string{"heart", "lung", "liver"}, s.List())

	assert.True(t, s.Remove("lung"))
	assert.Equal(t, []string{"heart", "liver"}, s.List())
	assert.False(t, s.Contains("lung"))
}

func TestListIsACopy(t *testing.T) {
	s := New("heart")
	l := s.List()
	l[0] = "changed"

	assert.Equal(t, []string{"heart"}, s.List())
}
