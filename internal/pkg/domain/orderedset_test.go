package domain

import (
	"testing"

	"github.com/matryer/is"
)

func TestOrderedSetKeepsFirstInsertionOrder(t *testing.T) {
	is := is.New(t)

	s := NewOrderedSet("b", "a")
	is.True(s.Add("c", "a", "b", "d")) // should report that something was added
	is.True(!s.Add("a"))               // should not add a duplicate

	is.Equal(s.Values(), []string{"b", "a", "c", "d"})
	is.Equal(s.Len(), 4)
	is.True(s.Contains("d"))
	is.True(!s.Contains("e"))
}

func TestOrderedSetValuesIsACopy(t *testing.T) {
	is := is.New(t)

	s := NewOrderedSet(1, 2)
	v := s.Values()
	v[0] = 42

	is.Equal(s.Values(), []int{1, 2}) // modifying the returned slice should not affect the set
}
