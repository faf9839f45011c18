package tuple

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	t.Parallel()

	pair := NewPair("hello", "world")

	first, second := pair.Values()
	assert.Equal(t, "hello", first)
	assert.Equal(t, "world", second)
	assert.Equal(t, NewPair("world", "hello"), pair.Swap())
	assert.Equal(t, pair, pair.Swap().Swap())
}

func TestTriple(t *testing.T) {
	t.Parallel()

	triple := NewTriple(1, 2, 3)

	a, b, c := triple.Values()
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, c)
}

func TestSortBiggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       int
		wantFirst  int
		wantSecond int
	}{
		{"already sorted", 20, 10, 20, 10},
		{"needs swap", 10, 20, 20, 10},
		{"equal", 5, 5, 5, 5},
		{"negatives", -3, -1, -1, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, second := SortBiggest(tt.a, tt.b)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantSecond, second)
		})
	}
}

func TestSortSmallest(t *testing.T) {
	t.Parallel()

	first, second := SortSmallest(10, 11)
	assert.Equal(t, 10, first)
	assert.Equal(t, 11, second)

	first, second = SortSmallest(11, 10)
	assert.Equal(t, 10, first)
	assert.Equal(t, 11, second)

	s1, s2 := SortSmallest("world", "hello")
	assert.Equal(t, "hello", s1)
	assert.Equal(t, "world", s2)
}

type item struct {
	key   int
	label string
}

func compareItems(a, b item) int {
	return a.key - b.key
}

func TestFuncVariantsTies(t *testing.T) {
	t.Parallel()

	a := item{key: 1, label: "a"}
	b := item{key: 1, label: "b"}

	// SortBiggest only keeps order when strictly greater.
	first, second := SortBiggestFunc(a, b, compareItems)
	assert.Equal(t, "b", first.label)
	assert.Equal(t, "a", second.label)

	first, second = SortSmallestFunc(a, b, compareItems)
	assert.Equal(t, "a", first.label)
	assert.Equal(t, "b", second.label)

	assert.Equal(t, NewPair(a, b), MinMaxFunc(NewPair(a, b), compareItems))
	assert.Equal(t, NewPair(a, b), MaxMinFunc(NewPair(a, b), compareItems))
}

func TestMinMaxAndMaxMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewPair(10, 20), MinMax(NewPair(20, 10)))
	assert.Equal(t, NewPair(10, 20), MinMax(NewPair(10, 20)))
	assert.Equal(t, NewPair(2, 1), MaxMin(NewPair(1, 2)))
	assert.Equal(t, NewPair(2, 1), MaxMin(NewPair(2, 1)))
}

func TestMinMaxProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	for range 500 {
		a, b := rng.IntN(100)-50, rng.IntN(100)-50

		asc := MinMax(NewPair(a, b))
		desc := MaxMin(NewPair(a, b))

		assert.LessOrEqual(t, asc.First, asc.Second)
		assert.GreaterOrEqual(t, desc.First, desc.Second)
		assert.ElementsMatch(t, []int{a, b}, []int{asc.First, asc.Second})
		assert.ElementsMatch(t, []int{a, b}, []int{desc.First, desc.Second})
	}
}

func TestSortNatural(t *testing.T) {
	t.Parallel()

	first, second := SortNatural("x10", "x9")
	assert.Equal(t, "x9", first)
	assert.Equal(t, "x10", second)

	// Plain lexical order would get this one wrong.
	lexFirst, _ := SortSmallest("x10", "x9")
	assert.True(t, strings.HasSuffix(lexFirst, "10"))

	first, second = SortNatural("a", "b")
	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)

	first, second = SortNatural("same", "same")
	assert.Equal(t, "same", first)
	assert.Equal(t, "same", second)
}
