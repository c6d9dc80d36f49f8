package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/couchbase/tools-random/population"
)

func TestChoice(t *testing.T) {
	r := NewSeeded(1)

	t.Run("Slice", func(t *testing.T) {
		elements := []int{1, 2, 3}

		e, err := ChoiceSlice(r, elements)
		require.NoError(t, err)
		require.Contains(t, elements, e)
	})

	t.Run("Runes", func(t *testing.T) {
		e, err := Choice[rune](r, population.RunesOf("héllo"))
		require.NoError(t, err)
		require.Contains(t, []rune("héllo"), e)
	})

	t.Run("Array", func(t *testing.T) {
		e, err := Choice[string](r, population.ArrayOf([]string{"a", "b"}))
		require.NoError(t, err)
		require.Contains(t, []string{"a", "b"}, e)
	})

	t.Run("List", func(t *testing.T) {
		e, err := Choice[int](r, population.NewList(10, 20, 30))
		require.NoError(t, err)
		require.Contains(t, []int{10, 20, 30}, e)
	})

	t.Run("Set", func(t *testing.T) {
		set := population.NewSet("x", "y", "z")

		e, err := Choice[string](r, set)
		require.NoError(t, err)
		require.True(t, set.Contains(e))
	})

	t.Run("OrderedSet", func(t *testing.T) {
		set := population.NewOrderedSet(5, 1, 3)

		e, err := Choice[int](r, set)
		require.NoError(t, err)
		require.True(t, set.Contains(e))
	})

	t.Run("Map", func(t *testing.T) {
		m := population.NewMap(map[string]int{"one": 1, "two": 2})

		e, err := Choice[population.Pair[string, int]](r, m)
		require.NoError(t, err)

		v, ok := m.Get(e.Key)
		require.True(t, ok)
		require.Equal(t, v, e.Value)
	})

	t.Run("OrderedMap", func(t *testing.T) {
		m := population.NewOrderedMap(map[int]string{1: "a", 2: "b", 3: "c"})

		e, err := Choice[population.Pair[int, string]](r, m)
		require.NoError(t, err)

		v, ok := m.Get(e.Key)
		require.True(t, ok)
		require.Equal(t, v, e.Value)
	})
}

func TestChoiceWhenEmpty(t *testing.T) {
	t.Run("Slice", func(t *testing.T) {
		e, err := ChoiceSlice(newScriptedRand(t), []int{})
		require.ErrorIs(t, err, ErrEmptySequence)
		require.Zero(t, e)
	})

	t.Run("List", func(t *testing.T) {
		e, err := Choice[int](newScriptedRand(t), population.NewList[int]())
		require.ErrorIs(t, err, ErrEmptySequence)
		require.Zero(t, e)
	})

	t.Run("Map", func(t *testing.T) {
		e, err := Choice[population.Pair[string, int]](newScriptedRand(t), population.NewMap(map[string]int{}))
		require.ErrorIs(t, err, ErrEmptySequence)
		require.Zero(t, e)
	})
}

func TestChoiceSingleElement(t *testing.T) {
	e, err := ChoiceSlice(NewSeeded(2), []string{"only"})
	require.NoError(t, err)
	require.Equal(t, "only", e)
}

func TestChoiceScripted(t *testing.T) {
	t.Run("Indexable", func(t *testing.T) {
		e, err := ChoiceSlice(newScriptedRand(t, 4), []string{"a", "b", "c"})
		require.NoError(t, err)
		require.Equal(t, "b", e)
	})

	t.Run("SequentialOnly", func(t *testing.T) {
		e, err := Choice[int](newScriptedRand(t, 2), population.NewList(10, 20, 30))
		require.NoError(t, err)
		require.Equal(t, 30, e)
	})

	t.Run("OrderedSet", func(t *testing.T) {
		e, err := Choice[int](newScriptedRand(t, 1), population.NewOrderedSet(5, 1, 3))
		require.NoError(t, err)
		require.Equal(t, 3, e)
	})
}

func TestChoiceCoversPopulation(t *testing.T) {
	var (
		r        = NewSeeded(3)
		elements = []int{1, 2, 3, 4}
		seen     = make(map[int]struct{})
	)

	for i := 0; i < 200; i++ {
		e, err := ChoiceSlice(r, elements)
		require.NoError(t, err)

		seen[e] = struct{}{}
	}

	require.Len(t, seen, len(elements))
}

func TestChoiceUsesDefault(t *testing.T) {
	withDefault(t, NewSeeded(4))

	expected, err := ChoiceSlice(NewSeeded(4), []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	actual, err := ChoiceSlice(nil, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestChoices(t *testing.T) {
	r := NewSeeded(5)

	choices, err := Choices[int](r, population.NewList(7), 10)
	require.NoError(t, err)
	require.Equal(t, []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, choices)

	elements := []string{"a", "b", "c"}

	choices2, err := Choices[string](r, population.Slice[string](elements), 100)
	require.NoError(t, err)
	require.Len(t, choices2, 100)

	for _, c := range choices2 {
		require.Contains(t, elements, c)
	}
}

func TestChoicesScriptedRepeats(t *testing.T) {
	choices, err := Choices[string](newScriptedRand(t, 1, 1, 3), population.NewSet("a"), 3)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a", "a"}, choices)

	choices, err = Choices[string](newScriptedRand(t, 1, 4, 0), population.Slice[string]{"a", "b", "c"}, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "b", "a"}, choices)
}

func TestChoicesErrors(t *testing.T) {
	_, err := Choices[int](newScriptedRand(t), population.Slice[int]{1}, -1)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Choices[int](newScriptedRand(t), population.Slice[int]{}, 1)
	require.ErrorIs(t, err, ErrEmptySequence)

	choices, err := Choices[int](newScriptedRand(t), population.Slice[int]{}, 0)
	require.NoError(t, err)
	require.Empty(t, choices)
}

func TestWeightedChoice(t *testing.T) {
	elements := []WeightedChoiceOption[int]{
		{
			Weight: 1,
			Option: 1,
		},
		{
			Weight: 2,
			Option: 2,
		},
		{
			Weight: 3,
			Option: 3,
		},
	}

	e, err := WeightedChoice(NewSeeded(6), elements)
	require.NoError(t, err)

	found := slices.ContainsFunc(elements, func(o WeightedChoiceOption[int]) bool {
		return o.Option == e
	})

	require.True(t, found)
}

func TestWeightedChoiceScripted(t *testing.T) {
	elements := []WeightedChoiceOption[string]{
		{Weight: 1, Option: "a"},
		{Weight: 0, Option: "never"},
		{Weight: 2, Option: "b"},
		{Weight: 3, Option: "c"},
	}

	type test struct {
		value    uint64
		expected string
	}

	tests := []*test{
		{value: 0, expected: "a"},
		{value: 1, expected: "b"},
		{value: 2, expected: "b"},
		{value: 3, expected: "c"},
		{value: 5, expected: "c"},
		{value: 6, expected: "a"},
	}

	for _, test := range tests {
		e, err := WeightedChoice(newScriptedRand(t, test.value), elements)
		require.NoError(t, err)
		require.Equal(t, test.expected, e)
	}
}

func TestWeightedChoiceLargeWeights(t *testing.T) {
	elements := []WeightedChoiceOption[string]{
		{Weight: 1 << 63, Option: "a"},
		{Weight: 1<<63 - 1, Option: "b"},
	}

	// The total is MaxUint64, modulo draws of 2^63 - 1 and 2^63 fall either side of the boundary.
	e, err := WeightedChoice(newScriptedRand(t, 1<<63-1), elements)
	require.NoError(t, err)
	require.Equal(t, "a", e)

	e, err = WeightedChoice(newScriptedRand(t, 1<<63), elements)
	require.NoError(t, err)
	require.Equal(t, "b", e)
}

func TestWeightedChoiceOverflow(t *testing.T) {
	type test struct {
		name    string
		weights []uint
	}

	tests := []*test{
		{name: "MaxPlusOne", weights: []uint{math.MaxUint, 1}},
		{name: "ManyLarge", weights: []uint{math.MaxUint / 2, math.MaxUint / 2, math.MaxUint / 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			elements := make([]WeightedChoiceOption[int], 0, len(test.weights))
			for i, w := range test.weights {
				elements = append(elements, WeightedChoiceOption[int]{Weight: w, Option: i})
			}

			// No values are scripted, the weights are rejected before drawing.
			e, err := WeightedChoice(newScriptedRand(t), elements)
			require.ErrorIs(t, err, ErrInvalidParameter)
			require.ErrorContains(t, err, "overflows")
			require.Zero(t, e)
		})
	}
}

func TestWeightedChoiceWhenEmpty(t *testing.T) {
	e, err := WeightedChoice(newScriptedRand(t), []WeightedChoiceOption[int]{})
	require.ErrorIs(t, err, ErrEmptySequence)
	require.Zero(t, e)

	e, err = WeightedChoice(newScriptedRand(t), []WeightedChoiceOption[int]{{Weight: 0, Option: 1}})
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Zero(t, e)
}
