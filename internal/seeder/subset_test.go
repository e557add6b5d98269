package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSubsetProperties(t *testing.T) {
	g := NewDataGenerator(7)

	for n := 1; n <= 12; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = i * 10
		}
		original := append([]int(nil), input...)

		for trial := 0; trial < 200; trial++ {
			got := PickSubset(g, input)
			require.NotEmpty(t, got)
			require.LessOrEqual(t, len(got), n)

			seen := make(map[int]bool)
			for _, v := range got {
				assert.False(t, seen[v], "duplicate %d", v)
				seen[v] = true
				assert.Contains(t, input, v)
			}
		}
		assert.Equal(t, original, input, "input must not be mutated")
	}
}

func TestPickSubsetCoversAllLengths(t *testing.T) {
	g := NewDataGenerator(11)
	input := []string{"a", "b", "c", "d"}
	lengths := make(map[int]bool)
	for i := 0; i < 500; i++ {
		lengths[len(PickSubset(g, input))] = true
	}
	for n := 1; n <= len(input); n++ {
		assert.True(t, lengths[n], "length %d never drawn", n)
	}
}

func TestPickSubsetEmpty(t *testing.T) {
	assert.Nil(t, PickSubset(NewDataGenerator(1), []int{}))
}

func TestPickSubsetMax(t *testing.T) {
	g := NewDataGenerator(3)
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 200; i++ {
		got := PickSubsetMax(g, input, 3)
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 3)
	}
	assert.Nil(t, PickSubsetMax(g, input, 0))
}

func TestShuffleIsPermutation(t *testing.T) {
	g := NewDataGenerator(5)
	input := []int{1, 2, 3, 4, 5}
	got := Shuffle(g, input)
	assert.ElementsMatch(t, input, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, input)
}

func TestDependentDateFutureAnchor(t *testing.T) {
	g := NewDataGenerator(9)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	anchors := []time.Time{
		now.Add(time.Nanosecond),
		now.Add(time.Second),
		now.Add(time.Hour),
		now.AddDate(0, 0, 30),
		now.AddDate(2, 0, 0),
	}
	for _, anchor := range anchors {
		for i := 0; i < 200; i++ {
			d := DependentDate(g, anchor, now)
			assert.False(t, d.Before(now), "date %s before now", d)
			assert.True(t, d.Before(anchor), "date %s not before anchor %s", d, anchor)
		}
	}
}

func TestDependentDatePastAnchor(t *testing.T) {
	g := NewDataGenerator(13)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, anchor := range []time.Time{now, now.AddDate(0, -1, 0), now.AddDate(-3, 0, 0)} {
		for i := 0; i < 100; i++ {
			d := DependentDate(g, anchor, now)
			assert.True(t, d.Before(now))
			assert.True(t, d.After(now.AddDate(0, 0, -367)))
		}
	}
}

func TestPrice(t *testing.T) {
	g := NewDataGenerator(2)
	for i := 0; i < 100; i++ {
		p := g.Price(10, 20)
		assert.GreaterOrEqual(t, p, 10.0)
		assert.LessOrEqual(t, p, 20.0)
		assert.InDelta(t, p, float64(int(p*100+0.5))/100, 1e-9)
	}
}
