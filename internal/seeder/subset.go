package seeder

// Shuffle returns a Fisher-Yates shuffled copy of items.
func Shuffle[T any](g *DataGenerator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickSubset returns between 1 and len(items) distinct elements of items in
// random order. items is left untouched. An empty input yields nil.
func PickSubset[T any](g *DataGenerator, items []T) []T {
	if len(items) == 0 {
		return nil
	}
	shuffled := Shuffle(g, items)
	return shuffled[:g.IntRange(1, len(shuffled))]
}

// PickSubsetMax is PickSubset with the result capped at max elements.
func PickSubsetMax[T any](g *DataGenerator, items []T, max int) []T {
	if len(items) == 0 || max < 1 {
		return nil
	}
	if max > len(items) {
		max = len(items)
	}
	shuffled := Shuffle(g, items)
	return shuffled[:g.IntRange(1, max)]
}
