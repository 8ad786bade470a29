package core

// GroupBy groups items by the derived key. Groups appear in first-occurrence
// order and members keep their original relative order. The input is not modified.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	groups := []Group[K, T]{}
	index := make(map[K]int)

	for _, item := range items {
		k := key(item)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
