package core

import (
	"cmp"
	"slices"

	"degree_flowchart/pkg"
)

// ColorOrder is the caller-defined priority of color categories
type ColorOrder []string

// Rank returns the position of key in the order. Unlisted keys rank after
// every listed key.
func (o ColorOrder) Rank(key string) int {
	if i := slices.Index(o, key); i >= 0 {
		return i
	}
	return len(o)
}

// Compare orders two category keys by rank; it is meant for stable sorts
func (o ColorOrder) Compare(a, b string) int {
	return cmp.Compare(o.Rank(a), o.Rank(b))
}

// SortByColor stable-sorts items in place by the rank of their category key
func SortByColor[T any](items []T, order ColorOrder, category func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return order.Compare(category(a), category(b))
	})
}

// Legend returns the (category, color) entries ordered by the color order.
// Categories missing from the order follow in alphabetical order.
func Legend(colors pkg.ColorConfig) []pkg.LegendEntry {
	entries := make([]pkg.LegendEntry, 0, len(colors.Colors))
	for category, color := range colors.Colors {
		entries = append(entries, pkg.LegendEntry{Category: category, Color: color})
	}

	// map iteration order is random; fix a base order before the stable sort
	slices.SortFunc(entries, func(a, b pkg.LegendEntry) int {
		return cmp.Compare(a.Category, b.Category)
	})
	SortByColor(entries, ColorOrder(colors.Order), func(e pkg.LegendEntry) string {
		return e.Category
	})

	return entries
}
