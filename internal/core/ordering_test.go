package core

import (
	"testing"

	"degree_flowchart/pkg"

	"github.com/stretchr/testify/assert"
)

func TestColorOrder_Rank(t *testing.T) {
	order := ColorOrder{"red", "blue"}

	assert.Equal(t, 0, order.Rank("red"))
	assert.Equal(t, 1, order.Rank("blue"))
	assert.Equal(t, 2, order.Rank("green"))
	assert.Equal(t, 0, ColorOrder(nil).Rank("red"))
}

func TestSortByColor(t *testing.T) {
	items := []item{{"blue", 1}, {"red", 2}, {"green", 3}}

	SortByColor(items, ColorOrder{"red", "blue"}, func(i item) string { return i.key })

	assert.Equal(t, []item{{"red", 2}, {"blue", 1}, {"green", 3}}, items)
}

func TestSortByColor_Stable(t *testing.T) {
	items := []item{
		{"green", 1}, {"blue", 2}, {"purple", 3}, {"green", 4}, {"red", 5}, {"blue", 6},
	}

	SortByColor(items, ColorOrder{"red", "blue"}, func(i item) string { return i.key })

	assert.Equal(t, []item{
		{"red", 5}, {"blue", 2}, {"blue", 6}, {"green", 1}, {"purple", 3}, {"green", 4},
	}, items)
}

func TestLegend(t *testing.T) {
	colors := pkg.ColorConfig{
		Colors: map[string]string{
			"Math":     "#f59e0b",
			"Major":    "#3b82f6",
			"Zoology":  "#ec4899",
			"Elective": "#9333ea",
		},
		Order: []string{"Major", "Math"},
	}

	legend := Legend(colors)

	assert.Equal(t, []pkg.LegendEntry{
		{Category: "Major", Color: "#3b82f6"},
		{Category: "Math", Color: "#f59e0b"},
		{Category: "Elective", Color: "#9333ea"},
		{Category: "Zoology", Color: "#ec4899"},
	}, legend)
}

func TestLegend_Empty(t *testing.T) {
	assert.Empty(t, Legend(pkg.ColorConfig{}))
}
