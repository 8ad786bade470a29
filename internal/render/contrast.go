package render

import (
	"strconv"
	"strings"
)

// brightnessThreshold above which a background takes dark text
const brightnessThreshold = 186

// IsBright reports whether a "#rrggbb" background is bright enough to need
// dark text. Malformed colors are treated as dark backgrounds.
func IsBright(color string) bool {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return false
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return false
	}

	r := float64(rgb >> 16 & 0xff)
	g := float64(rgb >> 8 & 0xff)
	b := float64(rgb & 0xff)
	return r*0.299+g*0.587+b*0.114 > brightnessThreshold
}

// TextColor returns the text color readable on the given background
func TextColor(background string) string {
	if IsBright(background) {
		return "#000000"
	}
	return "#ffffff"
}
