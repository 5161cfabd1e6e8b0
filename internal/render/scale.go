package render

import (
	"math"
	"strconv"
	"strings"
)

const (
	fullBlock  = "█"
	emptyBlock = "▏"

	scaleWidthUnits = 3
	scaleWidthCats  = 10
)

var partialBlocks = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// scaleBar draws ratio (0..1) of length cells with eighth-block precision.
// The bar is never empty and always spans exactly length columns.
func scaleBar(ratio float64, length int) (bar, fill string) {
	ratio = min(max(ratio, 0), 1)
	n := float64(length) * ratio
	full := int(math.Floor(n))
	bar = strings.Repeat(fullBlock, full)
	if full < length {
		bar += partialBlocks[int(math.Floor((n-float64(full))*8))]
	}
	if bar == "" {
		bar = emptyBlock
	}
	return bar, spaces(length - textWidth(bar))
}

// formatRatio prints ratio as a percentage in at most three digits, using
// a power of ten for anything that would round to zero.
func formatRatio(ratio float64) string {
	v := 100 * ratio
	var s string
	switch {
	case v <= 0:
		s = "0"
	case v < 0.05:
		s = "10" + superscript(strconv.Itoa(int(math.Floor(math.Log10(v)))))
	case v < 9.95:
		s = strconv.FormatFloat(v, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(v, 'f', 0, 64)
	}
	return padLeft(s, 3) + "%"
}

var superscripts = strings.NewReplacer(
	"-", "⁻", "0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

func superscript(s string) string {
	return superscripts.Replace(s)
}
