package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table cells are measured in terminal columns, not bytes.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func textWidth(s string) int {
	return cells.StringWidth(s)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// padRight pads s with spaces up to w columns.
func padRight(s string, w int) string {
	return s + spaces(w-textWidth(s))
}

// padLeft right-aligns s in w columns.
func padLeft(s string, w int) string {
	return spaces(w-textWidth(s)) + s
}

// fitRight pads or cuts s to exactly w columns, keeping the head.
func fitRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if textWidth(s) > w {
		return cells.Truncate(s, w, "")
	}
	return padRight(s, w)
}

// fitLeft right-aligns s in exactly w columns, cutting the tail if needed.
func fitLeft(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if textWidth(s) > w {
		return cells.Truncate(s, w, "")
	}
	return padLeft(s, w)
}

// splitZeros separates the leading zero and space fill of an address from
// its significant digits. The last character always stays significant.
func splitZeros(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	i := 0
	for i < len(s)-1 && (s[i] == '0' || s[i] == ' ') {
		i++
	}
	return s[:i], s[i:]
}
