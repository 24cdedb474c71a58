package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// blankLines returns height rows of width spaces.
func blankLines(width, height int) []string {
	lines := make([]string, max(height, 0))
	row := strings.Repeat(" ", max(width, 0))
	for i := range lines {
		lines[i] = row
	}
	return lines
}

// placeAt draws fg over bg with its top-left corner at (x, y), clipping to
// width and to the rows of bg. Negative coordinates are pinned to 0.
// ANSI styling on both sides survives the splice.
func placeAt(bg []string, fg string, x, y, width int) []string {
	x = max(x, 0)
	y = max(y, 0)
	if x >= width {
		return bg
	}

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(bg) {
			break
		}
		line = ansi.Truncate(line, width-x, "")
		base := bg[row]

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		var right string
		end := x + ansi.StringWidth(line)
		if end < ansi.StringWidth(base) {
			right = ansi.TruncateLeft(base, end, "")
		}
		bg[row] = left + line + right
	}
	return bg
}
