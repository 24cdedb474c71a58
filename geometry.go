package main

import "github.com/andareed/winman/registry"

const (
	minPanelCols = 12
	minPanelRows = 4
)

// cellSize is how many registry pixels one terminal cell covers.
type cellSize struct {
	w, h int
}

// rect is a panel's footprint in terminal cells, relative to the desktop.
type rect struct {
	col, row   int
	cols, rows int
}

func (c cellSize) rectOf(pos registry.Position, size registry.Size) rect {
	return rect{
		col:  floorDiv(pos.X, c.w),
		row:  floorDiv(pos.Y, c.h),
		cols: max(size.Width/c.w, minPanelCols),
		rows: max(size.Height/c.h, minPanelRows),
	}
}

func (r rect) contains(col, row int) bool {
	return col >= r.col && col < r.col+r.cols &&
		row >= r.row && row < r.row+r.rows
}

// dragPosition is where a panel lands after the mouse moved from the
// drag's press point to (x, y).
func (c cellSize) dragPosition(d dragState, x, y int) registry.Position {
	return registry.Position{
		X: d.startPos.X + (x-d.mouseX)*c.w,
		Y: d.startPos.Y + (y-d.mouseY)*c.h,
	}
}

// resizeSize is the raw size after the mouse moved from the press point to
// (x, y). Callers snap and clamp it before reporting.
func (c cellSize) resizeSize(d dragState, x, y int) registry.Size {
	return registry.Size{
		Width:  d.startSize.Width + (x-d.mouseX)*c.w,
		Height: d.startSize.Height + (y-d.mouseY)*c.h,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
