package registry

import "fmt"

// Position is the top-left corner of a dialog.
type Position struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(x: %d, y: %d)", p.X, p.Y)
}

// Size is the outer width and height of a dialog.
type Size struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("(width: %dpx, height: %dpx)", s.Width, s.Height)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
