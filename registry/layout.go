package registry

import (
	"errors"
	"fmt"
)

// Anchor selects which existing record a new dialog cascades from.
type Anchor string

const (
	// AnchorLastCreated cascades from the most recently created record,
	// whether or not it is still visible.
	AnchorLastCreated Anchor = "last-created"
	// AnchorLastVisible cascades from the most recently created record that
	// is still visible, falling back to the origin when none is.
	AnchorLastVisible Anchor = "last-visible"
)

// ParseAnchor converts a config value into an Anchor. Empty means
// AnchorLastCreated.
func ParseAnchor(s string) (Anchor, error) {
	switch Anchor(s) {
	case "", AnchorLastCreated:
		return AnchorLastCreated, nil
	case AnchorLastVisible:
		return AnchorLastVisible, nil
	default:
		return "", fmt.Errorf("unknown anchor %q (want %q or %q)", s, AnchorLastCreated, AnchorLastVisible)
	}
}

const (
	DefaultGap          = 10
	DefaultX            = 0
	DefaultY            = 10
	DefaultDialogWidth  = 400
	DefaultDialogHeight = 200
	MinDialogWidth      = 200
	MinDialogHeight     = 100
	MaxDialogWidth      = 800
	MaxDialogHeight     = 600
	ResizeGridSize      = 25
	ResizeHandleSize    = 20
	DialogHeaderHeight  = 30
)

// Layout is the static placement configuration of a Registry.
type Layout struct {
	Gap          int
	Origin       Position
	DefaultSize  Size
	MinSize      Size
	MaxSize      Size
	GridSize     int
	HandleSize   int
	HeaderHeight int
	Anchor       Anchor
}

// DefaultLayout returns the reference constants.
func DefaultLayout() Layout {
	return Layout{
		Gap:          DefaultGap,
		Origin:       Position{X: DefaultX, Y: DefaultY},
		DefaultSize:  Size{Width: DefaultDialogWidth, Height: DefaultDialogHeight},
		MinSize:      Size{Width: MinDialogWidth, Height: MinDialogHeight},
		MaxSize:      Size{Width: MaxDialogWidth, Height: MaxDialogHeight},
		GridSize:     ResizeGridSize,
		HandleSize:   ResizeHandleSize,
		HeaderHeight: DialogHeaderHeight,
		Anchor:       AnchorLastCreated,
	}
}

// Validate checks the layout for values no presentation layer can honor.
func (l Layout) Validate() error {
	var errs []error
	if l.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %d", l.Gap))
	}
	if l.GridSize < 0 {
		errs = append(errs, fmt.Errorf("grid size must not be negative, got %d", l.GridSize))
	}
	for name, s := range map[string]Size{"default": l.DefaultSize, "min": l.MinSize, "max": l.MaxSize} {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive, got %dx%d", name, s.Width, s.Height))
		}
	}
	if l.MinSize.Width > l.MaxSize.Width || l.MinSize.Height > l.MaxSize.Height {
		errs = append(errs, fmt.Errorf("min size %dx%d exceeds max size %dx%d",
			l.MinSize.Width, l.MinSize.Height, l.MaxSize.Width, l.MaxSize.Height))
	}
	if _, err := ParseAnchor(string(l.Anchor)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Clamp limits s to [MinSize, MaxSize] on each axis.
func (l Layout) Clamp(s Size) Size {
	return Size{
		Width:  clampInt(s.Width, l.MinSize.Width, l.MaxSize.Width),
		Height: clampInt(s.Height, l.MinSize.Height, l.MaxSize.Height),
	}
}

// Snap rounds s to the nearest multiple of GridSize, then clamps it.
func (l Layout) Snap(s Size) Size {
	if l.GridSize > 1 {
		s.Width = snapInt(s.Width, l.GridSize)
		s.Height = snapInt(s.Height, l.GridSize)
	}
	return l.Clamp(s)
}

func snapInt(v, grid int) int {
	if v < 0 {
		return -snapInt(-v, grid)
	}
	return (v + grid/2) / grid * grid
}

// cascade returns where a dialog goes when placed below a frame at pos
// with size.
func (l Layout) cascade(pos Position, size Size) Position {
	return Position{X: pos.X, Y: pos.Y + size.Height + l.Gap}
}
