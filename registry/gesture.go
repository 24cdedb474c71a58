package registry

import "fmt"

// GestureKind identifies a presentation-layer callback.
type GestureKind int

const (
	AddClick GestureKind = iota
	DragMove
	DragStop
	ResizeMove
	CloseClick
)

func (k GestureKind) String() string {
	switch k {
	case AddClick:
		return "add"
	case DragMove:
		return "dragMove"
	case DragStop:
		return "dragStop"
	case ResizeMove:
		return "resize"
	case CloseClick:
		return "close"
	default:
		return "unknown"
	}
}

// ParseGestureKind is the inverse of GestureKind.String.
func ParseGestureKind(s string) (GestureKind, error) {
	for k := AddClick; k <= CloseClick; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q", s)
}

// Gesture is one event reported by a presentation layer. Only the fields
// relevant to Kind are read.
type Gesture struct {
	Kind     GestureKind
	ID       int
	Title    string
	Position Position
	Size     Size
}

// Apply performs the registry operation matching g. It reports whether a
// record was created or targeted; gestures for unknown ids report false
// and change nothing.
func (r *Registry[C]) Apply(g Gesture) bool {
	switch g.Kind {
	case AddClick:
		var content C
		if r.newContent != nil {
			content = r.newContent(len(r.records) + 1)
		}
		r.Add(g.Title, content)
		return true
	case DragMove, DragStop:
		if !r.Has(g.ID) {
			return false
		}
		r.Move(g.ID, g.Position)
		return true
	case ResizeMove:
		if !r.Has(g.ID) {
			return false
		}
		r.Resize(g.ID, g.Size)
		return true
	case CloseClick:
		if !r.Has(g.ID) {
			return false
		}
		r.Close(g.ID)
		return true
	}
	return false
}
