package registry

import "strconv"

// Record is one dialog tracked by a Registry.
type Record[C any] struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Content  C        `json:"content"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`
	Visible  bool     `json:"visible"`
}

// Registry is the ordered collection of dialogs in a session.
type Registry[C any] struct {
	records    []Record[C]
	nextID     int
	layout     Layout
	newContent func(ordinal int) C
}

// Option configures a Registry.
type Option[C any] func(*Registry[C])

// WithLayout replaces the reference layout.
func WithLayout[C any](l Layout) Option[C] {
	return func(r *Registry[C]) {
		r.layout = l
	}
}

// WithContent sets the factory used for dialogs created by an AddClick
// gesture. ordinal is the 1-based creation ordinal of the new dialog.
func WithContent[C any](fn func(ordinal int) C) Option[C] {
	return func(r *Registry[C]) {
		r.newContent = fn
	}
}

// New creates an empty registry.
func New[C any](opts ...Option[C]) *Registry[C] {
	r := &Registry[C]{
		nextID: 1,
		layout: DefaultLayout(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the placement configuration.
func (r *Registry[C]) Layout() Layout {
	return r.layout
}

// Add creates a dialog, places it and appends it. An empty title becomes
// "Dialog N" where N is the creation ordinal.
func (r *Registry[C]) Add(title string, content C) Record[C] {
	if title == "" {
		title = "Dialog " + strconv.Itoa(len(r.records)+1)
	}

	rec := Record[C]{
		ID:       r.nextID,
		Title:    title,
		Content:  content,
		Position: r.nextPosition(),
		Size:     r.layout.DefaultSize,
		Visible:  true,
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec
}

func (r *Registry[C]) nextPosition() Position {
	for i := len(r.records) - 1; i >= 0; i-- {
		anchor := r.records[i]
		if r.layout.Anchor == AnchorLastVisible && !anchor.Visible {
			continue
		}
		return r.layout.cascade(anchor.Position, anchor.Size)
	}
	return r.layout.Origin
}

// Close hides the dialog with id. Closing an unknown or already closed
// dialog does nothing.
func (r *Registry[C]) Close(id int) {
	if rec := r.find(id); rec != nil {
		rec.Visible = false
	}
}

// Resize replaces the size of the dialog with id. The size is stored as
// given; clamping is up to the caller.
func (r *Registry[C]) Resize(id int, size Size) {
	if rec := r.find(id); rec != nil {
		rec.Size = size
	}
}

// Move replaces the position of the dialog with id.
func (r *Registry[C]) Move(id int, pos Position) {
	if rec := r.find(id); rec != nil {
		rec.Position = pos
	}
}

// Get returns a copy of the dialog with id.
func (r *Registry[C]) Get(id int) (Record[C], bool) {
	if rec := r.find(id); rec != nil {
		return *rec, true
	}
	return Record[C]{}, false
}

// Has reports whether id was ever created by this registry.
func (r *Registry[C]) Has(id int) bool {
	return r.find(id) != nil
}

// Len returns the number of dialogs ever created, closed ones included.
func (r *Registry[C]) Len() int {
	return len(r.records)
}

// Dialogs returns a snapshot of every record in creation order.
func (r *Registry[C]) Dialogs() []Record[C] {
	out := make([]Record[C], len(r.records))
	copy(out, r.records)
	return out
}

// Visible returns a snapshot of the records still shown, in creation order.
func (r *Registry[C]) Visible() []Record[C] {
	out := make([]Record[C], 0, len(r.records))
	for _, rec := range r.records {
		if rec.Visible {
			out = append(out, rec)
		}
	}
	return out
}

// ids are assigned in increasing order, so records are sorted by ID.
func (r *Registry[C]) find(id int) *Record[C] {
	lo, hi := 0, len(r.records)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case r.records[mid].ID == id:
			return &r.records[mid]
		case r.records[mid].ID < id:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil
}
