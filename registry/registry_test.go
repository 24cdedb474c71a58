package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAdd_EmptyRegistryUsesOrigin(t *testing.T) {
	r := New[string]()

	rec := r.Add("", "body")

	assert.Equal(t, Position{X: DefaultX, Y: DefaultY}, rec.Position)
	assert.Equal(t, Size{Width: DefaultDialogWidth, Height: DefaultDialogHeight}, rec.Size)
	assert.Equal(t, "Dialog 1", rec.Title)
	assert.Equal(t, "body", rec.Content)
	assert.True(t, rec.Visible)
}

func TestAdd_CascadesBelowLast(t *testing.T) {
	r := New[string]()
	first := r.Add("", "")
	r.Move(first.ID, Position{X: 100, Y: 100})
	r.Resize(first.ID, Size{Width: 400, Height: 250})

	next := r.Add("", "")

	assert.Equal(t, Position{X: 100, Y: 360}, next.Position)
}

func TestAdd_CustomOrigin(t *testing.T) {
	l := DefaultLayout()
	l.Origin = Position{X: 100, Y: 100}
	r := New[int](WithLayout[int](l))

	assert.Equal(t, Position{X: 100, Y: 100}, r.Add("", 0).Position)
	assert.Equal(t, Position{X: 100, Y: 310}, r.Add("", 0).Position)
}

func TestAdd_DefaultTitleCountsClosed(t *testing.T) {
	r := New[string]()
	a := r.Add("", "")
	r.Close(a.ID)
	r.Add("custom", "")

	assert.Equal(t, "Dialog 3", r.Add("", "").Title)
}

func TestAdd_TitlesMayCollide(t *testing.T) {
	r := New[string]()
	a := r.Add("Same", "")
	b := r.Add("Same", "")

	assert.Equal(t, a.Title, b.Title)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAdd_ClosedDialogStillAnchors(t *testing.T) {
	r := New[string]()
	r.Add("", "")
	second := r.Add("", "")
	r.Close(second.ID)

	third := r.Add("", "")

	assert.Equal(t, second.Position.Y+second.Size.Height+DefaultGap, third.Position.Y)
}

func TestAdd_AnchorLastVisible(t *testing.T) {
	l := DefaultLayout()
	l.Anchor = AnchorLastVisible
	r := New[string](WithLayout[string](l))

	first := r.Add("", "")
	second := r.Add("", "")
	r.Close(second.ID)

	third := r.Add("", "")
	assert.Equal(t, second.Position, third.Position)

	r.Close(first.ID)
	r.Close(third.ID)
	assert.Equal(t, l.Origin, r.Add("", "").Position)
}

func TestClose_Idempotent(t *testing.T) {
	r := New[string]()
	rec := r.Add("", "")

	r.Close(rec.ID)
	got, ok := r.Get(rec.ID)
	require.True(t, ok)
	assert.False(t, got.Visible)

	r.Close(rec.ID)
	got, _ = r.Get(rec.ID)
	assert.False(t, got.Visible)
	assert.Equal(t, 1, r.Len())
}

func TestUnknownID_NoOp(t *testing.T) {
	r := New[string]()
	r.Add("A", "a")
	r.Add("B", "b")
	before := r.Dialogs()

	r.Close(999)
	r.Resize(999, Size{Width: 1, Height: 1})
	r.Move(999, Position{X: 5, Y: 5})

	assert.Equal(t, before, r.Dialogs())
	_, ok := r.Get(999)
	assert.False(t, ok)
}

func TestResize_Persists(t *testing.T) {
	r := New[string]()
	rec := r.Add("", "")

	r.Resize(rec.ID, Size{Width: 500, Height: 300})

	got, _ := r.Get(rec.ID)
	assert.Equal(t, Size{Width: 500, Height: 300}, got.Size)
}

func TestResize_DoesNotClamp(t *testing.T) {
	r := New[string]()
	rec := r.Add("", "")

	r.Resize(rec.ID, Size{Width: 1, Height: 5000})

	got, _ := r.Get(rec.ID)
	assert.Equal(t, Size{Width: 1, Height: 5000}, got.Size)
}

func TestMove_Persists(t *testing.T) {
	r := New[string]()
	rec := r.Add("", "")

	r.Move(rec.ID, Position{X: -20, Y: 75})

	got, _ := r.Get(rec.ID)
	assert.Equal(t, Position{X: -20, Y: 75}, got.Position)
}

func TestDialogs_IsSnapshot(t *testing.T) {
	r := New[string]()
	rec := r.Add("", "")

	snap := r.Dialogs()
	snap[0].Title = "mutated"

	got, _ := r.Get(rec.ID)
	assert.Equal(t, "Dialog 1", got.Title)
}

func TestVisible_SkipsClosed(t *testing.T) {
	r := New[string]()
	a := r.Add("A", "")
	r.Add("B", "")
	r.Add("C", "")
	r.Close(a.ID)

	vis := r.Visible()
	require.Len(t, vis, 2)
	assert.Equal(t, "B", vis[0].Title)
	assert.Equal(t, "C", vis[1].Title)
}

func TestEndToEndScenario(t *testing.T) {
	r := New[string]()

	rec1 := r.Add("A", "")
	assert.Equal(t, r.Layout().Origin, rec1.Position)
	assert.Equal(t, "A", rec1.Title)

	rec2 := r.Add("B", "")
	assert.Equal(t, Position{X: rec1.Position.X, Y: rec1.Position.Y + rec1.Size.Height + DefaultGap}, rec2.Position)

	r.Close(rec1.ID)
	got1, _ := r.Get(rec1.ID)
	got2, _ := r.Get(rec2.ID)
	assert.False(t, got1.Visible)
	assert.Equal(t, rec2, got2)

	r.Resize(rec2.ID, Size{Width: 450, Height: 220})
	got2, _ = r.Get(rec2.ID)
	assert.Equal(t, Size{Width: 450, Height: 220}, got2.Size)
}

// TestRegistry_Properties drives random operation sequences and checks that
// ids stay unique and creation order is preserved.
func TestRegistry_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New[int]()
		var created []int

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 3).Draw(rt, "op")
			id := rapid.IntRange(0, len(created)+2).Draw(rt, "id")
			switch op {
			case 0:
				created = append(created, r.Add("", i).ID)
			case 1:
				r.Close(id)
			case 2:
				r.Resize(id, Size{
					Width:  rapid.IntRange(1, 1000).Draw(rt, "w"),
					Height: rapid.IntRange(1, 1000).Draw(rt, "h"),
				})
			case 3:
				r.Move(id, Position{
					X: rapid.IntRange(-500, 500).Draw(rt, "x"),
					Y: rapid.IntRange(-500, 500).Draw(rt, "y"),
				})
			}
		}

		recs := r.Dialogs()
		if len(recs) != len(created) {
			rt.Fatalf("len = %d, created %d", len(recs), len(created))
		}
		seen := make(map[int]bool, len(recs))
		for i, rec := range recs {
			if seen[rec.ID] {
				rt.Fatalf("duplicate id %d", rec.ID)
			}
			seen[rec.ID] = true
			if rec.ID != created[i] {
				rt.Fatalf("record %d has id %d, want %d", i, rec.ID, created[i])
			}
		}
	})
}

func TestRegistry_CloseNeverReopens(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New[int]()
		closed := map[int]bool{}
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			rec := r.Add("", i)
			if rapid.Bool().Draw(rt, "close") {
				r.Close(rec.ID)
				closed[rec.ID] = true
			}
			// later operations never reopen
			r.Resize(rec.ID, Size{Width: 300, Height: 300})
			r.Move(rec.ID, Position{X: 1, Y: 1})
		}
		for _, rec := range r.Dialogs() {
			if closed[rec.ID] == rec.Visible {
				rt.Fatalf("record %d visible=%v closed=%v", rec.ID, rec.Visible, closed[rec.ID])
			}
		}
	})
}
