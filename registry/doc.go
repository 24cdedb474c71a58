/*
Package registry holds the dialog registry behind the winman desktop.

A Registry owns an ordered list of dialog records. Records are created by Add,
mutated by Move, Resize and Close, and never removed: closing a dialog only
clears its Visible flag. New dialogs cascade below the last record using the
Layout's Gap.

Presentation layers render the records and report user gestures back:

	reg := registry.New[string](registry.WithLayout(registry.DefaultLayout()))
	rec := reg.Add("", "hello")
	reg.Apply(registry.Gesture{Kind: registry.DragStop, ID: rec.ID, Position: registry.Position{X: 40, Y: 60}})

Operations that reference an unknown id do nothing. A Registry is not safe
for concurrent use; callers serialize access the way a UI event loop does.
*/
package registry
