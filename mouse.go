package main

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.handlePress(msg)
	case tea.MouseActionMotion:
		m.handleMotion(msg)
	case tea.MouseActionRelease:
		m.handleRelease(msg)
	}
	return m, nil
}

// handlePress hit-tests from the topmost (last created) panel down.
func (m *model) handlePress(msg tea.MouseMsg) tea.Cmd {
	if inZone(zoneAddButton, msg) {
		m.apply(registry.Gesture{Kind: registry.AddClick})
		return nil
	}

	vis := m.reg.Visible()
	for i := len(vis) - 1; i >= 0; i-- {
		rec := vis[i]
		in := m.interaction(rec.ID)

		switch {
		case inZone(closeZoneID(rec.ID), msg):
			m.selected = rec.ID
			if !in.canClose() {
				return m.notify(noticeWarn, "Dialog is locked")
			}
			m.apply(registry.Gesture{Kind: registry.CloseClick, ID: rec.ID})
			return nil
		case inZone(handleZoneID(rec.ID), msg):
			m.selected = rec.ID
			if in.canResize() {
				m.startDrag(dragResize, rec, msg)
			}
			return nil
		case inZone(headerZoneID(rec.ID), msg):
			m.selected = rec.ID
			if in.canMove() {
				m.startDrag(dragMove, rec, msg)
			}
			return nil
		}

		r := m.cell.rectOf(rec.Position, rec.Size)
		if r.contains(msg.X, msg.Y-toolbarHeight) {
			m.selected = rec.ID
			return nil
		}
	}
	return nil
}

func (m *model) startDrag(kind dragKind, rec registry.Record[string], msg tea.MouseMsg) {
	m.ui.drag = dragState{
		kind:      kind,
		id:        rec.ID,
		mouseX:    msg.X,
		mouseY:    msg.Y,
		startPos:  rec.Position,
		startSize: rec.Size,
	}
	logging.Debugf("mouse: start drag kind=%d dialog=%d at %d,%d", kind, rec.ID, msg.X, msg.Y)
}

func (m *model) handleMotion(msg tea.MouseMsg) {
	d := m.ui.drag
	switch d.kind {
	case dragMove:
		m.apply(registry.Gesture{Kind: registry.DragMove, ID: d.id, Position: m.cell.dragPosition(d, msg.X, msg.Y)})
	case dragResize:
		size := m.layout.Snap(m.cell.resizeSize(d, msg.X, msg.Y))
		m.apply(registry.Gesture{Kind: registry.ResizeMove, ID: d.id, Size: size})
	}
}

func (m *model) handleRelease(msg tea.MouseMsg) {
	d := m.ui.drag
	if d.kind == dragMove {
		m.apply(registry.Gesture{Kind: registry.DragStop, ID: d.id, Position: m.cell.dragPosition(d, msg.X, msg.Y)})
	}
	m.ui.drag = dragState{}
}
