package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/winman/clipboard"
	"github.com/andareed/winman/dialogs"
	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

type copiedMsg struct{ err error }

func (m *model) handleDesktopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Add):
		m.apply(registry.Gesture{Kind: registry.AddClick})
		return m, nil
	case key.Matches(msg, k.AddTitled):
		d := dialogs.NewTitleDialog(fmt.Sprintf("Dialog %d", m.reg.Len()+1))
		m.activeDialog = d
		return m, d.Init()
	case key.Matches(msg, k.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(k.Legend())
		return m, nil
	case key.Matches(msg, k.Command):
		m.ui.mode = modeCommand
		m.ui.command = CommandInput{}
		logging.Debug("Entering Mode: Command")
		return m, nil
	case key.Matches(msg, k.Next):
		m.cycleSelection(1)
		return m, nil
	case key.Matches(msg, k.Prev):
		m.cycleSelection(-1)
		return m, nil
	case key.Matches(msg, k.Debug):
		m.ui.showDebug = !m.ui.showDebug
		return m, nil
	}

	rec, ok := m.selectedRecord()
	if !ok {
		return m, nil
	}
	in := m.interaction(rec.ID)

	switch {
	case key.Matches(msg, k.MoveLeft):
		return m, m.nudge(rec, in, -m.cell.w, 0)
	case key.Matches(msg, k.MoveRight):
		return m, m.nudge(rec, in, m.cell.w, 0)
	case key.Matches(msg, k.MoveUp):
		return m, m.nudge(rec, in, 0, -m.cell.h)
	case key.Matches(msg, k.MoveDown):
		return m, m.nudge(rec, in, 0, m.cell.h)
	case key.Matches(msg, k.ShrinkWidth):
		return m, m.grow(rec, in, -m.layout.GridSize, 0)
	case key.Matches(msg, k.GrowWidth):
		return m, m.grow(rec, in, m.layout.GridSize, 0)
	case key.Matches(msg, k.ShrinkHeight):
		return m, m.grow(rec, in, 0, -m.layout.GridSize)
	case key.Matches(msg, k.GrowHeight):
		return m, m.grow(rec, in, 0, m.layout.GridSize)
	case key.Matches(msg, k.Close):
		if !in.canClose() {
			return m, m.notify(noticeWarn, "Dialog is locked")
		}
		m.apply(registry.Gesture{Kind: registry.CloseClick, ID: rec.ID})
		return m, nil
	case key.Matches(msg, k.Lock):
		in.locked = !in.locked
		m.interactions[rec.ID] = in
		return m, m.notify(noticeInfo, toggleText(rec.Title, "locked", "unlocked", in.locked))
	case key.Matches(msg, k.ToggleMove):
		in.moveDisabled = !in.moveDisabled
		m.interactions[rec.ID] = in
		return m, m.notify(noticeInfo, toggleText(rec.Title, "pinned", "movable", in.moveDisabled))
	case key.Matches(msg, k.ToggleResize):
		in.resizeDisabled = !in.resizeDisabled
		m.interactions[rec.ID] = in
		return m, m.notify(noticeInfo, toggleText(rec.Title, "fixed size", "resizable", in.resizeDisabled))
	case key.Matches(msg, k.Copy):
		text := debugInfo(rec)
		return m, func() tea.Msg { return copiedMsg{err: clipboard.Copy(text)} }
	}
	return m, nil
}

// nudge moves a panel by (dx, dy) pixels as a completed drag.
func (m *model) nudge(rec registry.Record[string], in interaction, dx, dy int) tea.Cmd {
	if !in.canMove() {
		return m.notify(noticeWarn, "Moving is disabled for this dialog")
	}
	pos := registry.Position{X: rec.Position.X + dx, Y: rec.Position.Y + dy}
	m.apply(registry.Gesture{Kind: registry.DragStop, ID: rec.ID, Position: pos})
	return nil
}

// grow resizes a panel by (dw, dh) pixels, snapped to the grid and clamped.
func (m *model) grow(rec registry.Record[string], in interaction, dw, dh int) tea.Cmd {
	if !in.canResize() {
		return m.notify(noticeWarn, "Resizing is disabled for this dialog")
	}
	size := m.layout.Snap(registry.Size{Width: rec.Size.Width + dw, Height: rec.Size.Height + dh})
	m.apply(registry.Gesture{Kind: registry.ResizeMove, ID: rec.ID, Size: size})
	return nil
}

func toggleText(title, on, off string, state bool) string {
	if state {
		return title + " " + on
	}
	return title + " " + off
}
