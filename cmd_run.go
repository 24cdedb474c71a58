package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

func (m *model) runCommand() tea.Cmd {
	c, err := parseCommand(m.ui.command.buf)
	if err != nil {
		logging.Debugf("command: %q rejected: %v", m.ui.command.buf, err)
		return m.notify(noticeWarn, err.Error())
	}

	switch c.name {
	case "add":
		m.apply(registry.Gesture{Kind: registry.AddClick, Title: c.text})
		return nil

	case "close":
		id := c.id
		if id == 0 {
			id = m.selected
		}
		if m.reg.Has(id) && !m.interaction(id).canClose() {
			return m.notify(noticeWarn, "Dialog is locked")
		}
		if !m.apply(registry.Gesture{Kind: registry.CloseClick, ID: id}) {
			return m.notify(noticeWarn, fmt.Sprintf("No dialog %d", id))
		}
		return nil

	case "select":
		if rec, ok := m.reg.Get(c.id); !ok || !rec.Visible {
			return m.notify(noticeWarn, fmt.Sprintf("No open dialog %d", c.id))
		}
		m.selected = c.id
		return nil

	case "move":
		rec, ok := m.reg.Get(c.id)
		if !ok || !rec.Visible {
			return m.notify(noticeWarn, fmt.Sprintf("No open dialog %d", c.id))
		}
		if !m.interaction(c.id).canMove() {
			return m.notify(noticeWarn, "Moving is disabled for this dialog")
		}
		m.apply(registry.Gesture{Kind: registry.DragStop, ID: c.id, Position: registry.Position{X: c.a, Y: c.b}})
		m.selected = c.id
		return nil

	case "resize":
		rec, ok := m.reg.Get(c.id)
		if !ok || !rec.Visible {
			return m.notify(noticeWarn, fmt.Sprintf("No open dialog %d", c.id))
		}
		if !m.interaction(c.id).canResize() {
			return m.notify(noticeWarn, "Resizing is disabled for this dialog")
		}
		size := m.layout.Clamp(registry.Size{Width: c.a, Height: c.b})
		m.apply(registry.Gesture{Kind: registry.ResizeMove, ID: c.id, Size: size})
		m.selected = c.id
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeDesktop
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil
	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
