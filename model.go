package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/winman/config"
	"github.com/andareed/winman/dialogs"
	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

const (
	toolbarHeight = 1
	footerHeight  = 2
)

type model struct {
	reg    *registry.Registry[string]
	layout registry.Layout
	cell   cellSize

	ready          bool
	terminalWidth  int
	terminalHeight int

	selected     int // id of the selected panel, 0 when none
	interactions map[int]interaction

	ui           uiState
	activeDialog dialogs.Dialog
	keys         Keymap
}

// newModel builds the desktop over reg. The registry is owned by the
// caller; the desktop only reports gestures into it.
func newModel(reg *registry.Registry[string], ui config.UIConfig) *model {
	return &model{
		reg:          reg,
		layout:       reg.Layout(),
		cell:         cellSize{w: ui.CellWidth, h: ui.CellHeight},
		interactions: make(map[int]interaction),
		ui:           uiState{mode: modeDesktop, showDebug: ui.ShowDebug},
		keys:         Keys,
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("winman: desktop initialised with %d dialogs", m.reg.Len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m, m.notify(noticeError, msg.err.Error())
		}
		return m, m.notify(noticeSuccess, "Geometry copied")
	case dialogs.TitleConfirmedMsg:
		m.activeDialog = nil
		m.apply(registry.Gesture{Kind: registry.AddClick, Title: msg.Title})
		return m, nil
	case dialogs.TitleCanceledMsg, dialogs.HelpClosedMsg:
		m.activeDialog = nil
		return m, nil
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeDesktop:
		return m.handleDesktopKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}
	return m, nil
}

// apply reports g to the registry and keeps the selection in step.
func (m *model) apply(g registry.Gesture) bool {
	if !m.reg.Apply(g) {
		logging.Debugf("apply: %s for unknown dialog %d ignored", g.Kind, g.ID)
		return false
	}

	switch g.Kind {
	case registry.AddClick:
		recs := m.reg.Dialogs()
		last := recs[len(recs)-1]
		m.selected = last.ID
		logging.Infof("apply: added dialog %d %q at %s", last.ID, last.Title, last.Position)
	case registry.CloseClick:
		delete(m.interactions, g.ID)
		if g.ID == m.selected {
			m.selectLastVisible()
		}
		logging.Infof("apply: closed dialog %d", g.ID)
	default:
		logging.Debugf("apply: %s dialog %d", g.Kind, g.ID)
	}
	return true
}

func (m *model) interaction(id int) interaction {
	return m.interactions[id]
}

func (m *model) selectedRecord() (registry.Record[string], bool) {
	rec, ok := m.reg.Get(m.selected)
	if !ok || !rec.Visible {
		return registry.Record[string]{}, false
	}
	return rec, true
}

func (m *model) selectLastVisible() {
	vis := m.reg.Visible()
	if len(vis) == 0 {
		m.selected = 0
		return
	}
	m.selected = vis[len(vis)-1].ID
}

// cycleSelection moves the selection by step through the visible panels.
func (m *model) cycleSelection(step int) {
	vis := m.reg.Visible()
	if len(vis) == 0 {
		m.selected = 0
		return
	}
	idx := -1
	for i, rec := range vis {
		if rec.ID == m.selected {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.selected = vis[0].ID
		return
	}
	idx = (idx + step + len(vis)) % len(vis)
	m.selected = vis[idx].ID
}
