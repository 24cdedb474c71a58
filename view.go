package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/winman/dialogs"
	"github.com/andareed/winman/registry"
)

const (
	zoneAddButton    = "toolbar:add"
	zoneHeaderPrefix = "panel-header:"
	zoneClosePrefix  = "panel-close:"
	zoneHandlePrefix = "panel-handle:"
)

func headerZoneID(id int) string { return fmt.Sprintf("%s%d", zoneHeaderPrefix, id) }
func closeZoneID(id int) string  { return fmt.Sprintf("%s%d", zoneClosePrefix, id) }
func handleZoneID(id int) string { return fmt.Sprintf("%s%d", zoneHandlePrefix, id) }

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return zone.Scan(dialogs.Place(m.activeDialog.View(), m.terminalWidth, m.terminalHeight))
	}

	w := m.terminalWidth
	desktop := m.renderDesktop(w, m.desktopHeight())
	view := lipgloss.JoinVertical(lipgloss.Left, m.toolbarView(w), desktop, m.footerView(w))
	return zone.Scan(view)
}

func (m *model) desktopHeight() int {
	return max(m.terminalHeight-toolbarHeight-footerHeight, 0)
}

func (m *model) toolbarView(width int) string {
	button := zone.Mark(zoneAddButton, addButtonStyle.Render(" Add Dialog "))
	title := " WinMan - Window Manager "
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(button), 0)
	return toolbarStyle.Render(title + strings.Repeat(" ", gap) + button)
}

// renderDesktop draws visible panels in creation order, so later panels
// cover earlier ones.
func (m *model) renderDesktop(width, height int) string {
	lines := blankLines(width, height)
	for _, rec := range m.reg.Visible() {
		r := m.cell.rectOf(rec.Position, rec.Size)
		lines = placeAt(lines, m.renderPanel(rec, r), r.col, r.row, width)
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderPanel(rec registry.Record[string], r rect) string {
	selected := rec.ID == m.selected
	innerW := r.cols - 2
	innerH := r.rows - 2

	lines := []string{m.renderHeader(rec, innerW, selected)}

	var body []string
	if m.ui.showDebug {
		body = append(body,
			debugStyle.Render(truncate.String("Position: "+rec.Position.String(), uint(innerW))),
			debugStyle.Render(truncate.String("Size: "+rec.Size.String(), uint(innerW))),
		)
	}
	for _, l := range strings.Split(wordwrap.String(rec.Content, innerW), "\n") {
		body = append(body, bodyStyle.Render(truncate.String(l, uint(innerW))))
	}

	room := innerH - 2 // header and handle rows
	if len(body) > room {
		body = body[:max(room, 0)]
	}
	lines = append(lines, body...)
	for len(lines) < innerH-1 {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderHandleRow(rec, innerW))

	style := panelStyle
	if selected {
		style = panelSelectedStyle
	}
	return style.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *model) renderHeader(rec registry.Record[string], width int, selected bool) string {
	flags := m.flagMarkers(rec.ID)
	closeW := lipgloss.Width(closeMarker)
	titleW := max(width-closeW-lipgloss.Width(flags)-1, 1)

	title := truncate.StringWithTail(rec.Title, uint(titleW), "…")
	title += strings.Repeat(" ", max(titleW-lipgloss.Width(title), 0))

	style := headerStyle
	if selected {
		style = headerSelectedStyle
	}
	return zone.Mark(headerZoneID(rec.ID), style.Render(title+flags+" ")) +
		zone.Mark(closeZoneID(rec.ID), closeButtonStyle.Render(closeMarker))
}

func (m *model) flagMarkers(id int) string {
	in := m.interaction(id)
	var b strings.Builder
	if in.locked {
		b.WriteString(lockMarker)
	}
	if in.moveDisabled {
		b.WriteString(pinMarker)
	}
	if in.resizeDisabled {
		b.WriteString(fixedMarker)
	}
	return b.String()
}

func (m *model) renderHandleRow(rec registry.Record[string], width int) string {
	handle := handleStyle.Render(handleMarker)
	if !m.interaction(rec.ID).canResize() {
		handle = " "
	}
	return strings.Repeat(" ", max(width-1, 0)) + zone.Mark(handleZoneID(rec.ID), handle)
}

// debugInfo is the text copied to the clipboard for a panel.
func debugInfo(rec registry.Record[string]) string {
	return fmt.Sprintf("%s\nPosition: %s\nSize: %s", rec.Title, rec.Position, rec.Size)
}
