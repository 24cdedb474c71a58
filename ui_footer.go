package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      string
	ModeInput string

	Selected string

	Anchor string
	Debug  bool

	Open  int
	Total int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	SelectedFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		SelectedFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:          "DESKTOP",
		Anchor:        string(m.layout.Anchor),
		Debug:         m.ui.showDebug,
		Open:          len(m.reg.Visible()),
		Total:         m.reg.Len(),
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        "(? help · a add · : command · q quit)",
	}
	if m.ui.mode == modeCommand {
		st.Mode = "COMMAND"
		st.ModeInput = ":" + m.ui.command.buf
		st.Legend = "enter: run   esc: cancel"
	}
	if rec, ok := m.selectedRecord(); ok {
		st.Selected = fmt.Sprintf("#%d %s", rec.ID, rec.Title)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "DESKTOP"
	}
	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := truncatePlain(fmt.Sprintf(" Panels %d/%d ", st.Open, st.Total), width)
	rightW := runewidth.StringWidth(rightPlain)
	leftW := max(width-rightW, 0)

	pillPlain := truncatePlain(" "+st.Mode+" ", leftW)
	pillW := runewidth.StringWidth(pillPlain)

	flagsPlain := "[" + strings.ToUpper(st.Anchor) + "]"
	if st.Debug {
		flagsPlain += " [DEBUG]"
	}
	flagsPlain = truncatePlain(flagsPlain, max(leftW-pillW-gapW, 0))
	flagsW := runewidth.StringWidth(flagsPlain)

	selW := max(leftW-pillW-flagsW-2*gapW, 0)
	selSeg := renderSelectedSegment(selW, st, styles)

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG)

	left := pill
	used := pillW
	if selW > 0 {
		left += strings.Repeat(" ", gapW) + selSeg
		used += gapW + selW
	}
	if flagsW > 0 {
		left += strings.Repeat(" ", gapW) + applyFG(flagsPlain, styles.DimFG, styles.TextFG)
		used += gapW + flagsW
	}
	if used < leftW {
		left += strings.Repeat(" ", leftW-used)
	}
	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderSelectedSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.Selected)
	if name == "" {
		name = "(no selection)"
	}
	plain := truncatePlain("▸ "+name, colW)
	remaining := colW - runewidth.StringWidth(plain)

	var input string
	if in := strings.TrimSpace(st.ModeInput); in != "" && remaining > 0 {
		input = truncatePlain(" ▸ "+in, remaining)
		remaining -= runewidth.StringWidth(input)
	}
	return applyFG(plain, styles.SelectedFG, styles.TextFG) + input + strings.Repeat(" ", max(remaining, 0))
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(width-runewidth.StringWidth(legendPlain), 0)

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string { return ansiColor(false, c) }
func ansiBg(c lipgloss.Color) string { return ansiColor(true, c) }

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return ""
	}
	return termenv.CSI + termenv.RGBColor(s).Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}
