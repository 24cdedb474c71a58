package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind string

const (
	noticeInfo    noticeKind = "info"
	noticeSuccess noticeKind = "success"
	noticeWarn    noticeKind = "warn"
	noticeError   noticeKind = "error"
)

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	}
	return ""
}

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon := kind.icon(); icon != "" {
		return icon + " " + msg
	}
	return msg
}

// notify shows msg in the footer until noticeDuration passes or a newer
// notice replaces it.
func (m *model) notify(kind noticeKind, msg string) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind
	m.ui.noticeSeq++
	id := m.ui.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeType = ""
}
