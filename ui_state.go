package main

import "github.com/andareed/winman/registry"

type mode int

const (
	modeDesktop mode = iota
	modeCommand
)

type dragKind int

const (
	dragNone dragKind = iota
	dragMove
	dragResize
)

// dragState tracks a mouse gesture between press and release. Mouse
// coordinates are terminal cells; start values are registry pixels.
type dragState struct {
	kind      dragKind
	id        int
	mouseX    int
	mouseY    int
	startPos  registry.Position
	startSize registry.Size
}

type uiState struct {
	mode       mode
	command    CommandInput
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int
	drag       dragState
	showDebug  bool
}

// interaction is per-panel view state. The registry never sees it.
type interaction struct {
	locked         bool
	moveDisabled   bool
	resizeDisabled bool
}

func (i interaction) canMove() bool   { return !i.locked && !i.moveDisabled }
func (i interaction) canResize() bool { return !i.locked && !i.resizeDisabled }
func (i interaction) canClose() bool  { return !i.locked }
