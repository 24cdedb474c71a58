package main

import "github.com/charmbracelet/lipgloss"

const (
	panelBorderColor         = "240"
	panelSelectedBorderColor = "#ff9f1c"
	panelHeaderBGColor       = "#2b2b2b"
	panelSelectedHeaderBG    = "#3a3a3a"
	panelTextFGColor         = "#c0c0c0"
	toolbarBGColor           = "#000000"
	addButtonBGColor         = "#ff9f1c"
	addButtonFGColor         = "#000000"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(panelBorderColor))
	panelSelectedStyle = panelStyle.
				BorderForeground(lipgloss.Color(panelSelectedBorderColor))

	headerStyle         = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(panelHeaderBGColor))
	headerSelectedStyle = headerStyle.Background(lipgloss.Color(panelSelectedHeaderBG))
	closeButtonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bodyStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color(panelTextFGColor))
	debugStyle          = lipgloss.NewStyle().Faint(true)
	handleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(panelBorderColor))

	toolbarStyle   = lipgloss.NewStyle().Background(lipgloss.Color(toolbarBGColor)).Bold(true)
	addButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(addButtonBGColor)).
			Foreground(lipgloss.Color(addButtonFGColor))

	closeMarker  = "[x]"
	handleMarker = "◢"
	lockMarker   = "⊘"
	pinMarker    = "·" // move disabled
	fixedMarker  = "▫" // resize disabled
)
