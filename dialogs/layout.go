package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBG = lipgloss.Color("236")

// Place centers a dialog view over a width x height shaded backdrop.
func Place(view string, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		view,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(overlayBG),
	)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(overlayBG).
		Padding(1, 2).
		Width(60)
}
