package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/knapviz/reveal"
)

// cellWidth fits three-digit benefits with breathing room.
const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	headerCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	itemLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Width(12)

	baseCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(cellWidth).
			Align(lipgloss.Center)

	hiddenCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")).
			Width(cellWidth).
			Align(lipgloss.Center)

	activeCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("33")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	pathCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("58")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	tookCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Width(cellWidth).
			Align(lipgloss.Center)

	normalCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(cellWidth).
			Align(lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	progressLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// cellStyle maps a classification to its render style.
func cellStyle(class reveal.Class) lipgloss.Style {
	switch class {
	case reveal.Base:
		return baseCellStyle
	case reveal.Hidden:
		return hiddenCellStyle
	case reveal.Active:
		return activeCellStyle
	case reveal.OnPath:
		return pathCellStyle
	case reveal.Took:
		return tookCellStyle
	default:
		return normalCellStyle
	}
}
