// Package ui renders the harness status board. The palette mirrors the
// classic 16-color terminal scheme so the board reads the same over ssh
// and in local shells.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Section headers and dividers.
	Header = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	Sub    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	Rule   = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	Dim    = lipgloss.NewStyle().Faint(true)
	Bold   = lipgloss.NewStyle().Bold(true)

	// Priority colors.
	PriHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	PriMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	PriLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// Complexity colors.
	SizeS  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	SizeM  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	SizeL  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SizeXL = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// Task status.
	Done = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	Todo = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p string) lipgloss.Style {
	switch p {
	case "high":
		return PriHigh
	case "medium":
		return PriMedium
	case "low":
		return PriLow
	}
	return lipgloss.NewStyle()
}

// SizeStyle returns the style for a complexity rating.
func SizeStyle(c string) lipgloss.Style {
	switch c {
	case "S":
		return SizeS
	case "M":
		return SizeM
	case "L":
		return SizeL
	case "XL":
		return SizeXL
	}
	return lipgloss.NewStyle()
}
