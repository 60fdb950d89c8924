package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	headerColor  = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB3E6"}
	successColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	warningColor = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
)

// Styles
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(successColor)
	WarningStyle = lipgloss.NewStyle().Foreground(warningColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// availableStatuses are the status values rendered as success
var availableStatuses = map[string]bool{
	"available":  true,
	"disponible": true,
}

// Initialize sets the background mode used to resolve adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// StatusStyle picks the style for an equipment status
func StatusStyle(status string) lipgloss.Style {
	if availableStatuses[strings.ToLower(status)] {
		return SuccessStyle
	}
	return WarningStyle
}
