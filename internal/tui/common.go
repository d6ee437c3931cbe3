package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage of the CLI commands
var (
	// ColorGreen for success notifications
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for formats and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for focus and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for failures
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the focused control or selected row
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleSuccess is for success notifications
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleError is for failure notifications and error states
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleFormat is for the book format column
	StyleFormat = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	// StyleLabel is the right-aligned caption in front of a form field
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(18).
			Align(lipgloss.Right).
			PaddingRight(1)

	// StyleLabelActive is StyleLabel for the focused field
	StyleLabelActive = StyleLabel.
				Foreground(ColorYellow).
				Bold(true)
)

// RenderButton draws a push button, highlighted when focused.
func RenderButton(label string, focused bool) string {
	if focused {
		return StyleHighlight.Render("[ " + label + " ]")
	}
	return StyleHelp.Render("[ ") + StyleNormal.Render(label) + StyleHelp.Render(" ]")
}

// RenderLabel draws a form caption, with a marker when its field is focused.
func RenderLabel(label string, focused bool) string {
	if focused {
		return StyleLabelActive.Render("› " + label)
	}
	return StyleLabel.Render(label)
}
