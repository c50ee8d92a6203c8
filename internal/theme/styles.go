package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Entity status styles
var (
	ApprovedStyle = lipgloss.NewStyle().
			Foreground(ColorApproved)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDisabled)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorPending)
)

// Transport mode styles
var (
	AirStyle = lipgloss.NewStyle().
			Foreground(ColorAir)

	GroundStyle = lipgloss.NewStyle().
			Foreground(ColorGround)

	MarineStyle = lipgloss.NewStyle().
			Foreground(ColorMarine)
)
