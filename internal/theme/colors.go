package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "208" // Orange - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Entity status colors
const (
	ColorApproved Color = "2" // Green - approved vehicles, resolved reports
	ColorDisabled Color = "8" // Gray - disabled vehicles
	ColorPending  Color = "3" // Yellow - pending review
)

// Transport mode colors
const (
	ColorAir    Color = "39"  // Blue
	ColorGround Color = "214" // Amber
	ColorMarine Color = "30"  // Teal
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSpinner   Color = "205" // Pink
)
