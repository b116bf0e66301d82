package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#87CEEB")
	Accent     = lipgloss.Color("#FFD1DC")
	Success    = lipgloss.Color("#C3E88D")
	Error      = lipgloss.Color("#F07178")
	Muted      = lipgloss.Color("#8A7F8D")
	Surface    = lipgloss.Color("#3A2E39")
	Foreground = lipgloss.Color("#FFF5F8")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Line confirming the current pick
	ChosenStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// Card style
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Card under the cursor
	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	// Card holding the persisted pick
	ChosenCardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Success).
			Padding(0, 1)

	// Summary panel on the preview step
	PanelStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Accent).
			Padding(1, 2)

	// Call to action button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Surface).
			Background(Primary).
			Bold(true).
			Padding(0, 3)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(Surface).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// SwatchStyle paints a block in the given hex color, for inline color chips.
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}
