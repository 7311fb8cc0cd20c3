// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	InfoStyle          lipgloss.Style

	// Header and footer.
	HeaderStyle     lipgloss.Style
	FooterTextStyle lipgloss.Style
	FooterLinkStyle lipgloss.Style

	// Accordion tabs.
	TabStyle         lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabFocusedStyle  lipgloss.Style
	TabDisabledStyle lipgloss.Style

	// Expanded panel.
	PanelStyle        lipgloss.Style
	PanelHeadingStyle lipgloss.Style
	PanelTextStyle    lipgloss.Style
	PanelCoverStyle   lipgloss.Style

	// Detail view.
	BreadcrumbStyle       lipgloss.Style
	BreadcrumbActiveStyle lipgloss.Style
	DetailTitleStyle      lipgloss.Style
	DetailAuthorStyle     lipgloss.Style
	NotesBorderStyle      lipgloss.Style

	// Shared text.
	TextMutedStyle          lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	StatusLockedStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Accent)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(1, 4)
	FooterTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Align(lipgloss.Center)
	FooterLinkStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Underline(true)

	TabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Background)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Surface).
		Bold(true)
	TabFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Background).
		Bold(true)
	TabDisabledStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Background)

	PanelStyle = lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Foreground)
	PanelHeadingStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	PanelTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	PanelCoverStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Foreground(p.Muted).
		Align(lipgloss.Center, lipgloss.Center)

	BreadcrumbStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	BreadcrumbActiveStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Underline(true)
	DetailTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DetailAuthorStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	NotesBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextForegroundBoldStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	StatusLockedStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Italic(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
