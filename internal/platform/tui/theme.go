package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipeloop/internal/config"
	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

// Theme contains all configurable visual styles for the viewer and browser.
type Theme struct {
	// Grid cell styles
	Loop     lipgloss.Style
	Start    lipgloss.Style
	Seed     lipgloss.Style
	Interior lipgloss.Style
	Exterior lipgloss.Style
	Junk     lipgloss.Style
	Ground   lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDError     lipgloss.Style

	// Browser styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	PanelBorder     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Loop:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		Start:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		Seed:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Interior: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		Exterior: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray
		Junk:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Dim gray
		Ground:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDError:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Loop = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	theme.Seed = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.Interior = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
	theme.Start = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true)
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Loop = lipgloss.NewStyle().Foreground(lipgloss.Color("123"))
	theme.Seed = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	theme.Interior = lipgloss.NewStyle().Foreground(lipgloss.Color("157"))
	theme.Start = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Loop = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Start = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Seed = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Underline(true)
	theme.Interior = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	theme.Junk = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return theme
}

// ThemeByName returns a preset theme. Unknown names give the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "neon":
		return NeonTheme(), true
	case "pastel":
		return PastelTheme(), true
	case "mono":
		return MonochromeTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// ThemeFromConfig builds a theme from a preset name plus per-cell color overrides.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	theme, _ := ThemeByName(tc.Name)
	if tc.Loop != "" {
		theme.Loop = theme.Loop.Foreground(lipgloss.Color(tc.Loop))
	}
	if tc.Start != "" {
		theme.Start = theme.Start.Foreground(lipgloss.Color(tc.Start))
	}
	if tc.Interior != "" {
		theme.Interior = theme.Interior.Foreground(lipgloss.Color(tc.Interior))
	}
	if tc.Junk != "" {
		theme.Junk = theme.Junk.Foreground(lipgloss.Color(tc.Junk))
	}
	return theme
}

// CellStyle returns the style for a cell kind.
func (t Theme) CellStyle(kind core.CellKind) lipgloss.Style {
	switch kind {
	case core.KindLoop:
		return t.Loop
	case core.KindStart:
		return t.Start
	case core.KindSeed:
		return t.Seed
	case core.KindInterior:
		return t.Interior
	case core.KindExterior:
		return t.Exterior
	case core.KindJunk:
		return t.Junk
	default:
		return t.Ground
	}
}
