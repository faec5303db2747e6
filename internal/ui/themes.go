package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/SortVis/internal/sorting"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Chrome colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	// Bar colors, one per highlight role
	Unsorted lipgloss.AdaptiveColor
	Compare  lipgloss.AdaptiveColor
	Swap     lipgloss.AdaptiveColor
	Sorted   lipgloss.AdaptiveColor
}

// buildTheme creates a theme from [light, dark] pairs
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, muted, border, unsorted, compare, swap, sorted [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:    lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success:   lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:   lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Unsorted:  lipgloss.AdaptiveColor{Light: unsorted[0], Dark: unsorted[1]},
		Compare:   lipgloss.AdaptiveColor{Light: compare[0], Dark: compare[1]},
		Swap:      lipgloss.AdaptiveColor{Light: swap[0], Dark: swap[1]},
		Sorted:    lipgloss.AdaptiveColor{Light: sorted[0], Dark: sorted[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#6B7280", "#9CA3AF"}, [2]string{"#D1D5DB", "#374151"},
		[2]string{"#374151", "#FFFFFF"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#FF170D", "#FF170D"},
		[2]string{"#00A000", "#00D600"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#666666", "#BBBBBB"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#0000CC", "#00FFFF"}, [2]string{"#CC0000", "#FF0000"},
		[2]string{"#006600", "#00FF00"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#A0AEC0", "#718096"}, [2]string{"#E2E8F0", "#2D3748"},
		[2]string{"#4A5568", "#CBD5E0"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#2F855A", "#68D391"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// RoleColor returns the bar color for a highlight role
func (t *Theme) RoleColor(r sorting.Role) lipgloss.AdaptiveColor {
	switch r {
	case sorting.RoleCompare:
		return t.Compare
	case sorting.RoleSwap:
		return t.Swap
	case sorting.RoleSorted:
		return t.Sorted
	default:
		return t.Unsorted
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Countdown lipgloss.Style
	Status    lipgloss.Style
	Box       lipgloss.Style

	// Bars is indexed by sorting.Role
	Bars [4]lipgloss.Style
}

// GetStyles returns the common styles for the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	s := &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Countdown: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 4),

		Status: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
	for _, r := range []sorting.Role{sorting.RoleUnsorted, sorting.RoleCompare, sorting.RoleSwap, sorting.RoleSorted} {
		s.Bars[r] = lipgloss.NewStyle().Foreground(theme.RoleColor(r))
	}
	return s
}
