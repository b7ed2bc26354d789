package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete color scheme for the application
type Theme struct {
	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Background colors
	BgBase     lipgloss.Color
	BgSurface  lipgloss.Color
	BgElevated lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border  lipgloss.Color
	Divider lipgloss.Color

	// Message roles
	RoleUser      lipgloss.Color
	RoleAssistant lipgloss.Color
}

// DarkTheme is the dark mode color scheme
var DarkTheme = Theme{
	Primary:   lipgloss.Color("#FB923C"), // Orange 400
	Secondary: lipgloss.Color("#34D399"), // Emerald 400
	Accent:    lipgloss.Color("#FBBF24"), // Amber 400

	BgBase:     lipgloss.Color("#0B0B0F"),
	BgSurface:  lipgloss.Color("#141419"),
	BgElevated: lipgloss.Color("#1E1E2A"),

	TextPrimary:   lipgloss.Color("#F1F5F9"), // Slate 100
	TextSecondary: lipgloss.Color("#94A3B8"), // Slate 400
	TextMuted:     lipgloss.Color("#64748B"), // Slate 500

	Success: lipgloss.Color("#34D399"),
	Warning: lipgloss.Color("#FBBF24"),
	Error:   lipgloss.Color("#FB7185"),
	Info:    lipgloss.Color("#60A5FA"),

	Border:  lipgloss.Color("#27272A"),
	Divider: lipgloss.Color("#1F2937"),

	RoleUser:      lipgloss.Color("#60A5FA"), // Blue 400
	RoleAssistant: lipgloss.Color("#FB923C"), // Orange 400
}

// LightTheme is the light mode color scheme
var LightTheme = Theme{
	Primary:   lipgloss.Color("#EA580C"), // Orange 600
	Secondary: lipgloss.Color("#059669"), // Emerald 600
	Accent:    lipgloss.Color("#D97706"), // Amber 600

	BgBase:     lipgloss.Color("#FAFAFA"),
	BgSurface:  lipgloss.Color("#FFFFFF"),
	BgElevated: lipgloss.Color("#F4F4F5"),

	TextPrimary:   lipgloss.Color("#18181B"), // Zinc 900
	TextSecondary: lipgloss.Color("#52525B"), // Zinc 600
	TextMuted:     lipgloss.Color("#A1A1AA"), // Zinc 400

	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#3B82F6"),

	Border:  lipgloss.Color("#E4E4E7"),
	Divider: lipgloss.Color("#F4F4F5"),

	RoleUser:      lipgloss.Color("#2563EB"), // Blue 600
	RoleAssistant: lipgloss.Color("#EA580C"), // Orange 600
}

// CurrentTheme holds the active theme
var CurrentTheme = DarkTheme

// ApplyPreference activates the theme named by the stored preference:
// "dark", "light", or "system" (detect from the terminal background).
// Anything unrecognized behaves like "system".
func ApplyPreference(pref string) {
	switch pref {
	case "dark":
		CurrentTheme = DarkTheme
	case "light":
		CurrentTheme = LightTheme
	default:
		if lipgloss.HasDarkBackground() {
			CurrentTheme = DarkTheme
		} else {
			CurrentTheme = LightTheme
		}
	}
	rebuild()
}

// IsDark reports whether the active theme is the dark palette.
func IsDark() bool {
	return CurrentTheme.BgBase == DarkTheme.BgBase
}
