package askbook

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The terminal theme determines the actual RGB values, so the widget blends
// into any color scheme; dark and light variants only shift which indices
// are used.
type Theme struct {
	UserMsg int // User turn accent
	Error   int // Connectivity and protocol error entries
	Muted   int // Status bar, launcher hint, sources footer
	Accent  int // Headings and links in answers
	Code    int // Code block gutter
}

// DarkTheme returns the color mapping for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		UserMsg: 12,
		Error:   9,
		Muted:   8,
		Accent:  13,
		Code:    8,
	}
}

// LightTheme returns the color mapping for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		UserMsg: 4,
		Error:   1,
		Muted:   8,
		Accent:  5,
		Code:    8,
	}
}

// DefaultTheme returns the dark mapping.
func DefaultTheme() Theme {
	return DarkTheme()
}

// ThemeFor selects a theme from the ambient background preference. The
// preference is sampled once at startup and injected here as a value so
// tests can substitute either variant.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
