package notedown

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so rendered
// pages automatically match any color scheme.
type Theme struct {
	Accent  int // Headings, links
	Muted   int // Code gutters, language labels, URLs
	Success int // Checked to-do items
	Error   int // Error messages
	Quote   int // Quote bars
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent:  5,
		Muted:   8,
		Success: 2,
		Error:   1,
		Quote:   4,
	}
}
