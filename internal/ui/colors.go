package ui

// Color accessors resolve against the active theme so callers pick up
// theme changes (including NO_COLOR) without re-reading configuration.

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorGrey returns the secondary color code.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the info color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
