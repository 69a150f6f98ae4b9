package vscode

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrUnknownFormat = errors.New("unknown terminal format")

var ansiKeys = [16]string{
	"terminal.ansiBlack",
	"terminal.ansiRed",
	"terminal.ansiGreen",
	"terminal.ansiYellow",
	"terminal.ansiBlue",
	"terminal.ansiMagenta",
	"terminal.ansiCyan",
	"terminal.ansiWhite",
	"terminal.ansiBrightBlack",
	"terminal.ansiBrightRed",
	"terminal.ansiBrightGreen",
	"terminal.ansiBrightYellow",
	"terminal.ansiBrightBlue",
	"terminal.ansiBrightMagenta",
	"terminal.ansiBrightCyan",
	"terminal.ansiBrightWhite",
}

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// TerminalFormats lists the formats FormatTerminal understands.
func TerminalFormats() []string {
	return []string{"ghostty", "kitty", "foot", "alacritty"}
}

// TerminalPalette pulls the 16 ANSI colors out of a composed theme.
func TerminalPalette(t Theme) ([16]string, error) {
	var colors [16]string
	for i, key := range ansiKeys {
		c, ok := t.Colors.Get(key)
		if !ok || c == "" {
			return colors, fmt.Errorf("%w: %s", ErrMissingSurface, key)
		}
		colors[i] = c
	}
	return colors, nil
}

// FormatTerminal renders the ANSI palette as a terminal config snippet.
func FormatTerminal(colors [16]string, format string) (string, error) {
	format = strings.ToLower(format)
	if !slices.Contains(TerminalFormats(), format) {
		return "", fmt.Errorf("%w: %s (must be one of %s)", ErrUnknownFormat, format, strings.Join(TerminalFormats(), ", "))
	}

	var b strings.Builder
	switch format {
	case "kitty":
		for i, c := range colors {
			fmt.Fprintf(&b, "color%d   %s\n", i, c)
		}
	case "foot":
		for i, c := range colors {
			prefix := "regular"
			if i >= 8 {
				prefix = "bright"
			}
			fmt.Fprintf(&b, "%s%d=%s\n", prefix, i%8, strings.TrimPrefix(c, "#"))
		}
	case "alacritty":
		b.WriteString("[colors.normal]\n")
		for i, name := range ansiNames {
			fmt.Fprintf(&b, "%-7s = '%s'\n", name, colors[i])
		}
		b.WriteString("\n[colors.bright]\n")
		for i, name := range ansiNames {
			fmt.Fprintf(&b, "%-7s = '%s'\n", name, colors[i+8])
		}
	default:
		for i, c := range colors {
			fmt.Fprintf(&b, "palette = %d=%s\n", i, c)
		}
	}
	return b.String(), nil
}
