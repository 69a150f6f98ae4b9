// Package palette holds the Primary color role-sets for the light and dark
// editor themes.
package palette

import "fmt"

// Palette assigns a concrete color to every Role.
type Palette struct {
	// UI background
	Background          string
	BackgroundAlt       string
	BackgroundSecondary string

	// Foreground/text
	Foreground      string
	ForegroundMuted string
	ForegroundFaint string

	Accent      string
	AccentHover string

	Border      string
	BorderHover string

	// Interactive
	ButtonBackground string
	ButtonForeground string
	ButtonHover      string

	// Status
	Error   string
	Warning string
	Success string
	Info    string

	// Syntax
	Keyword     string
	String      string
	Number      string
	Comment     string
	Function    string
	Variable    string
	Type        string
	Constant    string
	Operator    string
	Punctuation string

	// Editor
	LineHighlight string
	Selection     string
	FindMatch     string
	CursorColor   string
}

func (p *Palette) field(r Role) *string {
	switch r {
	case Background:
		return &p.Background
	case BackgroundAlt:
		return &p.BackgroundAlt
	case BackgroundSecondary:
		return &p.BackgroundSecondary
	case Foreground:
		return &p.Foreground
	case ForegroundMuted:
		return &p.ForegroundMuted
	case ForegroundFaint:
		return &p.ForegroundFaint
	case Accent:
		return &p.Accent
	case AccentHover:
		return &p.AccentHover
	case Border:
		return &p.Border
	case BorderHover:
		return &p.BorderHover
	case ButtonBackground:
		return &p.ButtonBackground
	case ButtonForeground:
		return &p.ButtonForeground
	case ButtonHover:
		return &p.ButtonHover
	case Error:
		return &p.Error
	case Warning:
		return &p.Warning
	case Success:
		return &p.Success
	case Info:
		return &p.Info
	case Keyword:
		return &p.Keyword
	case String:
		return &p.String
	case Number:
		return &p.Number
	case Comment:
		return &p.Comment
	case Function:
		return &p.Function
	case Variable:
		return &p.Variable
	case Type:
		return &p.Type
	case Constant:
		return &p.Constant
	case Operator:
		return &p.Operator
	case Punctuation:
		return &p.Punctuation
	case LineHighlight:
		return &p.LineHighlight
	case Selection:
		return &p.Selection
	case FindMatch:
		return &p.FindMatch
	case CursorColor:
		return &p.CursorColor
	}
	return nil
}

// Color returns the color assigned to r, or "" for an unknown role.
func (p Palette) Color(r Role) string {
	if f := p.field(r); f != nil {
		return *f
	}
	return ""
}

// With returns a copy of p with r set to color. An empty color clears the role.
func (p Palette) With(r Role, color string) Palette {
	if f := p.field(r); f != nil {
		*f = color
	}
	return p
}

// Validate reports the first role that is missing or not a hex color.
func (p Palette) Validate() error {
	for _, r := range Roles() {
		c := p.Color(r)
		if c == "" {
			return fmt.Errorf("%w: role %s is not set", ErrIncompletePalette, r)
		}
		if err := ValidateColor(c); err != nil {
			return fmt.Errorf("role %s: %w", r, err)
		}
	}
	return nil
}

// Light returns the role-set of the light theme.
func Light() Palette {
	c := lightBase
	return Palette{
		Background:          c.Gray20,
		BackgroundAlt:       c.Gray30, // sidebar
		BackgroundSecondary: c.Gray40, // status bar, activity bar

		Foreground:      c.Gray130,
		ForegroundMuted: c.Gray90,
		ForegroundFaint: c.Gray70,

		Accent:      c.Blue20,
		AccentHover: c.Blue30,

		Border:      c.Gray60,
		BorderHover: c.Gray80,

		ButtonBackground: c.Gray40,
		ButtonForeground: c.Gray130,
		ButtonHover:      c.Gray50,

		Error:   c.Red30,
		Warning: c.Orange30,
		Success: c.Green30,
		Info:    c.Blue30,

		Keyword:     c.Yellow30,
		String:      c.Yellow30,
		Number:      c.Red10,
		Comment:     c.Gray80,
		Function:    c.Blue30,
		Variable:    c.Gray130,
		Type:        c.Blue30,
		Constant:    c.Red10,
		Operator:    c.Gray100,
		Punctuation: c.Gray100,

		LineHighlight: c.Gray10,
		Selection:     c.Gray60 + "50",
		FindMatch:     c.Yellow20,
		CursorColor:   c.Gray90,
	}
}

// Dark returns the role-set of the dark theme.
func Dark() Palette {
	c := darkBase
	return Palette{
		Background:          c.Gray100,
		BackgroundAlt:       c.Gray110,
		BackgroundSecondary: c.Gray120,

		Foreground:      c.Gray20,
		ForegroundMuted: c.Gray30,
		ForegroundFaint: c.Gray40,

		Accent:      c.Blue20,
		AccentHover: c.Blue30,

		Border:      c.Gray80,
		BorderHover: c.Gray60, // lighter on hover

		ButtonBackground: c.Gray120,
		ButtonForeground: c.Gray20,
		ButtonHover:      c.Gray110,

		Error:   c.Red30,
		Warning: c.Orange30,
		Success: c.Green30,
		Info:    c.Blue30,

		Keyword:     c.Yellow30,
		String:      c.Yellow30,
		Number:      c.Red10,
		Comment:     c.Gray50,
		Function:    c.Blue30,
		Variable:    c.Gray20,
		Type:        c.Blue30,
		Constant:    c.Red10,
		Operator:    c.Gray40,
		Punctuation: c.Gray40,

		LineHighlight: c.Gray90,
		Selection:     c.Gray60 + "50",
		FindMatch:     c.Yellow20,
		CursorColor:   c.Gray40,
	}
}

// ForVariant picks Light or Dark.
func ForVariant(isLight bool) Palette {
	if isLight {
		return Light()
	}
	return Dark()
}
