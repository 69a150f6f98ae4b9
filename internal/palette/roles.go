package palette

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrIncompletePalette = errors.New("incomplete palette")
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnknownRole       = errors.New("unknown role")
)

// Role names one semantic color assignment of a Palette.
type Role int

const (
	Background Role = iota
	BackgroundAlt
	BackgroundSecondary
	Foreground
	ForegroundMuted
	ForegroundFaint
	Accent
	AccentHover
	Border
	BorderHover
	ButtonBackground
	ButtonForeground
	ButtonHover
	Error
	Warning
	Success
	Info
	Keyword
	String
	Number
	Comment
	Function
	Variable
	Type
	Constant
	Operator
	Punctuation
	LineHighlight
	Selection
	FindMatch
	CursorColor

	roleCount
)

var roleNames = [roleCount]string{
	Background:          "background",
	BackgroundAlt:       "backgroundAlt",
	BackgroundSecondary: "backgroundSecondary",
	Foreground:          "foreground",
	ForegroundMuted:     "foregroundMuted",
	ForegroundFaint:     "foregroundFaint",
	Accent:              "accent",
	AccentHover:         "accentHover",
	Border:              "border",
	BorderHover:         "borderHover",
	ButtonBackground:    "buttonBackground",
	ButtonForeground:    "buttonForeground",
	ButtonHover:         "buttonHover",
	Error:               "error",
	Warning:             "warning",
	Success:             "success",
	Info:                "info",
	Keyword:             "keyword",
	String:              "string",
	Number:              "number",
	Comment:             "comment",
	Function:            "function",
	Variable:            "variable",
	Type:                "type",
	Constant:            "constant",
	Operator:            "operator",
	Punctuation:         "punctuation",
	LineHighlight:       "lineHighlight",
	Selection:           "selection",
	FindMatch:           "findMatch",
	CursorColor:         "cursorColor",
}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ParseRole maps a camelCase role name back to its Role.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// ValidateColor accepts #rrggbb and #rrggbbaa.
func ValidateColor(hex string) error {
	switch len(hex) {
	case 7:
	case 9:
		if _, err := strconv.ParseUint(hex[7:], 16, 8); err != nil {
			return fmt.Errorf("%w: bad alpha in %q", ErrInvalidColor, hex)
		}
	default:
		return fmt.Errorf("%w: %q is not #rrggbb or #rrggbbaa", ErrInvalidColor, hex)
	}
	if _, err := colorful.Hex(hex[:7]); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	return nil
}
