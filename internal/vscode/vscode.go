// Package vscode composes VS Code color theme documents from a palette.
package vscode

import (
	"errors"
	"fmt"

	"github.com/primary-theme/primary-vscode/internal/palette"
)

const SchemaURL = "vscode://schemas/color-theme"

var (
	ErrUnknownVariant = errors.New("unknown theme variant")
	ErrMissingSurface = errors.New("missing workbench color")
)

// Variant is the VS Code "type" of a theme.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// Variants lists the supported variants, light first.
func Variants() []Variant {
	return []Variant{Light, Dark}
}

func (v Variant) IsLight() bool { return v == Light }

func (v Variant) Valid() bool { return v == Light || v == Dark }

func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q (must be light or dark)", ErrUnknownVariant, s)
	}
	return v, nil
}

type Theme struct {
	Schema      string       `json:"$schema"`
	Name        string       `json:"name"`
	Type        Variant      `json:"type"`
	Colors      ColorMap     `json:"colors"`
	TokenColors []TokenColor `json:"tokenColors"`
}

type TokenColor struct {
	Name     string       `json:"name,omitempty"`
	Scope    []string     `json:"scope"`
	Settings TokenSetting `json:"settings"`
}

type TokenSetting struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Compose builds the theme document for p. The palette is checked before
// anything is resolved, so an incomplete palette never yields a document.
func Compose(p palette.Palette, v Variant, name string) (Theme, error) {
	if !v.Valid() {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	if err := p.Validate(); err != nil {
		return Theme{}, fmt.Errorf("compose %s theme: %w", v, err)
	}

	theme := Theme{
		Schema:      SchemaURL,
		Name:        name,
		Type:        v,
		TokenColors: tokenColors(p),
	}
	for _, s := range surfaces {
		theme.Colors.Set(s.Key, s.Resolve(p, v))
	}

	return theme, nil
}

// MustCompose is Compose for the built-in palettes.
func MustCompose(p palette.Palette, v Variant, name string) Theme {
	theme, err := Compose(p, v, name)
	if err != nil {
		panic(err)
	}
	return theme
}
