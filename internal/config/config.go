// Package config holds the fixed build settings of the theme generator.
package config

import "github.com/primary-theme/primary-vscode/internal/vscode"

// DefaultOutputDir is where themes are written, relative to the working directory.
const DefaultOutputDir = "themes"

// Target describes one generated theme file.
type Target struct {
	Variant     vscode.Variant
	DisplayName string
	FileName    string
}

var targets = []Target{
	{Variant: vscode.Light, DisplayName: "Primary Light", FileName: "primary-light.json"},
	{Variant: vscode.Dark, DisplayName: "Primary Dark", FileName: "primary-dark.json"},
}

// Targets returns the theme files produced by a build, light first.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// TargetFor returns the target of variant v.
func TargetFor(v vscode.Variant) (Target, bool) {
	for _, t := range targets {
		if t.Variant == v {
			return t, true
		}
	}
	return Target{}, false
}
