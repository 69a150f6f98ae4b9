package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primary-theme/primary-vscode/internal/palette"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

func TestRootCommandWritesThemes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--out", dir})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "✓ Generated primary-light.json\n✓ Generated primary-dark.json\n", out.String())

	for _, name := range []string{"primary-light.json", "primary-dark.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, json.Valid(data), name)
	}
}

func TestBuildThemes(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	require.NoError(t, buildThemes(fs, "themes", &out))
	assert.Equal(t, 2, strings.Count(out.String(), "✓ Generated"))

	ok, err := afero.Exists(fs, filepath.Join("themes", "primary-dark.json"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrintTheme(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTheme(&out, "dark"))

	var theme vscode.Theme
	require.NoError(t, json.Unmarshal(out.Bytes(), &theme))
	assert.Equal(t, "Primary Dark", theme.Name)
	assert.Equal(t, vscode.Dark, theme.Type)
	assert.Equal(t, palette.Dark().Background, theme.Colors.Value("terminal.ansiBlack"))
}

func TestPrintThemeUnknownVariant(t *testing.T) {
	var out bytes.Buffer
	err := printTheme(&out, "sepia")
	assert.ErrorIs(t, err, vscode.ErrUnknownVariant)
	assert.Empty(t, out.String())
}

func TestWritePalette(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writePalette(&out, vscode.Light))

	text := out.String()
	assert.Contains(t, text, "light")
	assert.Contains(t, text, "#2f93c0")
	assert.Contains(t, text, "#d6d2ca50")
	for _, r := range palette.Roles() {
		assert.Contains(t, text, r.String())
	}
}

func TestWriteTerminal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTerminal(&out, "light", "kitty"))
	assert.True(t, strings.HasPrefix(out.String(), "color0   "+palette.Light().BackgroundSecondary+"\n"))

	out.Reset()
	err := writeTerminal(&out, "light", "xterm")
	assert.ErrorIs(t, err, vscode.ErrUnknownFormat)
}
