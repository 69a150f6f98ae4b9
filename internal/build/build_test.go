package build

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

	"github.com/primary-theme/primary-vscode/internal/config"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

func TestRunWritesBothThemes(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	results, err := NewBuilder(fs, "themes", &out).Run()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "✓ Generated primary-light.json\n✓ Generated primary-dark.json\n", out.String())

	tests := []struct {
		file    string
		name    string
		variant vscode.Variant
		focus   string
	}{
		{file: "primary-light.json", name: "Primary Light", variant: vscode.Light, focus: "#2f93c0"},
		{file: "primary-dark.json", name: "Primary Dark", variant: vscode.Dark, focus: "#59bdd8"},
	}

	for i, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("themes", tt.file)
			assert.Equal(t, path, results[i].Path)

			data, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Equal(t, len(data), results[i].Size)
			assert.True(t, strings.HasSuffix(string(data), "}\n"))

			var theme vscode.Theme
			require.NoError(t, json.Unmarshal(data, &theme))
			assert.Equal(t, tt.name, theme.Name)
			assert.Equal(t, tt.variant, theme.Type)
			assert.Equal(t, tt.focus, theme.Colors.Value("focusBorder"))
			assert.Equal(t, vscode.SurfaceKeys(), theme.Colors.Keys())
		})
	}
}

func TestRunCreatesNestedDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("build", "out", "themes")

	_, err := NewBuilder(fs, dir, nil).Run()
	require.NoError(t, err)

	ok, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunLeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewBuilder(fs, "themes", nil).Run()
	require.NoError(t, err)

	entries, err := afero.ReadDir(fs, "themes")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"primary-light.json", "primary-dark.json"}, names)
}

func TestRunOverwritesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("themes", "primary-dark.json")
	require.NoError(t, afero.WriteFile(fs, path, []byte("stale"), 0o600))

	_, err := NewBuilder(fs, "themes", nil).Run()
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
	assert.Contains(t, string(data), `"name": "Primary Dark"`)
}

func TestRunIsByteStable(t *testing.T) {
	first := afero.NewMemMapFs()
	second := afero.NewMemMapFs()
	_, err := NewBuilder(first, "themes", nil).Run()
	require.NoError(t, err)
	_, err = NewBuilder(second, "themes", nil).Run()
	require.NoError(t, err)

	for _, target := range config.Targets() {
		path := filepath.Join("themes", target.FileName)
		a, err := afero.ReadFile(first, path)
		require.NoError(t, err)
		b, err := afero.ReadFile(second, path)
		require.NoError(t, err)
		assert.Equal(t, a, b, target.FileName)
	}
}

func TestRunReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	var out bytes.Buffer

	results, err := NewBuilder(fs, "themes", &out).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory themes")
	assert.Empty(t, results)
	assert.Empty(t, out.String())
}

type noCreateFs struct {
	afero.Fs
}

func (f noCreateFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&os.O_CREATE != 0 {
		return nil, os.ErrPermission
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestRunUnwritableDirectory(t *testing.T) {
	fs := noCreateFs{afero.NewMemMapFs()}
	var out bytes.Buffer

	results, err := NewBuilder(fs, "themes", &out).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "primary-light.json")
	assert.Empty(t, results)
	assert.Empty(t, out.String())
}

func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder(afero.NewMemMapFs(), "", nil)
	assert.Equal(t, config.DefaultOutputDir, b.OutputDir)
	assert.NotNil(t, b.Out)
}

func TestMarshalIndentsTwoSpaces(t *testing.T) {
	target, ok := config.TargetFor(vscode.Light)
	require.True(t, ok)

	b := NewBuilder(afero.NewMemMapFs(), "themes", nil)
	require.NoError(t, b.Fs.MkdirAll("themes", 0o755))
	res, err := b.Generate(target)
	require.NoError(t, err)

	data, err := afero.ReadFile(b.Fs, res.Path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Equal(t, "{", lines[0])
	assert.Equal(t, `  "$schema": "vscode://schemas/color-theme",`, lines[1])
	assert.Equal(t, `  "name": "Primary Light",`, lines[2])
	assert.Equal(t, `  "type": "light",`, lines[3])
	assert.Equal(t, `  "colors": {`, lines[4])
	assert.Equal(t, `    "focusBorder": "#2f93c0",`, lines[5])
}
