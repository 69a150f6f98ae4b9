// Package build writes the generated theme documents to disk.
package build

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/primary-theme/primary-vscode/internal/config"
	"github.com/primary-theme/primary-vscode/internal/log"
	"github.com/primary-theme/primary-vscode/internal/palette"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result records one written theme file.
type Result struct {
	Target config.Target
	Path   string
	Size   int
}

type Builder struct {
	Fs        afero.Fs
	OutputDir string
	Out       io.Writer
}

func NewBuilder(fs afero.Fs, outputDir string, out io.Writer) *Builder {
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}
	if out == nil {
		out = io.Discard
	}
	return &Builder{Fs: fs, OutputDir: outputDir, Out: out}
}

// Run writes every configured target and prints one confirmation line per
// file. The first failure stops the build.
func (b *Builder) Run() ([]Result, error) {
	log.Debugf("Ensuring output directory %s", b.OutputDir)
	if err := b.Fs.MkdirAll(b.OutputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", b.OutputDir, err)
	}

	targets := config.Targets()
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		res, err := b.Generate(target)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		fmt.Fprintf(b.Out, "✓ Generated %s\n", target.FileName)
	}
	return results, nil
}

// Generate composes and writes a single target.
func (b *Builder) Generate(target config.Target) (Result, error) {
	theme, err := vscode.Compose(palette.ForVariant(target.Variant.IsLight()), target.Variant, target.DisplayName)
	if err != nil {
		return Result{}, err
	}

	data, err := Marshal(theme)
	if err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", target.FileName, err)
	}

	path := filepath.Join(b.OutputDir, target.FileName)
	if err := writeFileAtomic(b.Fs, path, data); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}
	log.Debugf("Wrote %s (%d bytes, %d colors, %d token rules)", path, len(data), theme.Colors.Len(), len(theme.TokenColors))

	return Result{Target: target, Path: path, Size: len(data)}, nil
}

// Marshal encodes a theme the way it is stored on disk.
func Marshal(theme vscode.Theme) ([]byte, error) {
	data, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
