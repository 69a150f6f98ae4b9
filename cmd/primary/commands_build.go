package main

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/primary-theme/primary-vscode/internal/build"
	"github.com/primary-theme/primary-vscode/internal/log"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write both theme files",
	Long:  "Write primary-light.json and primary-dark.json to the output directory, creating it if needed",
	Args:  cobra.NoArgs,
	Run:   runBuild,
}

func runBuild(cmd *cobra.Command, args []string) {
	outDir, _ := cmd.Flags().GetString("out")

	if err := buildThemes(afero.NewOsFs(), outDir, cmd.OutOrStdout()); err != nil {
		log.Fatalf("Error generating themes: %v", err)
	}
}

func buildThemes(fs afero.Fs, outDir string, out io.Writer) error {
	results, err := build.NewBuilder(fs, outDir, out).Run()
	if err != nil {
		return err
	}
	log.Debugf("Generated %d themes in %s", len(results), outDir)
	return nil
}
