package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/primary-theme/primary-vscode/internal/build"
	"github.com/primary-theme/primary-vscode/internal/config"
	"github.com/primary-theme/primary-vscode/internal/log"
	"github.com/primary-theme/primary-vscode/internal/palette"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

var printCmd = &cobra.Command{
	Use:       "print <light|dark>",
	Short:     "Print one theme as JSON",
	Long:      "Compose a single theme and write it to stdout instead of the output directory",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	Run:       runPrint,
}

func runPrint(cmd *cobra.Command, args []string) {
	if err := printTheme(cmd.OutOrStdout(), args[0]); err != nil {
		log.Fatalf("Error printing theme: %v", err)
	}
}

func printTheme(out io.Writer, variantName string) error {
	theme, err := composeVariant(variantName)
	if err != nil {
		return err
	}

	data, err := build.Marshal(theme)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}

func composeVariant(variantName string) (vscode.Theme, error) {
	variant, err := vscode.ParseVariant(variantName)
	if err != nil {
		return vscode.Theme{}, err
	}
	target, ok := config.TargetFor(variant)
	if !ok {
		return vscode.Theme{}, fmt.Errorf("no build target for %s", variant)
	}
	return vscode.Compose(palette.ForVariant(variant.IsLight()), variant, target.DisplayName)
}
