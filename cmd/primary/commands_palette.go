package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/primary-theme/primary-vscode/internal/log"
	"github.com/primary-theme/primary-vscode/internal/palette"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

var paletteCmd = &cobra.Command{
	Use:       "palette [light|dark]",
	Short:     "Show the color roles",
	Long:      "List every color role with its value and a swatch. Shows both variants when none is given",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	Run:       runPalette,
}

var (
	paletteHeader = lipgloss.NewStyle().Bold(true).MarginTop(1)
	paletteRole   = lipgloss.NewStyle().Width(22)
)

func runPalette(cmd *cobra.Command, args []string) {
	variants := vscode.Variants()
	if len(args) == 1 {
		v, err := vscode.ParseVariant(args[0])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		variants = []vscode.Variant{v}
	}

	for _, v := range variants {
		if err := writePalette(cmd.OutOrStdout(), v); err != nil {
			log.Fatalf("Error listing %s palette: %v", v, err)
		}
	}
}

func writePalette(out io.Writer, v vscode.Variant) error {
	p := palette.ForVariant(v.IsLight())
	if err := p.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(out, paletteHeader.Render(string(v)))
	for _, r := range palette.Roles() {
		hex := p.Color(r)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex[:7])).Render("    ")
		fmt.Fprintf(out, "%s %s %s\n", paletteRole.Render(r.String()), swatch, hex)
	}
	return nil
}
