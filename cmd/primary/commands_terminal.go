package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/primary-theme/primary-vscode/internal/log"
	"github.com/primary-theme/primary-vscode/internal/vscode"
)

var terminalCmd = &cobra.Command{
	Use:       "terminal <light|dark>",
	Short:     "Export the terminal ANSI colors",
	Long:      "Print the 16 integrated-terminal colors of a theme in a terminal emulator's config format",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	Run:       runTerminal,
}

func init() {
	terminalCmd.Flags().StringP("format", "f", "ghostty", "Output format: ghostty, kitty, foot or alacritty")
}

func runTerminal(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("format")

	if err := writeTerminal(cmd.OutOrStdout(), args[0], format); err != nil {
		log.Fatalf("Error exporting terminal colors: %v", err)
	}
}

func writeTerminal(out io.Writer, variantName, format string) error {
	theme, err := composeVariant(variantName)
	if err != nil {
		return err
	}

	colors, err := vscode.TerminalPalette(theme)
	if err != nil {
		return err
	}

	text, err := vscode.FormatTerminal(colors, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
