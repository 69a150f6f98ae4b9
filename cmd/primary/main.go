package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/primary-theme/primary-vscode/internal/config"
	"github.com/primary-theme/primary-vscode/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "primary",
	Short: "Generate the Primary light and dark editor themes",
	Long:  "Generate the Primary light and dark VS Code color themes from the built-in palette.\nWithout a subcommand both theme files are written to the output directory.",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.SetVerbose(verbose)
	},
	Run: runBuild,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("out", "o", config.DefaultOutputDir, "Output directory for generated themes")

	rootCmd.AddCommand(buildCmd, printCmd, paletteCmd, terminalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
