package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "slots-cli",
		Short: "Compile and render slot templates",
		Long: `slots-cli works with slot templates: text files with placeholders
of the form {name|filter#arg,arg}. Templates compile once and render
against record data loaded from YAML or JSON files, --set assignments,
or interactive prompts.`,
	}

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newSlotsCommand())
	rootCmd.AddCommand(newFiltersCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
