package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-slots/pkg/filters"
)

var scriptedStyle = lipgloss.NewStyle().Faint(true)

func newFiltersCommand() *cobra.Command {
	var scripts []string

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List available filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilters(scripts)
		},
	}

	cmd.Flags().StringSliceVar(&scripts, "filters", nil, "Starlark filter script, repeatable")

	return cmd
}

func runFilters(scripts []string) error {
	extra, err := loadFilters(scripts)
	if err != nil {
		return err
	}

	all := filters.Builtins().Merge(extra)
	for _, name := range all.Names() {
		if extra.Has(name) {
			fmt.Println(name + " " + scriptedStyle.Render("(scripted)"))
			continue
		}
		fmt.Println(name)
	}
	return nil
}
