package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slots/pkg/render"
)

func newRenderCommand() *cobra.Command {
	var (
		dataFiles   []string
		sets        []string
		scripts     []string
		output      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "render <template-file>",
		Short: "Render a template against record data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], dataFiles, sets, scripts, output, interactive)
		},
	}

	cmd.Flags().StringSliceVarP(&dataFiles, "data", "d", nil, "record file (YAML or JSON), repeatable")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a record value as key=value, repeatable")
	cmd.Flags().StringSliceVar(&scripts, "filters", nil, "Starlark filter script, repeatable")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for slot values the record does not cover")

	return cmd
}

func runRender(tplPath string, dataFiles, sets, scripts []string, output string, interactive bool) error {
	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}

	rec, err := loadRecord(dataFiles, sets)
	if err != nil {
		return err
	}

	extra, err := loadFilters(scripts)
	if err != nil {
		return err
	}

	if interactive {
		if err := promptMissing(tpl, rec, surveyDriver{}); err != nil {
			return err
		}
	}

	var policy *render.Policy
	if len(extra) > 0 {
		policy = &render.Policy{Filters: extra}
	}

	out, err := render.Render(tpl, rec, policy)
	if err != nil {
		return err
	}

	if output != "" {
		return os.WriteFile(output, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}
