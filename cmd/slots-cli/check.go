package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	missingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	extraStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newCheckCommand() *cobra.Command {
	var (
		dataFiles []string
		sets      []string
	)

	cmd := &cobra.Command{
		Use:   "check <template-file>",
		Short: "Check record data against a template's slots",
		Long: `check reports which slots the record covers. Extra record keys are
informational; missing slot values make the command exit non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], dataFiles, sets)
		},
	}

	cmd.Flags().StringSliceVarP(&dataFiles, "data", "d", nil, "record file (YAML or JSON), repeatable")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a record value as key=value, repeatable")

	return cmd
}

func runCheck(tplPath string, dataFiles, sets []string) error {
	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}

	rec, err := loadRecord(dataFiles, sets)
	if err != nil {
		return err
	}

	for _, name := range tpl.ExtraKeys(rec) {
		fmt.Println(extraStyle.Render("extra: " + name))
	}

	missing := tpl.MissingKeys(rec)
	if len(missing) == 0 {
		fmt.Println(okStyle.Render(fmt.Sprintf("ok: all %d slots covered", len(tpl.SlotNames()))))
		return nil
	}

	for _, name := range missing {
		fmt.Println(missingStyle.Render("missing: " + name))
	}
	return fmt.Errorf("%d of %d slots missing values", len(missing), len(tpl.SlotNames()))
}
