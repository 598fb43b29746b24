package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var slotNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

func newSlotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots <template-file>",
		Short: "List a template's slots and their filter chains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(args[0])
		},
	}
	return cmd
}

func runSlots(tplPath string) error {
	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}

	for _, slot := range tpl.Slots() {
		var sb strings.Builder
		sb.WriteString(slotNameStyle.Render(slot.Name))
		for _, call := range slot.Chain {
			sb.WriteString(" | ")
			sb.WriteString(call.Name)
			if len(call.Args) > 0 {
				sb.WriteByte('#')
				sb.WriteString(strings.Join(call.Args, ","))
			}
		}
		fmt.Println(sb.String())
	}
	return nil
}
