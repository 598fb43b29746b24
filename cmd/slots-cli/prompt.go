package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-slots/pkg/template"
)

// promptDriver asks the user for a single slot value. The indirection
// keeps the interactive path testable without a terminal.
type promptDriver interface {
	Input(name string) (string, error)
}

type surveyDriver struct{}

func (surveyDriver) Input(name string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: fmt.Sprintf("Value for slot %q:", name)}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// promptMissing asks for every slot the record does not cover yet and
// stores the answers in the record.
func promptMissing(tpl *template.Template, rec map[string]any, driver promptDriver) error {
	for _, name := range tpl.MissingKeys(rec) {
		answer, err := driver.Input(name)
		if err != nil {
			return fmt.Errorf("prompt %s: %w", name, err)
		}
		rec[name] = answer
	}
	return nil
}
