package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptSelect prompts the user to select from a list and returns the
// index of the chosen option. Typing filters the list.
func (u *UI) PromptSelect(prompt string, options []string, defaultIndex int) (int, error) {
	var selected int
	p := &survey.Select{
		Message:  prompt,
		Options:  options,
		PageSize: 15,
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		p.Default = options[defaultIndex]
	}

	if err := survey.AskOne(p, &selected); err != nil {
		return -1, err
	}
	if selected < 0 || selected >= len(options) {
		return -1, fmt.Errorf("selected option not found")
	}
	return selected, nil
}
