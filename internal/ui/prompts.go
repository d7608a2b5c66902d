package ui

import "github.com/AlecAivazis/survey/v2"

// PromptYesNo asks a yes/no question and returns the answer.
func (u *UI) PromptYesNo(question string, defaultYes bool) (bool, error) {
	answer := defaultYes
	prompt := &survey.Confirm{
		Message: question,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// PromptInput asks for a free-text value.
func (u *UI) PromptInput(question, defaultValue string) (string, error) {
	answer := defaultValue
	prompt := &survey.Input{
		Message: question,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
