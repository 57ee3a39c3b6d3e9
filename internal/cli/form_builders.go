package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

const apiKeyHelpURL = "https://aistudio.google.com/app/apikey"

var errBlankAPIKey = errors.New("API 키를 입력하세요")

// apiKeyInput returns a masked huh.Input for a Gemini API key.
func apiKeyInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Google Gemini API 키를 입력하세요.").
		Description("API 키는 " + apiKeyHelpURL + " 에서 발급받을 수 있습니다.").
		EchoMode(huh.EchoModePassword).
		Value(value).
		Validate(validateAPIKey)
}

// apiKeyForm returns a themed single-field Form for collecting an API key.
func apiKeyForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			apiKeyInput(value),
		),
	).WithTheme(izofHuhTheme()).WithShowHelp(false)
}

func validateAPIKey(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlankAPIKey
	}
	return nil
}
