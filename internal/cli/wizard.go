package cli

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/wardrisk/internal/cli/formatter"
	"github.com/alexanderramin/wardrisk/internal/domain"
)

// manualWardOption is the sentinel list entry for typing a ward by hand.
const manualWardOption = "(enter ward manually)"

// surveyHuhTheme returns a huh theme using the existing Gruvbox palette.
func surveyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(surveyHuhTheme()).WithShowHelp(false)
}

// passphraseForm gates the survey behind the shared access passphrase.
func passphraseForm(expected string) *huh.Form {
	var entered string
	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Access passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&entered).
				Validate(func(s string) error {
					if s != expected {
						return fmt.Errorf("incorrect passphrase")
					}
					return nil
				}),
		),
	)
}

// wardSelectForm offers the ward list plus a manual-entry fallback.
func wardSelectForm(wardIDs []string, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(wardIDs)+1)
	for _, id := range wardIDs {
		options = append(options, huh.NewOption(id, id))
	}
	options = append(options, huh.NewOption(manualWardOption, manualWardOption))

	return themedForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your ward").
				Options(options...).
				Value(result),
		),
	)
}

// manualWardForm collects a free-text ward override.
func manualWardForm(value *string) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ward").
				Placeholder("Ward 12").
				Value(value).
				Validate(validateRequired("ward")),
		),
	)
}

// respondentForm collects the respondent metadata block.
func respondentForm(name, email *string) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Value(name).
				Validate(validateRequired("full name")),
			huh.NewInput().
				Title("Your Email (blank to skip your copy)").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateOptionalEmail),
		),
	)
}

// hazardForm collects the hazard multiselect plus the optional custom hazard.
func hazardForm(hazards []string, selected *[]string, custom *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(hazards))
	for _, h := range hazards {
		options = append(options, huh.NewOption(h, h))
	}

	return themedForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select applicable hazards").
				Options(options...).
				Value(selected),
			huh.NewInput().
				Title("Other hazard (optional)").
				Placeholder("leave blank for none").
				Value(custom),
		),
	)
}

// questionForm builds one group per hazard, each holding the full catalog of
// evaluation and capacity selects. Answer values land in store, keyed by
// (hazard, question ID).
func questionForm(hazards []string, store map[domain.AnswerKey]*string) *huh.Form {
	groups := make([]*huh.Group, 0, len(hazards))
	for _, hazard := range hazards {
		fields := make([]huh.Field, 0, domain.QuestionCount()+1)
		fields = append(fields, huh.NewNote().Title(fmt.Sprintf("Hazard: %s", hazard)))

		for _, q := range domain.AllQuestions() {
			value := new(string)
			store[domain.AnswerKey{Hazard: hazard, QuestionID: q.ID}] = value

			options := make([]huh.Option[string], 0, len(q.Options))
			for _, opt := range q.Options {
				options = append(options, huh.NewOption(opt, opt))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Prompt).
				Options(options...).
				Value(value))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}
	return themedForm(groups...)
}

// confirmForm asks for the final go-ahead before files are written.
func confirmForm(ward, name string, hazardCount int, result *bool) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Submit survey for %s (%s, %d hazards)?", ward, name, hazardCount)).
				Affirmative("Submit").
				Negative("Cancel").
				Value(result),
		),
	)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateOptionalEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}
