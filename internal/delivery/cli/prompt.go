package cli

import (
	"os"
	"strings"

	"fieldservice/internal/domain/entity"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
)

// ClosureAnswers are the closure fields collected on the command line.
// File fields hold paths.
type ClosureAnswers struct {
	Outcome        string
	Justification  string
	TitularPresent bool
	Notes          string
	Photo          string
	SignedDoc      string
	IDDoc          string
}

// Prompter asks the user for what the flags left out.
type Prompter interface {
	Credentials(credentials *entity.Credentials) error
	Closure(answers *ClosureAnswers, justifications []string) error
}

type formPrompter struct{}

// NewFormPrompter returns a Prompter backed by interactive huh forms.
func NewFormPrompter() Prompter {
	return formPrompter{}
}

func (formPrompter) Credentials(credentials *entity.Credentials) error {
	var fields []huh.Field
	if credentials.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&credentials.Username).
			Validate(required("username")))
	}
	if credentials.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&credentials.Password).
			Validate(required("password")))
	}
	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return errors.Wrap(err, "prompt failed")
	}

	return nil
}

func (formPrompter) Closure(answers *ClosureAnswers, justifications []string) error {
	if answers.Justification == "" && len(justifications) > 0 {
		answers.Justification = justifications[0]
	}

	options := make([]huh.Option[string], len(justifications))
	for i, j := range justifications {
		options[i] = huh.NewOption(j, j)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How did the visit go?").
				Options(
					huh.NewOption("Could not complete", string(entity.OutcomeFailed)),
					huh.NewOption("Completed", string(entity.OutcomeSucceeded)),
				).
				Value(&answers.Outcome),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Justification").
				Options(options...).
				Value(&answers.Justification),
			huh.NewInput().
				Title("Photo of the address").
				Placeholder("path/to/photo.jpg").
				Value(&answers.Photo).
				Validate(existingFile),
			huh.NewText().
				Title("Notes").
				Value(&answers.Notes),
		).WithHideFunc(func() bool {
			return answers.Outcome != string(entity.OutcomeFailed)
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Was the account holder present?").
				Value(&answers.TitularPresent),
			huh.NewInput().
				Title("Signed document").
				Placeholder("path/to/signed.pdf").
				Value(&answers.SignedDoc).
				Validate(existingFile),
			huh.NewInput().
				Title("Identity document").
				Placeholder("path/to/id.jpg").
				Value(&answers.IDDoc).
				Validate(existingFile),
			huh.NewText().
				Title("Notes").
				Value(&answers.Notes),
		).WithHideFunc(func() bool {
			return answers.Outcome != string(entity.OutcomeSucceeded)
		}),
	)

	if err := form.Run(); err != nil {
		return errors.Wrap(err, "prompt failed")
	}

	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.Errorf("%s is required", name)
		}

		return nil
	}
}

func existingFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("a file is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return errors.Errorf("%s is a directory", path)
	}

	return nil
}
