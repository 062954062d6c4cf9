package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
	"github.com/alexanderramin/orgplant/internal/org"
)

// orgplantHuhTheme returns the huh theme matching the formatter palette.
func orgplantHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
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

// runPlantWizard collects the values the flags didn't provide: the project
// name, optionally a category, and the due date.
func runPlantWizard(app *App, flags *plantFlags) error {
	var fields []huh.Field

	if flags.name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Placeholder("Quarterly report").
			Value(&flags.name).
			Validate(validateProjectName))
	}
	if flags.category == "" {
		fields = append(fields, huh.NewInput().
			Title("Category (blank uses the name)").
			Value(&flags.category))
	}
	if flags.due.String() == "" {
		fields = append(fields, huh.NewInput().
			Title("Due date").
			Placeholder(`2024-06-14, +2w, fri, or "." for today`).
			Value(&flags.due.raw).
			Validate(app.validateDueInput))
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(orgplantHuhTheme()).
		WithShowHelp(false).
		Run()
}

func validateProjectName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// validateDueInput accepts anything ParseDate can resolve. The wizard
// requires an explicit value; "." spells today.
func (a *App) validateDueInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("due date is required")
	}
	if _, err := org.ParseDate(s, a.now()); err != nil {
		return fmt.Errorf("use a date like 2024-06-14, +3d, or fri")
	}
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(orgplantHuhTheme()).WithShowHelp(false)
}
