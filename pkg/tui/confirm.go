package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Confirm prompts the user with a yes/no question, defaulting to no.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}

	return confirmed, nil
}

// ConfirmList prints the items and asks the user to confirm acting on them.
func ConfirmList(title string, items []string, question string) (bool, error) {
	fmt.Println()
	fmt.Println(TitleStyle.Render(title))
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
	fmt.Println()

	return Confirm(question, "")
}
