package components

import "github.com/charmbracelet/lipgloss"

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#2b3440")).
	Padding(1, 2).
	Width(44)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c78e45")).
		Bold(true).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8f96ab")).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8f96ab")).
		Render("\ny: confirm | n: cancel")

	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// InputDialog renders a text input prompt.
func InputDialog(title, input string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c78e45")).
		Bold(true).
		Render(title)

	field := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4f7d8c")).
		Render("> " + input + "█")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8f96ab")).
		Render("\nenter: submit | esc: cancel")

	return dialogStyle.Render(header + "\n\n" + field + hint)
}

// PickerDialog renders a left/right option cycler with the current
// choice highlighted.
func PickerDialog(title, current string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c78e45")).
		Bold(true).
		Render(title)

	choice := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d8dadc")).
		Bold(true).
		Render("‹ " + current + " ›")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8f96ab")).
		Render("\n←/→: change | enter: apply | esc: cancel")

	return dialogStyle.Render(header + "\n\n" + choice + hint)
}
