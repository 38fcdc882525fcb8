package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#c78e45") // amber
	ColorSecondary  = lipgloss.Color("#4f7d8c") // steel
	ColorBackground = lipgloss.Color("#17181d") // dark
	ColorText       = lipgloss.Color("#d8dadc") // main text
	ColorMuted      = lipgloss.Color("#8f96ab") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#b05561") // red
	ColorWarning    = lipgloss.Color("#c7b054") // warning
	ColorBorder     = lipgloss.Color("#2b3440") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// StatusBadge colors a record status for list rows and detail tables.
func StatusBadge(status string) string {
	switch status {
	case "available", "completed", "confirmed", "approved":
		return SuccessStyle.Render(status)
	case "pending":
		return WarningStyle.Render(status)
	case "sold", "cancelled", "failed", "rejected":
		return ErrorStyle.Render(status)
	default:
		return MutedStyle.Render(status)
	}
}
