package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintContainsKeyAndDescription(t *testing.T) {
	out := plain(Hint("f", "Filter"))
	assert.Contains(t, out, "f")
	assert.Contains(t, out, "Filter")
}

func TestStatusBarWrapsToWidth(t *testing.T) {
	hints := []string{
		Hint("↑/↓", "Navigate"),
		Hint("enter", "Details"),
		Hint("f", "Filter"),
		Hint("r", "Refresh"),
		Hint("ctrl+c", "Quit"),
	}

	out := StatusBar(hints, 40)
	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1, "narrow width forces multiple rows")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40+2)
	}
}

func TestStatusBarZeroWidthSingleRow(t *testing.T) {
	out := StatusBar([]string{Hint("q", "Quit")}, 0)
	assert.Contains(t, plain(out), "Quit")
}

func TestStatusBarEmpty(t *testing.T) {
	assert.Equal(t, "", StatusBar(nil, 80))
}
