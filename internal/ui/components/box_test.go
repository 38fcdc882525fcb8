package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func TestBoxWidthScales(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(50), "narrow terminals get the floor width")
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 84, boxWidth(200), "wide terminals are capped")
	assert.Equal(t, 30, boxWidth(30), "floor never exceeds the terminal")
}

func TestTitledBoxEmbedsTitle(t *testing.T) {
	out := plain(TitledBox("Listings", "content", 100))
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[0], "[ Listings ]")
	assert.Contains(t, out, "content")
}

func TestTitledBoxWithoutTitleFallsBack(t *testing.T) {
	assert.Equal(t, Box("content", 100), TitledBox("", "content", 100))
}

func TestTableAlignsLabels(t *testing.T) {
	out := plain(Table("Car", []TableRow{
		{Label: "Brand", Value: "Toyota"},
		{Label: "Transmission", Value: "manual"},
	}, 100))

	assert.Contains(t, out, "Brand")
	assert.Contains(t, out, "Toyota")
	assert.Contains(t, out, "Transmission")
}

func TestTableSanitizesValues(t *testing.T) {
	out := Table("", []TableRow{
		{Label: "Note", Value: "safe\u202Eevil"},
	}, 100)

	assert.NotContains(t, out, "\u202E")
}

func TestTableEmptyRows(t *testing.T) {
	assert.Equal(t, "", Table("Car", nil, 100))
}

func TestErrorBoxRendersTitleAndMessage(t *testing.T) {
	out := plain(ErrorBox("Error", "backend down", 100))
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "backend down")
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "hello", ClampTextWidth("hello", 10))
	assert.Equal(t, "hel", ClampTextWidth("hello", 3))
	assert.Equal(t, "hello", ClampTextWidth("hello", 0), "zero width disables clamping")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
}

func TestCenterLine(t *testing.T) {
	centered := CenterLine("ab", 100)
	assert.True(t, strings.HasPrefix(centered, " "))
	assert.Equal(t, "ab", strings.TrimSpace(centered))
}
