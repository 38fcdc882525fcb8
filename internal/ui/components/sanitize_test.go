package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextStripsANSI(t *testing.T) {
	assert.Equal(t, "Toyota Corolla", SanitizeText("\x1b[31mToyota\x1b[0m Corolla"))
}

func TestSanitizeTextStripsBidiControls(t *testing.T) {
	assert.Equal(t, "safeevil", SanitizeText("safe\u202Eevil"))
	assert.Equal(t, "ab", SanitizeText("a\u2066\u2069b"))
}

func TestSanitizeTextKeepsNewlinesAndTabs(t *testing.T) {
	assert.Equal(t, "line1\nline2\tend", SanitizeText("line1\nline2\tend"))
}

func TestSanitizeTextDropsOtherControls(t *testing.T) {
	assert.Equal(t, "ab", SanitizeText("a\x00\x07b"))
}

func TestSanitizeTextEmptyString(t *testing.T) {
	assert.Equal(t, "", SanitizeText(""))
}

func TestSanitizeOneLineFlattens(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeOneLine("a\nb\tc"))
	assert.Equal(t, "spaced out", SanitizeOneLine("  spaced \n\n out  "))
}
