package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/skleeno/showroom-cli/internal/collection"
)

type formField struct {
	label string
	value string
}

// cycleFilter advances a status filter through all -> each status -> all.
func cycleFilter(set collection.StatusSet, current string) string {
	if current == collection.StatusAll {
		if len(set) == 0 {
			return current
		}
		return set[0]
	}
	for i, opt := range set {
		if opt == current {
			if i == len(set)-1 {
				return collection.StatusAll
			}
			return set[i+1]
		}
	}
	return collection.StatusAll
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func formatMoney(amount float64) string {
	return "$" + formatThousands(amount)
}

// formatThousands rounds to cents first so values like 10.999 carry into
// the whole part instead of printing a ".100" fraction.
func formatThousands(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	s := strconv.FormatInt(whole, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if frac != 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// filterCountLine renders the "N of M · filter · search" summary under a
// list title.
func filterCountLine(shown, total int, statusFilter, searchBuf string) string {
	line := fmt.Sprintf("%d of %d", shown, total)
	if statusFilter != collection.StatusAll {
		line = fmt.Sprintf("%s · status: %s", line, statusFilter)
	}
	if q := strings.TrimSpace(searchBuf); q != "" {
		line = fmt.Sprintf("%s · search: %s", line, q)
	}
	return line
}
