package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCars = []rec{
	{id: "1", status: "available", name: "2021 Toyota Corolla"},
	{id: "2", status: "sold", name: "2019 Honda Civic"},
	{id: "3", status: "available", name: "2022 Honda Accord"},
}

func carFields(r rec) []string { return []string{r.name} }

func TestFilterStatusAndQueryCompose(t *testing.T) {
	got := Filter(testCars, "available", "honda", carFields)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilterStatusAll(t *testing.T) {
	got := Filter(testCars, StatusAll, "", carFields)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestFilterQueryCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(testCars, StatusAll, "OROL", carFields)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterQueryWhitespaceIgnored(t *testing.T) {
	got := Filter(testCars, StatusAll, "   ", carFields)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(testCars, "pending", "", carFields)
	assert.Empty(t, got)

	got = Filter(testCars, StatusAll, "tesla", carFields)
	assert.Empty(t, got)
}

func TestMatchesMultipleFields(t *testing.T) {
	assert.True(t, Matches(StatusAll, "ada", "pending", "Ada Lovelace", "ada@test"))
	assert.True(t, Matches(StatusAll, "555", "pending", "Ada Lovelace", "555-0100"))
	assert.False(t, Matches(StatusAll, "bob", "pending", "Ada Lovelace", "ada@test"))
}
