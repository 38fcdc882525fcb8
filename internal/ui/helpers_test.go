package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skleeno/showroom-cli/internal/collection"
)

func TestCycleFilter(t *testing.T) {
	set := collection.StatusSet{"pending", "confirmed", "completed"}

	assert.Equal(t, "pending", cycleFilter(set, collection.StatusAll))
	assert.Equal(t, "confirmed", cycleFilter(set, "pending"))
	assert.Equal(t, collection.StatusAll, cycleFilter(set, "completed"), "last status cycles back to all")
	assert.Equal(t, collection.StatusAll, cycleFilter(set, "nonsense"))
	assert.Equal(t, collection.StatusAll, cycleFilter(collection.StatusSet{}, collection.StatusAll))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$24,999.50", formatMoney(24999.5))
	assert.Equal(t, "$18,500", formatMoney(18500))
	assert.Equal(t, "$950", formatMoney(950))
	assert.Equal(t, "$1,250,000", formatMoney(1250000))
}

func TestFormatThousandsRoundsToCents(t *testing.T) {
	assert.Equal(t, "11", formatThousands(10.999))
	assert.Equal(t, "10.99", formatThousands(10.99))
	assert.Equal(t, "-4,000", formatThousands(-4000))
	assert.Equal(t, "-4,000.50", formatThousands(-4000.5))
	assert.Equal(t, "0.05", formatThousands(0.05))
}

func TestFilterCountLine(t *testing.T) {
	assert.Equal(t, "2 of 5", filterCountLine(2, 5, collection.StatusAll, ""))
	assert.Equal(t, "1 of 5 · status: sold", filterCountLine(1, 5, "sold", ""))
	assert.Equal(t, "1 of 5 · status: sold · search: civic", filterCountLine(1, 5, "sold", "civic"))
	assert.Equal(t, "3 of 5", filterCountLine(3, 5, collection.StatusAll, "   "))
}

func TestDropLastRune(t *testing.T) {
	assert.Equal(t, "civ", dropLastRune("civi"))
	assert.Equal(t, "", dropLastRune(""))
	assert.Equal(t, "你", dropLastRune("你好"))
}
