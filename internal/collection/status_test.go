package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var bookingStatuses = StatusSet{"pending", "confirmed", "completed", "cancelled"}

func TestStatusSetValid(t *testing.T) {
	assert.True(t, bookingStatuses.Valid("pending"))
	assert.True(t, bookingStatuses.Valid("cancelled"))
	assert.False(t, bookingStatuses.Valid("done"))
	assert.False(t, bookingStatuses.Valid(""))
	assert.False(t, bookingStatuses.Valid(StatusAll))
}

func TestStatusSetNextWrapsAround(t *testing.T) {
	assert.Equal(t, "confirmed", bookingStatuses.Next("pending"))
	assert.Equal(t, "pending", bookingStatuses.Next("cancelled"))
	assert.Equal(t, "pending", bookingStatuses.Next("unknown"))
}

func TestStatusSetPrevWrapsAround(t *testing.T) {
	assert.Equal(t, "cancelled", bookingStatuses.Prev("pending"))
	assert.Equal(t, "pending", bookingStatuses.Prev("confirmed"))
	assert.Equal(t, "pending", bookingStatuses.Prev("unknown"))
}

func TestStatusSetString(t *testing.T) {
	assert.Equal(t, "pending/confirmed/completed/cancelled", bookingStatuses.String())
}
