package components

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row-%d", i)
	}
	return out
}

func TestListNavigationScrolls(t *testing.T) {
	l := NewList(3)
	l.SetItems(labels(5))

	for i := 0; i < 4; i++ {
		l.Down()
	}
	assert.Equal(t, 4, l.Selected())
	assert.Equal(t, 2, l.Offset)
	assert.Equal(t, []string{"row-2", "row-3", "row-4"}, l.Visible())

	l.Down()
	assert.Equal(t, 4, l.Selected(), "cursor stops at the last row")

	for i := 0; i < 10; i++ {
		l.Up()
	}
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 0, l.Offset)
}

func TestListSetItemsClampsCursor(t *testing.T) {
	l := NewList(3)
	l.SetItems(labels(5))
	for i := 0; i < 4; i++ {
		l.Down()
	}

	// Shrinking the item set (filter, delete) keeps a valid selection.
	l.SetItems(labels(2))
	assert.Equal(t, 1, l.Selected())
	assert.LessOrEqual(t, l.Offset, l.Cursor)

	l.SetItems(nil)
	assert.Equal(t, 0, l.Selected())
	assert.Empty(t, l.Visible())
}

func TestListReset(t *testing.T) {
	l := NewList(3)
	l.SetItems(labels(5))
	l.Down()
	l.Down()

	l.Reset()
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 0, l.Offset)
}

func TestListRelToAbs(t *testing.T) {
	l := NewList(2)
	l.SetItems(labels(4))
	l.Down()
	l.Down()

	assert.Equal(t, 1, l.Offset)
	assert.Equal(t, 1, l.RelToAbs(0))
	assert.True(t, l.IsSelected(2))
	assert.False(t, l.IsSelected(1))
}
