package components

// List is a scrollable cursor list over pre-rendered row labels.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{PageSize: pageSize}
}

// SetItems replaces the rows. The cursor is clamped rather than reset
// so a refetch or filter change keeps the selection stable.
func (l *List) SetItems(items []string) {
	l.Items = items
	if l.Cursor >= len(items) {
		l.Cursor = len(items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Offset > l.Cursor {
		l.Offset = l.Cursor
	}
	if l.Offset+l.PageSize <= l.Cursor {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// Reset moves the cursor back to the top.
func (l *List) Reset() {
	l.Cursor = 0
	l.Offset = 0
}

// Down moves the cursor down one row, scrolling as needed.
func (l *List) Down() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up one row, scrolling as needed.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// Visible returns the rows within the current page.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the cursor's absolute index.
func (l *List) Selected() int {
	return l.Cursor
}

// IsSelected reports whether the given absolute index is under the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

// RelToAbs converts a visible-page index to an absolute index.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}
