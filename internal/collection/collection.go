package collection

// Record is a server-backed row with a stable identifier and a status
// drawn from a closed per-entity enumeration.
type Record interface {
	RecordID() string
	RecordStatus() string
}

// Collection caches one screen's server collection and reconciles it
// across fetch, create, update, delete, and status-transition operations.
// Items keep server response order; they are never re-sorted locally.
//
// All mutation happens from the resolution handlers of a single event
// loop, so there is no locking. Ordering between an optimistic mutation
// and its own network resolution is preserved by capturing a Snapshot
// synchronously before mutating and restoring it verbatim on failure.
type Collection[R Record] struct {
	items   []R
	loading bool
	err     string
	gen     uint64
}

// New returns an empty collection.
func New[R Record]() *Collection[R] {
	return &Collection[R]{}
}

// Items returns the cached records in server order.
func (c *Collection[R]) Items() []R { return c.items }

// Len returns the number of cached records.
func (c *Collection[R]) Len() int { return len(c.items) }

// Loading reports whether a full refetch is in flight. Per-item
// mutations never set this.
func (c *Collection[R]) Loading() bool { return c.loading }

// Err returns the last operation failure message, or "".
func (c *Collection[R]) Err() string { return c.err }

// SetErr records an operation failure.
func (c *Collection[R]) SetErr(msg string) { c.err = msg }

// ClearErr clears the failure message at the start of an operation.
func (c *Collection[R]) ClearErr() { c.err = "" }

// BeginFetch marks the start of a full refetch and returns its
// generation token. A later BeginFetch supersedes this one: responses
// carrying a stale token are dropped so a slow reply cannot overwrite
// newer state.
func (c *Collection[R]) BeginFetch() uint64 {
	c.gen++
	c.loading = true
	c.err = ""
	return c.gen
}

// ApplyFetch installs the server's collection for the given fetch
// generation, replacing items wholesale. Stale generations are ignored.
func (c *Collection[R]) ApplyFetch(gen uint64, items []R) bool {
	if gen != c.gen {
		return false
	}
	c.items = items
	c.loading = false
	c.err = ""
	return true
}

// FetchFailed resolves a failed fetch. The last known-good items are
// kept visible; clearing them on a transient network error would be
// worse than showing stale data.
func (c *Collection[R]) FetchFailed(gen uint64, err error) bool {
	if gen != c.gen {
		return false
	}
	c.loading = false
	c.err = err.Error()
	return true
}

// Prepend inserts a server-created record at the head of the list.
// If a record with the same id is already cached it is replaced in
// place instead, keeping ids unique.
func (c *Collection[R]) Prepend(r R) {
	if c.Replace(r) {
		return
	}
	c.items = append([]R{r}, c.items...)
}

// Replace swaps the cached record with a matching id for the server's
// canonical copy. Returns false when the id is not cached.
func (c *Collection[R]) Replace(r R) bool {
	for i := range c.items {
		if c.items[i].RecordID() == r.RecordID() {
			c.items[i] = r
			return true
		}
	}
	return false
}

// Patch applies fn to the cached record with the given id. Used for
// optimistic merges and for status-only updates where the server does
// not echo the full record.
func (c *Collection[R]) Patch(id string, fn func(R) R) bool {
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items[i] = fn(c.items[i])
			return true
		}
	}
	return false
}

// Snapshot copies the current items for a later Rollback. It must be
// taken synchronously before any optimistic mutation is applied.
func (c *Collection[R]) Snapshot() []R {
	snap := make([]R, len(c.items))
	copy(snap, c.items)
	return snap
}

// Remove deletes the record with the given id, returning a pre-removal
// snapshot for rollback. The snapshot is captured before the removal.
func (c *Collection[R]) Remove(id string) ([]R, bool) {
	snap := c.Snapshot()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return snap, true
		}
	}
	return snap, false
}

// Rollback restores a snapshot taken before an optimistic mutation and
// records the failure that forced it.
func (c *Collection[R]) Rollback(snap []R, err error) {
	c.items = snap
	c.err = err.Error()
}
