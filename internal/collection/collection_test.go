package collection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	id     string
	status string
	name   string
}

func (r rec) RecordID() string     { return r.id }
func (r rec) RecordStatus() string { return r.status }

func ids(items []rec) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.id
	}
	return out
}

func TestFetchPopulatesInServerOrder(t *testing.T) {
	c := New[rec]()
	c.SetErr("stale error")

	gen := c.BeginFetch()
	assert.True(t, c.Loading())
	assert.Empty(t, c.Err())

	ok := c.ApplyFetch(gen, []rec{{id: "b"}, {id: "a"}, {id: "c"}})
	assert.True(t, ok)
	assert.False(t, c.Loading())
	assert.Empty(t, c.Err())
	assert.Equal(t, []string{"b", "a", "c"}, ids(c.Items()))
}

func TestFetchIsIdempotent(t *testing.T) {
	c := New[rec]()
	items := []rec{{id: "a"}, {id: "b"}}

	c.ApplyFetch(c.BeginFetch(), items)
	c.ApplyFetch(c.BeginFetch(), items)

	assert.Equal(t, []string{"a", "b"}, ids(c.Items()))
	assert.Equal(t, 2, c.Len())
}

func TestStaleFetchIsDropped(t *testing.T) {
	c := New[rec]()

	oldGen := c.BeginFetch()
	newGen := c.BeginFetch()

	require.True(t, c.ApplyFetch(newGen, []rec{{id: "fresh"}}))
	assert.False(t, c.ApplyFetch(oldGen, []rec{{id: "slow"}}))
	assert.Equal(t, []string{"fresh"}, ids(c.Items()))

	assert.False(t, c.FetchFailed(oldGen, errors.New("timeout")))
	assert.Empty(t, c.Err())
}

func TestFetchFailurePreservesItems(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "a"}, {id: "b"}})

	gen := c.BeginFetch()
	require.True(t, c.FetchFailed(gen, errors.New("connection refused")))

	assert.Equal(t, []string{"a", "b"}, ids(c.Items()))
	assert.False(t, c.Loading())
	assert.Equal(t, "connection refused", c.Err())
}

func TestDeleteRollbackRestoresExactList(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "a"}, {id: "b"}, {id: "c"}})

	snap, removed := c.Remove("b")
	require.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, ids(c.Items()))

	c.Rollback(snap, errors.New("delete failed"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Items()))
	assert.Equal(t, "delete failed", c.Err())
}

func TestRemoveMissingID(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "a"}})

	snap, removed := c.Remove("nope")
	assert.False(t, removed)
	assert.Equal(t, []string{"a"}, ids(c.Items()))
	assert.Equal(t, []string{"a"}, ids(snap))
}

func TestOptimisticStatusRollback(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{
		{id: "a", status: "pending"},
		{id: "b", status: "pending"},
	})

	snap := c.Snapshot()
	require.True(t, c.Patch("a", func(r rec) rec {
		r.status = "confirmed"
		return r
	}))
	assert.Equal(t, "confirmed", c.Items()[0].status)

	c.Rollback(snap, errors.New("server rejected transition"))
	assert.Equal(t, "pending", c.Items()[0].status)
	assert.Equal(t, "pending", c.Items()[1].status)
	assert.Equal(t, "server rejected transition", c.Err())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "a", status: "pending"}})

	snap := c.Snapshot()
	c.Patch("a", func(r rec) rec {
		r.status = "cancelled"
		return r
	})

	assert.Equal(t, "pending", snap[0].status)
}

func TestPrependPutsNewRecordFirst(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "x"}, {id: "y"}})

	c.Prepend(rec{id: "z"})
	assert.Equal(t, []string{"z", "x", "y"}, ids(c.Items()))
}

func TestPrependExistingIDReplacesInPlace(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "x", name: "old"}, {id: "y"}})

	c.Prepend(rec{id: "x", name: "new"})
	assert.Equal(t, []string{"x", "y"}, ids(c.Items()))
	assert.Equal(t, "new", c.Items()[0].name)
}

func TestReplaceSwapsCanonicalRecord(t *testing.T) {
	c := New[rec]()
	c.ApplyFetch(c.BeginFetch(), []rec{{id: "a", name: "draft"}, {id: "b"}})

	assert.True(t, c.Replace(rec{id: "a", name: "canonical"}))
	assert.Equal(t, "canonical", c.Items()[0].name)
	assert.False(t, c.Replace(rec{id: "zz"}))
}

func TestErrLifecycle(t *testing.T) {
	c := New[rec]()
	c.SetErr("boom")
	assert.Equal(t, "boom", c.Err())
	c.ClearErr()
	assert.Empty(t, c.Err())
}
